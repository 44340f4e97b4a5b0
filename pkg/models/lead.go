package models

// CreateLeadRequest represents a request to create a lead
type CreateLeadRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	DDD           string `json:"ddd" validate:"omitempty,min=2,max=3"`
	Phone         string `json:"phone" validate:"omitempty,min=8"`
	City          string `json:"city"`
	Interesse     string `json:"interesse"`
	Notes         string `json:"notes"`
	ResponsibleID *int   `json:"responsible_id,omitempty"`
}

// UpdateLeadRequest represents a partial lead update; nil fields are
// left untouched.
type UpdateLeadRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=2"`
	DDD           *string `json:"ddd,omitempty" validate:"omitempty,min=2,max=3"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,min=8"`
	City          *string `json:"city,omitempty"`
	Interesse     *string `json:"interesse,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	ResponsibleID *int    `json:"responsible_id,omitempty"`
}

// LeadListRequest represents list/archive view filters
type LeadListRequest struct {
	Status   string `query:"status"`
	City     string `query:"city"`
	Archived *bool  `query:"archived"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// LeadResponse represents a single lead in API responses
type LeadResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DDD             string `json:"ddd,omitempty"`
	Phone           string `json:"phone,omitempty"`
	City            string `json:"city,omitempty"`
	Interesse       string `json:"interesse,omitempty"`
	Status          string `json:"status"`
	StatusChangedAt string `json:"status_changed_at"`
	Archived        bool   `json:"archived"`
	Notes           string `json:"notes,omitempty"`
	ResponsibleID   *int   `json:"responsible_id,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Data       []LeadResponse `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// BulkRequest carries the lead IDs for a bulk action
type BulkRequest struct {
	IDs []int `json:"ids" validate:"required,min=1,dive,min=1"`
}

// BulkFailure describes one failed item inside a bulk action
type BulkFailure struct {
	ID    int    `json:"id"`
	Error string `json:"error"`
}

// BulkResult aggregates a bulk action outcome. Succeeded items stay
// changed, failed items stay in their prior state; no automatic retry.
type BulkResult struct {
	Succeeded []int         `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

// TransitionRequest moves a lead to a new pipeline status
type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note,omitempty"`
}

// AddNoteRequest attaches a free-text note to a lead's history
type AddNoteRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}
