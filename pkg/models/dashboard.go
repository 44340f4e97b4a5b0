package models

// DashboardResponse summarizes a tenant's pipeline
type DashboardResponse struct {
	StatusCounts   map[string]int `json:"status_counts"`
	TotalActive    int            `json:"total_active"`
	TotalArchived  int            `json:"total_archived"`
	NewThisWeek    int            `json:"new_this_week"`
	ClosedThisWeek int            `json:"closed_this_week"`
	ConversionRate float64        `json:"conversion_rate"`
}
