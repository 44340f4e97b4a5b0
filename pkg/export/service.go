package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/lead"
	"github.com/familiasoares/imobicrm/pkg/domain"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/familiasoares/imobicrm/pkg/session"
	"github.com/xuri/excelize/v2"
)

const maxExportRows = 10000

var exportHeader = []string{
	"ID", "Nome", "DDD", "Telefone", "Cidade", "Interesse",
	"Status", "Status desde", "Responsável", "Criado em",
}

// Service exports a tenant's leads to spreadsheet files.
type Service struct {
	db *ent.Client
}

// NewService creates a new export service.
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Export renders the tenant's leads as a CSV or XLSX file. The same
// filters as the list view apply; archived leads are excluded unless
// requested.
func (s *Service) Export(ctx context.Context, sess *session.Session, format string, req models.LeadListRequest) ([]byte, string, error) {
	if sess == nil {
		return nil, "", domain.NewUnauthorizedError()
	}
	if format != "csv" && format != "xlsx" {
		return nil, "", domain.NewValidationError("format must be csv or xlsx")
	}

	rows, err := s.queryLeads(ctx, sess.TenantID, req)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("leads_%s.%s", time.Now().Format("2006-01-02"), format)

	var data []byte
	if format == "csv" {
		data, err = renderCSV(rows)
	} else {
		data, err = renderXLSX(rows)
	}
	if err != nil {
		return nil, "", domain.NewInternalError(err)
	}
	return data, filename, nil
}

func (s *Service) queryLeads(ctx context.Context, tenantID int, req models.LeadListRequest) ([]*ent.Lead, error) {
	query := s.db.Lead.Query().Where(lead.TenantID(tenantID))

	archived := false
	if req.Archived != nil {
		archived = *req.Archived
	}
	query = query.Where(lead.Archived(archived))

	if req.Status != "" {
		query = query.Where(lead.StatusEQ(lead.Status(req.Status)))
	}
	if req.City != "" {
		query = query.Where(lead.CityEQ(req.City))
	}

	rows, err := query.
		Limit(maxExportRows).
		Order(ent.Desc(lead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to query leads for export: %w", err))
	}
	return rows, nil
}

func leadRow(l *ent.Lead) []string {
	responsible := ""
	if l.ResponsibleID != nil {
		responsible = strconv.Itoa(*l.ResponsibleID)
	}
	return []string{
		strconv.Itoa(l.ID),
		l.Name,
		l.Ddd,
		l.Phone,
		l.City,
		l.Interesse,
		string(l.Status),
		l.StatusChangedAt.Format("02/01/2006 15:04"),
		responsible,
		l.CreatedAt.Format("02/01/2006 15:04"),
	}
}

func renderCSV(rows []*ent.Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, l := range rows {
		if err := w.Write(leadRow(l)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(rows []*ent.Lead) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Leads"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, l := range rows {
		for col, value := range leadRow(l) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
