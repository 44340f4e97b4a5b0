package importpkg

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/pkg/domain"
	"github.com/familiasoares/imobicrm/pkg/phone"
	"github.com/familiasoares/imobicrm/pkg/session"
)

const maxImportRows = 5000

// Expected CSV columns, in order. Only nome is required per row.
var expectedHeader = []string{"nome", "ddd", "telefone", "cidade", "interesse"}

// ImportError describes one rejected row.
type ImportError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	TotalRows    int           `json:"total_rows"`
	SuccessCount int           `json:"success_count"`
	FailureCount int           `json:"failure_count"`
	Errors       []ImportError `json:"errors,omitempty"`
	Duration     string        `json:"duration"`
}

// CSVImportService bulk-imports leads from a CSV file. Every imported
// lead lands in the first pipeline stage of the caller's tenant.
type CSVImportService struct {
	db *ent.Client
}

// NewCSVImportService creates a new CSV import service.
func NewCSVImportService(db *ent.Client) *CSVImportService {
	return &CSVImportService{db: db}
}

// Import reads leads from r. Bad rows are reported and skipped; good
// rows are created. The header row is required and validated.
func (s *CSVImportService) Import(ctx context.Context, sess *session.Session, r io.Reader) (*ImportResult, error) {
	if sess == nil {
		return nil, domain.NewUnauthorizedError()
	}

	start := time.Now()
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.NewValidationError("empty or unreadable CSV file")
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []ImportError{}}
	row := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			result.TotalRows++
			result.FailureCount++
			result.Errors = append(result.Errors, ImportError{Row: row, Message: "malformed row"})
			continue
		}
		if result.TotalRows >= maxImportRows {
			return nil, domain.NewValidationError(fmt.Sprintf("file exceeds the %d row limit", maxImportRows))
		}
		result.TotalRows++

		if err := s.importRow(ctx, sess.TenantID, record); err != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, ImportError{Row: row, Message: err.Error()})
			continue
		}
		result.SuccessCount++
	}

	result.Duration = time.Since(start).String()
	return result, nil
}

func (s *CSVImportService) importRow(ctx context.Context, tenantID int, record []string) error {
	get := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	name := get(0)
	ddd := get(1)
	number := get(2)

	if name == "" {
		return fmt.Errorf("nome is required")
	}
	if number != "" && !phone.IsValidBR(ddd, number) {
		return fmt.Errorf("invalid phone %s %s", ddd, number)
	}

	_, err := s.db.Lead.
		Create().
		SetTenantID(tenantID).
		SetName(name).
		SetDdd(ddd).
		SetPhone(number).
		SetCity(get(3)).
		SetInteresse(get(4)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to save lead")
	}
	return nil
}

func validateHeader(header []string) error {
	if len(header) < len(expectedHeader) {
		return domain.NewValidationError(
			fmt.Sprintf("CSV header must be: %s", strings.Join(expectedHeader, ",")))
	}
	for i, want := range expectedHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return domain.NewValidationError(
				fmt.Sprintf("CSV header must be: %s", strings.Join(expectedHeader, ",")))
		}
	}
	return nil
}
