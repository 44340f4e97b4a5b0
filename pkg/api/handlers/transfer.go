package handlers

import (
	"context"
	"net/http"
	"time"

	apierrors "github.com/familiasoares/imobicrm/pkg/api/errors"
	"github.com/familiasoares/imobicrm/pkg/export"
	importpkg "github.com/familiasoares/imobicrm/pkg/import"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/familiasoares/imobicrm/pkg/session"
	"github.com/labstack/echo/v4"
)

// TransferHandler handles lead import and export.
type TransferHandler struct {
	export   *export.Service
	importer *importpkg.CSVImportService
}

// NewTransferHandler creates a new transfer handler.
func NewTransferHandler(exportService *export.Service, importer *importpkg.CSVImportService) *TransferHandler {
	return &TransferHandler{
		export:   exportService,
		importer: importer,
	}
}

// Export handles GET /api/v1/leads/export?format=csv|xlsx
func (h *TransferHandler) Export(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}

	var req models.LeadListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BindError(c, err)
	}

	data, filename, err := h.export.Export(ctx, sess, format, req)
	if err != nil {
		return apierrors.DomainError(c, err)
	}

	contentType := "text/csv"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, contentType, data)
}

// Import handles POST /api/v1/leads/import (multipart "file" field).
func (h *TransferHandler) Import(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 120*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apierrors.ValidationError(c, "CSV file is required in the 'file' field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	defer file.Close()

	result, err := h.importer.Import(ctx, sess, file)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
