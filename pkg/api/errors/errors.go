package errors

import (
	stderrors "errors"
	"log"
	"net/http"

	"github.com/familiasoares/imobicrm/pkg/domain"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/labstack/echo/v4"
)

// ValidationError returns a validation error with the given message
func ValidationError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: message,
	})
}

// BindError returns a generic bad-request error without exposing bind internals
func BindError(c echo.Context, err error) error {
	log.Printf("[BIND ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// ForbiddenError returns a generic forbidden error
func ForbiddenError(c echo.Context) error {
	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   "forbidden",
		Message: "You do not have permission to access this resource.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// ConflictError signals a storage conflict the caller should retry
func ConflictError(c echo.Context, err error) error {
	log.Printf("[CONFLICT] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: "The operation could not be completed. Please try again.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// DomainError maps a service-layer error to its HTTP response. Handlers
// funnel every service error through here so status codes stay uniform.
func DomainError(c echo.Context, err error) error {
	switch {
	case domain.IsNotFound(err):
		return NotFoundError(c)
	case domain.IsValidation(err):
		var de *domain.DomainError
		if stderrors.As(err, &de) {
			return ValidationError(c, de.Message)
		}
		return ValidationError(c, "Invalid request data.")
	case domain.IsUnauthorized(err):
		return UnauthorizedError(c)
	case domain.IsForbidden(err):
		return ForbiddenError(c)
	case domain.IsConflict(err):
		return ConflictError(c, err)
	default:
		return InternalError(c, err)
	}
}
