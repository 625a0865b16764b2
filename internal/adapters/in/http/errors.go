package http

import (
	"errors"
	"net/http"

	"reservation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a use-case error to the HTTP status the operations
// console expects. The whole error taxonomy is recoverable by the caller, so
// 500 is reserved for genuinely unexpected failures.
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(errorStatus(err), ErrorResponse{Message: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrIdentityMismatch):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrStatusConflict),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
