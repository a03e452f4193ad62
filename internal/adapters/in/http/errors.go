package http

import (
	"errors"
	"log/slog"
	"net/http"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/generated/servers"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCode maps error kinds to HTTP status codes. Anything unrecognised is a 500.
func statusCode(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTransitionIsNotAllowed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error, code int) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}
	if code == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed", "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(code, servers.ErrorResponse{Success: false, Message: errorMessage(err, code)})
}

// NewErrorHandler renders errors that escape the handlers, binding and
// routing errors from echo included, in the response envelope.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := statusCode(err)
		if code == http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Unhandled error", "path", ctx.Path(), "error", err)
		}

		body := servers.ErrorResponse{Success: false, Message: errorMessage(err, code)}
		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
