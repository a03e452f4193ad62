package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backoffice/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency labelled by route template.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				switch {
				case errors.As(err, &httpErr):
					status = httpErr.Code
				case !ctx.Response().Committed:
					status = http.StatusInternalServerError
				}
			}

			handler := ctx.Path()
			if handler == "" {
				handler = "unmatched"
			}
			method := ctx.Request().Method

			metrics.HTTPRequestDuration.WithLabelValues(handler, method).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(handler, method, strconv.Itoa(status)).Inc()
			return err
		}
	}
}
