package http

import (
	"log/slog"
	"net/http"

	"backoffice/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const BaseURL = "/api/v1"

type RouterConfig struct {
	Logger *slog.Logger
	// Contract enables request validation when set.
	Contract *openapi3.T
}

// NewRouter builds the echo instance: service routes under BaseURL plus
// /health, /metrics and /swagger/*.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(
		requestLogger(cfg.Logger),
		middleware.Recover(),
		MetricsMiddleware(),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiMiddleware := []echo.MiddlewareFunc{ActorMiddleware()}
	if cfg.Contract != nil {
		validator, err := OpenAPIValidator(cfg.Contract)
		if err != nil {
			return nil, err
		}
		apiMiddleware = append(apiMiddleware, validator)
	}

	api := e.Group(BaseURL, apiMiddleware...)
	servers.RegisterHandlers(api, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "Request failed", attrs...)
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "Request", attrs...)
			return nil
		},
	})
}
