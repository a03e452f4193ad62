package http

import (
	"net/http"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "actor"
)

// ActorMiddleware resolves the caller from the actor headers. A missing or
// unknown role, or a malformed id, ends the request with 401.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			role, err := user.ParseRole(ctx.Request().Header.Get(HeaderActorRole))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing or unknown actor role")
			}

			var id *kernel.UUID
			if raw := ctx.Request().Header.Get(HeaderActorID); raw != "" {
				parsed, parseErr := kernel.UUIDFromString(raw)
				if parseErr != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "Malformed actor id")
				}
				id = &parsed
			}

			actor, err := user.NewActor(id, role)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing or unknown actor role")
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFrom(ctx echo.Context) (user.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(user.Actor)
	if !ok {
		return user.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing or unknown actor role")
	}
	return actor, nil
}
