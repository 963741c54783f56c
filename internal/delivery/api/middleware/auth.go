// Package middleware holds the echo middleware of the API server.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "pesantren/internal/delivery/context"
	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keyActor     = "actor"
	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Identity service.IdentityProvider
	Logger   *slog.Logger
}

// AuthMiddleware resolves the actor behind a request and enforces roles.
type AuthMiddleware struct {
	identity service.IdentityProvider
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		identity: params.Identity,
		logger:   params.Logger,
	}
}

// OptionalAuthenticate lets anonymous requests through as the anonymous actor. A credential
// that is present but invalid is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := m.resolve(c)
		if err != nil {
			return err
		}
		m.setActor(c, actor)

		return next(c)
	}
}

// Authenticate requires a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := m.resolve(c)
		if err != nil {
			return err
		}
		if actor.IsAnonymous() {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
		}
		m.setActor(c, actor)

		return next(c)
	}
}

// RequireActor rejects anonymous actors on routes behind OptionalAuthenticate.
func (m *AuthMiddleware) RequireActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if GetActor(c).IsAnonymous() {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
		}

		return next(c)
	}
}

// RequireRole checks the role of the resolved actor.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := GetActor(c)
			if actor.IsAnonymous() {
				return domainerrors.ErrUnauthenticated
			}
			if !actor.HasRole(role) {
				return domainerrors.ErrForbidden.WithDetails("require '" + role.String() + "' role")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) (entity.Actor, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return entity.AnonymousActor(), nil
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return entity.AnonymousActor(), domainerrors.ErrUnauthenticated.WithDetails("invalid token format, must be Bearer token")
	}

	actor, err := m.identity.CurrentActor(c.Request().Context(), strings.TrimSpace(token))
	if err != nil {
		return entity.AnonymousActor(), err
	}

	return actor, nil
}

// setActor stores the actor for handlers and tags the request logger with it.
func (m *AuthMiddleware) setActor(c echo.Context, actor entity.Actor) {
	c.Set(keyActor, actor)
	if actor.IsAnonymous() {
		return
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("actor_id", actor.ID.String()))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))
}

// GetActor returns the actor resolved by the auth middleware, anonymous when none ran.
func GetActor(c echo.Context) entity.Actor {
	if actor, ok := c.Get(keyActor).(entity.Actor); ok {
		return actor
	}

	return entity.AnonymousActor()
}

// GetUserID returns the authenticated actor id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	actor := GetActor(c)

	return actor.ID, !actor.IsAnonymous()
}
