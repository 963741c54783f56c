package auth

import (
	"context"
	"log/slog"

	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// IdentityParams defines the dependencies of the token-backed identity provider.
type IdentityParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// tokenIdentityProvider resolves actors from signed access tokens.
type tokenIdentityProvider struct {
	tokens service.TokenService
	logger *slog.Logger
}

// NewIdentityProvider creates an identity provider backed by the token service.
func NewIdentityProvider(params IdentityParams) service.IdentityProvider {
	return &tokenIdentityProvider{
		tokens: params.TokenService,
		logger: params.Logger,
	}
}

// CurrentActor implements service.IdentityProvider.
func (p *tokenIdentityProvider) CurrentActor(ctx context.Context, credential string) (entity.Actor, error) {
	if credential == "" {
		return entity.AnonymousActor(), nil
	}

	claims, err := p.tokens.ValidateToken(credential)
	if err != nil {
		p.logger.DebugContext(ctx, "Rejected access token", slog.Any("error", err))

		return entity.AnonymousActor(), domainerrors.ErrUnauthenticated.WrapMessage("invalid access token")
	}
	if claims.UserID == uuid.Nil {
		return entity.AnonymousActor(), domainerrors.ErrUnauthenticated.WrapMessage("access token has no subject")
	}

	return entity.NewActor(claims.UserID, entity.RolesFromStrings(claims.Roles)), nil
}
