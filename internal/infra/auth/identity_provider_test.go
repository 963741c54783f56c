package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityProvider_CurrentActor(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	provider := NewIdentityProvider(IdentityParams{
		TokenService: tokens,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ctx := context.Background()

	t.Run("empty credential is anonymous", func(t *testing.T) {
		actor, err := provider.CurrentActor(ctx, "")
		require.NoError(t, err)
		assert.True(t, actor.IsAnonymous())
	})

	t.Run("valid token yields actor with known roles", func(t *testing.T) {
		userID := uuid.New()
		token, err := tokens.GenerateAccessToken(userID, []string{"student", "superuser"})
		require.NoError(t, err)

		actor, err := provider.CurrentActor(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, userID, actor.ID)
		assert.Equal(t, entity.Roles{entity.RoleStudent}, actor.Roles)
	})

	t.Run("invalid token is unauthenticated", func(t *testing.T) {
		actor, err := provider.CurrentActor(ctx, "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		assert.True(t, actor.IsAnonymous())
	})

	t.Run("token without subject is unauthenticated", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(uuid.Nil, nil)
		require.NoError(t, err)

		_, err = provider.CurrentActor(ctx, token)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}
