package service

import (
	"context"

	"pesantren/internal/domain/entity"
)

// IdentityProvider resolves the current actor from the request credential.
type IdentityProvider interface {
	// CurrentActor returns the anonymous actor for an empty credential and an error for an
	// invalid one.
	CurrentActor(ctx context.Context, credential string) (entity.Actor, error)
}
