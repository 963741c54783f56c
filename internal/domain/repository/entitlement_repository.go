// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pesantren/internal/domain/entity"
	"pesantren/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for entitlement persistence.
var (
	// ErrEntitlementNotFound is returned when no matching entitlement exists.
	ErrEntitlementNotFound = errors.New("entitlement not found")
	// ErrDuplicateActiveEntitlement is returned when a second active entitlement for the same
	// actor and course violates the partial unique index.
	ErrDuplicateActiveEntitlement = errors.New("active entitlement already exists")
	// ErrDuplicateReference is returned when a generated reference collides.
	ErrDuplicateReference = errors.New("entitlement reference already exists")
)

// EntitlementRepository is the entitlement store.
type EntitlementRepository interface {
	// FindActive returns an active entitlement for the actor and course, or ErrEntitlementNotFound.
	FindActive(ctx context.Context, actorID uuid.UUID, courseKey string) (*entity.Entitlement, error)

	// Create persists a new entitlement and fills generated fields back into it.
	Create(ctx context.Context, entitlement *entity.Entitlement) error

	// FindByReference looks up an entitlement by its opaque reference.
	FindByReference(ctx context.Context, reference string) (*entity.Entitlement, error)

	// FindByActor lists every entitlement of an actor, newest first.
	FindByActor(ctx context.Context, actorID uuid.UUID) ([]*entity.Entitlement, error)
}
