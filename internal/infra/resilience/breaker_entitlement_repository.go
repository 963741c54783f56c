// Package resilience guards outbound stores with circuit breakers.
package resilience

import (
	"context"
	"log/slog"

	"pesantren/config"
	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/repository"
	"pesantren/internal/errors"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
)

const entitlementBreakerName = "entitlement-store"

// breakerEntitlementRepository wraps an EntitlementRepository with a circuit breaker.
// While the breaker is open every call fails fast with ErrStoreUnavailable.
type breakerEntitlementRepository struct {
	next    repository.EntitlementRepository
	breaker *gobreaker.CircuitBreaker[any]
}

// NewBreakerEntitlementRepository decorates next when the breaker is enabled in configuration.
func NewBreakerEntitlementRepository(next repository.EntitlementRepository, cfg *config.Config, logger *slog.Logger) repository.EntitlementRepository {
	bc := cfg.Breaker
	if bc == nil || !bc.Enabled {
		return next
	}

	threshold := bc.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:        entitlementBreakerName,
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		IsSuccessful: isHealthyOutcome,
	}

	return &breakerEntitlementRepository{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
	}
}

// isHealthyOutcome treats domain misses and caller cancellations as store health.
func isHealthyOutcome(err error) bool {
	return err == nil ||
		errors.Is(err, repository.ErrEntitlementNotFound) ||
		errors.Is(err, repository.ErrDuplicateActiveEntitlement) ||
		errors.Is(err, repository.ErrDuplicateReference) ||
		errors.Is(err, context.Canceled)
}

func (r *breakerEntitlementRepository) FindActive(ctx context.Context, actorID uuid.UUID, courseKey string) (*entity.Entitlement, error) {
	return execute(r.breaker, func() (*entity.Entitlement, error) {
		return r.next.FindActive(ctx, actorID, courseKey)
	})
}

func (r *breakerEntitlementRepository) Create(ctx context.Context, entitlement *entity.Entitlement) error {
	_, err := execute(r.breaker, func() (struct{}, error) {
		return struct{}{}, r.next.Create(ctx, entitlement)
	})

	return err
}

func (r *breakerEntitlementRepository) FindByReference(ctx context.Context, reference string) (*entity.Entitlement, error) {
	return execute(r.breaker, func() (*entity.Entitlement, error) {
		return r.next.FindByReference(ctx, reference)
	})
}

func (r *breakerEntitlementRepository) FindByActor(ctx context.Context, actorID uuid.UUID) ([]*entity.Entitlement, error) {
	return execute(r.breaker, func() ([]*entity.Entitlement, error) {
		return r.next.FindByActor(ctx, actorID)
	})
}

// execute runs fn through the breaker and maps rejections to ErrStoreUnavailable.
func execute[T any](breaker *gobreaker.CircuitBreaker[any], fn func() (T, error)) (T, error) {
	var zero T
	result, err := breaker.Execute(func() (any, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}
	if err != nil {
		return zero, err
	}

	value, ok := result.(T)
	if !ok {
		return zero, nil
	}

	return value, nil
}
