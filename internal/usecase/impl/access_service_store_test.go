package impl

import (
	"context"
	"slices"
	"sync"
	"testing"

	"pesantren/internal/domain/entity"
	"pesantren/internal/domain/repository"
	"pesantren/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memEntitlementStore keeps entitlements in memory and enforces the same uniqueness
// rules as the entitlements table.
type memEntitlementStore struct {
	mu   sync.Mutex
	rows []*entity.Entitlement
}

func (s *memEntitlementStore) FindActive(_ context.Context, actorID uuid.UUID, courseKey string) (*entity.Entitlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.Grants(actorID, courseKey) {
			return row, nil
		}
	}

	return nil, repository.ErrEntitlementNotFound
}

func (s *memEntitlementStore) Create(_ context.Context, ent *entity.Entitlement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.Reference == ent.Reference {
			return repository.ErrDuplicateReference
		}
		if ent.IsActive() && row.Grants(ent.ActorID, ent.CourseKey) {
			return repository.ErrDuplicateActiveEntitlement
		}
	}
	ent.ID = uuid.New()
	s.rows = append(s.rows, ent)

	return nil
}

func (s *memEntitlementStore) FindByReference(_ context.Context, reference string) (*entity.Entitlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.Reference == reference {
			return row, nil
		}
	}

	return nil, repository.ErrEntitlementNotFound
}

func (s *memEntitlementStore) FindByActor(_ context.Context, actorID uuid.UUID) ([]*entity.Entitlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.Entitlement
	for _, row := range slices.Backward(s.rows) {
		if row.ActorID == actorID {
			out = append(out, row)
		}
	}

	return out, nil
}

func TestAccessService_UnlockThenCheckAccess(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	store := &memEntitlementStore{}

	srv, m := newAccessServiceForTest(t)
	srv.entitlementRepo = store

	m.courses.EXPECT().FindByKey(mock.Anything, "bahasa-arab").Return(testCourse(0), nil)
	m.payments.EXPECT().ConfirmPayment(mock.Anything, int64(10000)).Return(&service.ConfirmationToken{Token: "stub-min", Amount: 10000}, nil).Once()
	m.references.EXPECT().NewReference().Return("INFAQ-MIN", nil).Once()
	m.publisher.EXPECT().PublishEntitlementGranted(mock.Anything, mock.MatchedBy(func(e *service.EntitlementGrantedEvent) bool {
		return e.Reference == "INFAQ-MIN" && e.ContributionAmount == 10000
	})).Return(nil).Once()

	state, err := srv.CheckAccess(ctx, &actorID, "bahasa-arab", false)
	require.NoError(t, err)
	require.Equal(t, entity.GateDenied, state)

	// The configured minimum applies to a course without its own, and is inclusive.
	result, err := srv.Unlock(ctx, &actorID, "bahasa-arab", 10000)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, int64(10000), result.Entitlement.ContributionAmount)

	state, err = srv.CheckAccess(ctx, &actorID, "bahasa-arab", false)
	require.NoError(t, err)
	assert.Equal(t, entity.GateGranted, state)

	state, err = srv.CheckAccess(ctx, &actorID, "tajwid", false)
	require.NoError(t, err)
	assert.Equal(t, entity.GateDenied, state)

	other := uuid.New()
	state, err = srv.CheckAccess(ctx, &other, "bahasa-arab", false)
	require.NoError(t, err)
	assert.Equal(t, entity.GateDenied, state)

	// Unlocking again returns the stored row without paying or publishing twice.
	again, err := srv.Unlock(ctx, &actorID, "bahasa-arab", 50000)
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Same(t, result.Entitlement, again.Entitlement)

	rows, err := store.FindByActor(ctx, actorID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	found, err := store.FindByReference(ctx, "INFAQ-MIN")
	require.NoError(t, err)
	assert.Equal(t, "stub-min", found.PaymentToken)
}

func TestAccessService_UnlockBelowMinimumLeavesStoreEmpty(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	store := &memEntitlementStore{}

	srv, m := newAccessServiceForTest(t)
	srv.entitlementRepo = store
	m.courses.EXPECT().FindByKey(mock.Anything, "bahasa-arab").Return(testCourse(0), nil)

	_, err := srv.Unlock(ctx, &actorID, "bahasa-arab", 9999)
	require.Error(t, err)

	state, err := srv.CheckAccess(ctx, &actorID, "bahasa-arab", false)
	require.NoError(t, err)
	assert.Equal(t, entity.GateDenied, state)
	assert.Empty(t, store.rows)
}
