package usecase_test

import (
	"context"
	"sync"
	"testing"

	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	mockUsecase "pesantren/internal/mocks/usecase"
	"pesantren/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func presetSelection(index int) entity.AmountSelection {
	var selection entity.AmountSelection
	selection.SelectPreset(index)

	return selection
}

func TestUnlockState_String(t *testing.T) {
	assert.Equal(t, "idle", usecase.UnlockIdle.String())
	assert.Equal(t, "submitting", usecase.UnlockSubmitting.String())
	assert.Equal(t, "success", usecase.UnlockSuccess.String())
	assert.Equal(t, "idle", usecase.UnlockState(42).String())
}

func TestUnlockFlow_Submit(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	selection := presetSelection(1)

	t.Run("success re-resolves the gate", func(t *testing.T) {
		access := mockUsecase.NewMockAccessUsecase(t)
		result := &usecase.UnlockResult{
			Entitlement: &entity.Entitlement{ActorID: actorID, CourseKey: "tajwid", Status: entity.EntitlementStatusActive},
			Created:     true,
		}

		access.EXPECT().CheckAccess(mock.Anything, &actorID, "tajwid", false).Return(entity.GateDenied, nil).Once()
		access.EXPECT().UnlockWithSelection(mock.Anything, &actorID, "tajwid", selection).Return(result, nil).Once()
		access.EXPECT().CheckAccess(mock.Anything, &actorID, "tajwid", false).Return(entity.GateGranted, nil).Once()

		gate := usecase.NewAccessGate(access, &actorID, entity.LessonClassification{CourseKey: "tajwid"})
		_, err := gate.Resolve(ctx)
		require.NoError(t, err)
		require.True(t, gate.UnlockAllowed())

		flow := usecase.NewUnlockFlow(access, gate)
		assert.Equal(t, usecase.UnlockIdle, flow.State())

		got, err := flow.Submit(ctx, &actorID, "tajwid", selection)
		require.NoError(t, err)
		assert.Same(t, result, got)
		assert.Equal(t, usecase.UnlockSuccess, flow.State())
		assert.Equal(t, entity.GateGranted, gate.State())

		// A completed dialog does not submit again.
		again, err := flow.Submit(ctx, &actorID, "tajwid", selection)
		require.NoError(t, err)
		assert.Same(t, result, again)
	})

	t.Run("failure returns to idle keeping the error and allows resubmission", func(t *testing.T) {
		access := mockUsecase.NewMockAccessUsecase(t)
		result := &usecase.UnlockResult{
			Entitlement: &entity.Entitlement{ActorID: actorID, CourseKey: "tajwid", Status: entity.EntitlementStatusActive},
			Created:     true,
		}

		access.EXPECT().UnlockWithSelection(mock.Anything, &actorID, "tajwid", selection).
			Return(nil, domainerrors.ErrStoreUnavailable).Once()
		access.EXPECT().UnlockWithSelection(mock.Anything, &actorID, "tajwid", selection).
			Return(result, nil).Once()

		flow := usecase.NewUnlockFlow(access, nil)

		_, err := flow.Submit(ctx, &actorID, "tajwid", selection)
		assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
		assert.Equal(t, usecase.UnlockIdle, flow.State())
		assert.ErrorIs(t, flow.LastError(), domainerrors.ErrStoreUnavailable)

		got, err := flow.Submit(ctx, &actorID, "tajwid", selection)
		require.NoError(t, err)
		assert.Same(t, result, got)
		assert.Equal(t, usecase.UnlockSuccess, flow.State())
		assert.NoError(t, flow.LastError())
	})

	t.Run("concurrent submission is rejected while submitting", func(t *testing.T) {
		access := mockUsecase.NewMockAccessUsecase(t)
		entered := make(chan struct{})
		proceed := make(chan struct{})

		access.EXPECT().UnlockWithSelection(mock.Anything, &actorID, "tajwid", selection).
			RunAndReturn(func(context.Context, *uuid.UUID, string, entity.AmountSelection) (*usecase.UnlockResult, error) {
				close(entered)
				<-proceed

				return &usecase.UnlockResult{Entitlement: &entity.Entitlement{Status: entity.EntitlementStatusActive}, Created: true}, nil
			}).Once()

		flow := usecase.NewUnlockFlow(access, nil)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := flow.Submit(ctx, &actorID, "tajwid", selection)
			assert.NoError(t, err)
		}()

		<-entered
		assert.Equal(t, usecase.UnlockSubmitting, flow.State())
		_, err := flow.Submit(ctx, &actorID, "tajwid", selection)
		assert.ErrorIs(t, err, domainerrors.ErrSubmissionInProgress)

		close(proceed)
		wg.Wait()
		assert.Equal(t, usecase.UnlockSuccess, flow.State())
	})

	t.Run("unresolved gate refuses to submit", func(t *testing.T) {
		access := mockUsecase.NewMockAccessUsecase(t)
		gate := usecase.NewAccessGate(access, &actorID, entity.LessonClassification{CourseKey: "tajwid"})
		flow := usecase.NewUnlockFlow(access, gate)

		_, err := flow.Submit(ctx, &actorID, "tajwid", selection)
		assert.ErrorIs(t, err, domainerrors.ErrUnlockNotAvailable)
		assert.Equal(t, usecase.UnlockIdle, flow.State())
		assert.ErrorIs(t, flow.LastError(), domainerrors.ErrUnlockNotAvailable)
		access.AssertNotCalled(t, "UnlockWithSelection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("granted gate refuses to submit", func(t *testing.T) {
		access := mockUsecase.NewMockAccessUsecase(t)
		access.EXPECT().CheckAccess(mock.Anything, &actorID, "tajwid", false).Return(entity.GateGranted, nil).Once()

		gate := usecase.NewAccessGate(access, &actorID, entity.LessonClassification{CourseKey: "tajwid"})
		_, err := gate.Resolve(ctx)
		require.NoError(t, err)

		_, err = usecase.NewUnlockFlow(access, gate).Submit(ctx, &actorID, "tajwid", selection)
		assert.ErrorIs(t, err, domainerrors.ErrUnlockNotAvailable)
	})

	t.Run("gate denied by a store error surfaces that error", func(t *testing.T) {
		access := mockUsecase.NewMockAccessUsecase(t)
		access.EXPECT().CheckAccess(mock.Anything, &actorID, "tajwid", false).
			Return(entity.GateDenied, domainerrors.ErrStoreUnavailable).Once()

		gate := usecase.NewAccessGate(access, &actorID, entity.LessonClassification{CourseKey: "tajwid"})
		_, err := gate.Resolve(ctx)
		require.Error(t, err)

		flow := usecase.NewUnlockFlow(access, gate)
		_, err = flow.Submit(ctx, &actorID, "tajwid", selection)
		assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
		assert.Equal(t, usecase.UnlockIdle, flow.State())
	})
}
