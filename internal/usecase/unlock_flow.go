package usecase

import (
	"context"
	"sync"

	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"

	"github.com/google/uuid"
)

// UnlockState is the state of an unlock dialog.
type UnlockState int

const (
	UnlockIdle UnlockState = iota
	UnlockSubmitting
	UnlockSuccess
)

// String returns the lowercase state name.
func (s UnlockState) String() string {
	switch s {
	case UnlockSubmitting:
		return "submitting"
	case UnlockSuccess:
		return "success"
	default:
		return "idle"
	}
}

// UnlockFlow drives one unlock dialog: Idle -> Submitting -> Success, or back to Idle on
// failure with the error kept for display until the next submission. A success
// re-resolves the attached gate.
type UnlockFlow struct {
	unlocker Unlocker
	gate     *AccessGate

	mu      sync.Mutex
	state   UnlockState
	lastErr error
	result  *UnlockResult
}

// NewUnlockFlow creates an idle flow. gate may be nil.
func NewUnlockFlow(unlocker Unlocker, gate *AccessGate) *UnlockFlow {
	return &UnlockFlow{
		unlocker: unlocker,
		gate:     gate,
		state:    UnlockIdle,
	}
}

// Submit runs the unlock for selection. While a submission is outstanding further
// submissions return ErrSubmissionInProgress without reaching the unlocker. With a gate
// attached, Submit is refused unless the gate resolved to a clean Denied.
func (f *UnlockFlow) Submit(ctx context.Context, actorID *uuid.UUID, courseKey string, selection entity.AmountSelection) (*UnlockResult, error) {
	f.mu.Lock()
	switch f.state {
	case UnlockSubmitting:
		f.mu.Unlock()

		return nil, domainerrors.ErrSubmissionInProgress
	case UnlockSuccess:
		result := f.result
		f.mu.Unlock()

		return result, nil
	}
	if f.gate != nil && !f.gate.UnlockAllowed() {
		err := f.gate.Err()
		if err == nil {
			err = domainerrors.ErrUnlockNotAvailable
		}
		f.lastErr = err
		f.mu.Unlock()

		return nil, err
	}
	f.state = UnlockSubmitting
	f.mu.Unlock()

	result, err := f.unlocker.UnlockWithSelection(ctx, actorID, courseKey, selection)

	f.mu.Lock()
	if err != nil {
		f.state = UnlockIdle
		f.lastErr = err
		f.mu.Unlock()

		return nil, err
	}
	f.state = UnlockSuccess
	f.lastErr = nil
	f.result = result
	f.mu.Unlock()

	if f.gate != nil {
		// The unlock already succeeded; a gate error here only means the view stays stale.
		_, _ = f.gate.Resolve(ctx)
	}

	return result, nil
}

// State returns the current dialog state.
func (f *UnlockFlow) State() UnlockState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// LastError returns the error of the most recent failed or refused submission.
func (f *UnlockFlow) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastErr
}
