package usecase

import (
	"context"
	"sync"

	"pesantren/internal/domain/entity"
	"pesantren/internal/errors"

	"github.com/google/uuid"
)

// ErrStaleResolution is returned when a resolution finished after a newer one started.
var ErrStaleResolution = errors.New("gate resolution superseded")

// AccessGate holds the resolution state of one lesson for one actor. It starts Unknown and
// moves to Granted or Denied once a resolution completes. Results of superseded or cancelled
// resolutions are discarded.
type AccessGate struct {
	checker        AccessChecker
	actorID        *uuid.UUID
	classification entity.LessonClassification

	mu         sync.Mutex
	state      entity.GateState
	err        error
	generation uint64
}

// NewAccessGate creates an unresolved gate.
func NewAccessGate(checker AccessChecker, actorID *uuid.UUID, classification entity.LessonClassification) *AccessGate {
	return &AccessGate{
		checker:        checker,
		actorID:        actorID,
		classification: classification,
		state:          entity.GateUnknown,
	}
}

// Resolve runs the access check and records its outcome unless ctx was cancelled or a
// newer Resolve started in the meantime.
func (g *AccessGate) Resolve(ctx context.Context) (entity.GateState, error) {
	g.mu.Lock()
	g.generation++
	generation := g.generation
	g.mu.Unlock()

	state, err := g.checker.CheckAccess(ctx, g.actorID, g.classification.CourseKey, g.classification.IsFreePreview)
	if !state.IsResolved() {
		state = entity.GateDenied
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return g.state, ctxErr
	}
	if generation != g.generation {
		return g.state, ErrStaleResolution
	}

	g.state = state
	g.err = err

	return state, err
}

// State returns the current resolution.
func (g *AccessGate) State() entity.GateState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// Err returns the error surfaced by the last applied resolution.
func (g *AccessGate) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.err
}

// UnlockAllowed reports whether the unlock dialog may be offered. It is offered only for a
// clean Denied: never before the gate resolved, and never when Denied came from a failed check.
func (g *AccessGate) UnlockAllowed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state == entity.GateDenied && g.err == nil
}

// Classification returns the gate input.
func (g *AccessGate) Classification() entity.LessonClassification {
	return g.classification
}
