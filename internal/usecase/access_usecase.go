package usecase

import (
	"context"

	"pesantren/internal/domain/entity"

	"github.com/google/uuid"
)

// UnlockOptions describes the unlock dialog of a course.
type UnlockOptions struct {
	CourseKey           string                `json:"course_key"`
	Currency            string                `json:"currency"`
	MinimumContribution int64                 `json:"minimum_contribution"`
	Presets             []entity.PresetAmount `json:"presets"`
}

// AccessDecision is a resolved gate together with its input and lock reason.
type AccessDecision struct {
	State          entity.GateState            `json:"state"`
	Reason         entity.LockReason           `json:"reason,omitempty"`
	Classification entity.LessonClassification `json:"classification"`
}

// UnlockResult is the entitlement an unlock ended with. Created is false when an active
// entitlement already existed and nothing was written.
type UnlockResult struct {
	Entitlement *entity.Entitlement `json:"entitlement"`
	Created     bool                `json:"created"`
}

// AccessChecker resolves the access gate for one lesson classification.
type AccessChecker interface {
	// CheckAccess returns Granted or Denied. A store failure returns Denied together with an
	// error matching ErrStoreUnavailable.
	CheckAccess(ctx context.Context, actorID *uuid.UUID, courseKey string, isFreePreview bool) (entity.GateState, error)
}

// Unlocker runs the unlock operation for a dialog selection.
type Unlocker interface {
	UnlockWithSelection(ctx context.Context, actorID *uuid.UUID, courseKey string, selection entity.AmountSelection) (*UnlockResult, error)
}

// AccessUsecase defines the access gate, unlock and entitlement use cases.
type AccessUsecase interface {
	AccessChecker
	Unlocker

	// ResolveAccess classifies the course or one of its lessons and resolves the gate.
	// An empty lessonSlug resolves the course as a whole.
	ResolveAccess(ctx context.Context, actor entity.Actor, courseKey, lessonSlug string) (*AccessDecision, error)

	// UnlockOptions returns presets, currency and the effective minimum for a course.
	UnlockOptions(ctx context.Context, courseKey string) (*UnlockOptions, error)

	// Unlock validates amount, confirms the payment and writes an active entitlement.
	// An existing active entitlement for the same actor and course is returned unchanged
	// with Created false.
	Unlock(ctx context.Context, actorID *uuid.UUID, courseKey string, amount int64) (*UnlockResult, error)

	// ListEntitlements returns the actor's entitlements, newest first.
	ListEntitlements(ctx context.Context, actor entity.Actor) ([]*entity.Entitlement, error)

	// Receipt renders the QR receipt of an entitlement owned by the actor.
	Receipt(ctx context.Context, actor entity.Actor, reference string) ([]byte, error)

	// VerifyReceipt decodes scanned QR data and returns the matching entitlement.
	VerifyReceipt(ctx context.Context, qrData string) (*entity.Entitlement, error)
}
