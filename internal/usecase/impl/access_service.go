package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pesantren/config"
	deliverycontext "pesantren/internal/delivery/context"
	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/repository"
	"pesantren/internal/domain/service"
	"pesantren/internal/errors"
	"pesantren/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxReferenceAttempts = 3

type accessService struct {
	entitlementRepo repository.EntitlementRepository
	courseRepo      repository.CourseRepository
	lessonRepo      repository.LessonRepository
	payments        service.PaymentConfirmer
	references      service.ReferenceGenerator
	receipts        service.ReceiptService
	publisher       service.EventPublisher
	infaq           *config.InfaqConfig
	logger          *slog.Logger
	now             func() time.Time

	inflightMu sync.Mutex
	inflight   map[string]struct{}
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	EntitlementRepo repository.EntitlementRepository
	CourseRepo      repository.CourseRepository
	LessonRepo      repository.LessonRepository
	Payments        service.PaymentConfirmer
	References      service.ReferenceGenerator
	Receipts        service.ReceiptService
	Publisher       service.EventPublisher
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAccessService creates the access gate and unlock use cases.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	infaq := params.Config.Infaq
	if infaq == nil {
		infaq = &config.InfaqConfig{}
	}

	return &accessService{
		entitlementRepo: params.EntitlementRepo,
		courseRepo:      params.CourseRepo,
		lessonRepo:      params.LessonRepo,
		payments:        params.Payments,
		references:      params.References,
		receipts:        params.Receipts,
		publisher:       params.Publisher,
		infaq:           infaq,
		logger:          params.Logger,
		now:             time.Now,
		inflight:        make(map[string]struct{}),
	}
}

func (srv *accessService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckAccess resolves the gate. Free previews never touch the store and anonymous actors
// are denied without a lookup. Store failures fail closed.
func (srv *accessService) CheckAccess(ctx context.Context, actorID *uuid.UUID, courseKey string, isFreePreview bool) (entity.GateState, error) {
	if isFreePreview {
		return entity.GateGranted, nil
	}
	if actorID == nil || *actorID == uuid.Nil {
		return entity.GateDenied, nil
	}

	ent, err := srv.entitlementRepo.FindActive(ctx, *actorID, courseKey)
	switch {
	case errors.Is(err, repository.ErrEntitlementNotFound):
		return entity.GateDenied, nil
	case err != nil:
		return entity.GateDenied, storeUnavailable(err)
	case ent.Grants(*actorID, courseKey):
		return entity.GateGranted, nil
	default:
		return entity.GateDenied, nil
	}
}

// ResolveAccess implements usecase.AccessUsecase.
func (srv *accessService) ResolveAccess(ctx context.Context, actor entity.Actor, courseKey, lessonSlug string) (*usecase.AccessDecision, error) {
	course, err := srv.findCourse(ctx, courseKey)
	if err != nil {
		return nil, err
	}

	var lesson *entity.Lesson
	if lessonSlug != "" {
		lesson, err = srv.lessonRepo.FindBySlug(ctx, courseKey, lessonSlug)
		if err != nil {
			if errors.Is(err, repository.ErrLessonNotFound) {
				return nil, domainerrors.ErrLessonNotFound
			}

			return nil, errors.Wrap(err, "failed to find lesson")
		}
	}

	classification := course.Classify(lesson)
	classification.MinimumContribution = course.EffectiveMinimum(srv.infaq.MinimumContribution)

	state, err := srv.CheckAccess(ctx, actor.IDPtr(), courseKey, classification.IsFreePreview)
	decision := &usecase.AccessDecision{
		State:          state,
		Reason:         lockReason(actor, state, err),
		Classification: classification,
	}

	return decision, err
}

// UnlockOptions implements usecase.AccessUsecase.
func (srv *accessService) UnlockOptions(ctx context.Context, courseKey string) (*usecase.UnlockOptions, error) {
	course, err := srv.findCourse(ctx, courseKey)
	if err != nil {
		return nil, err
	}

	return &usecase.UnlockOptions{
		CourseKey:           course.Key,
		Currency:            srv.infaq.Currency,
		MinimumContribution: course.EffectiveMinimum(srv.infaq.MinimumContribution),
		Presets:             presetAmounts(srv.infaq),
	}, nil
}

// UnlockWithSelection resolves the dialog selection against the configured presets and unlocks.
func (srv *accessService) UnlockWithSelection(ctx context.Context, actorID *uuid.UUID, courseKey string, selection entity.AmountSelection) (*usecase.UnlockResult, error) {
	if actorID == nil || *actorID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	amount, err := selection.Resolve(presetAmounts(srv.infaq))
	if err != nil {
		return nil, invalidAmount(err, 0)
	}

	return srv.Unlock(ctx, actorID, courseKey, amount)
}

// Unlock implements usecase.AccessUsecase.
func (srv *accessService) Unlock(ctx context.Context, actorID *uuid.UUID, courseKey string, amount int64) (*usecase.UnlockResult, error) {
	if actorID == nil || *actorID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	course, err := srv.findCourse(ctx, courseKey)
	if err != nil {
		return nil, err
	}

	minimum := course.EffectiveMinimum(srv.infaq.MinimumContribution)
	if err := entity.ValidateContribution(amount, minimum); err != nil {
		return nil, invalidAmount(err, minimum)
	}

	release, ok := srv.acquire(*actorID, courseKey)
	if !ok {
		return nil, domainerrors.ErrSubmissionInProgress
	}
	defer release()

	logger := srv.getLogger(ctx).With(
		slog.String("actor_id", actorID.String()),
		slog.String("course_key", courseKey),
	)

	existing, err := srv.entitlementRepo.FindActive(ctx, *actorID, courseKey)
	if err != nil && !errors.Is(err, repository.ErrEntitlementNotFound) {
		return nil, storeUnavailable(err)
	}
	if existing.IsActive() {
		logger.InfoContext(ctx, "Course already unlocked", slog.String("reference", existing.Reference))

		return &usecase.UnlockResult{Entitlement: existing}, nil
	}

	confirmation, err := srv.payments.ConfirmPayment(ctx, amount)
	if err != nil {
		if _, ok := errors.AsType[domainerrors.AppError](err); ok {
			return nil, err
		}

		return nil, errors.Join(domainerrors.ErrPaymentNotConfirmed, err)
	}

	ent, created, err := srv.createEntitlement(ctx, *actorID, courseKey, amount, confirmation)
	if err != nil {
		return nil, err
	}
	if !created {
		logger.InfoContext(ctx, "Concurrent unlock won, returning its entitlement", slog.String("reference", ent.Reference))

		return &usecase.UnlockResult{Entitlement: ent}, nil
	}

	logger.InfoContext(ctx, "Course unlocked",
		slog.String("reference", ent.Reference),
		slog.Int64("amount", ent.ContributionAmount),
	)
	srv.publishGranted(ctx, ent)

	return &usecase.UnlockResult{Entitlement: ent, Created: true}, nil
}

// createEntitlement writes the entitlement, regenerating the reference on collision. A
// concurrent unlock that won the race is returned with created false instead of a second row.
func (srv *accessService) createEntitlement(ctx context.Context, actorID uuid.UUID, courseKey string, amount int64, confirmation *service.ConfirmationToken) (*entity.Entitlement, bool, error) {
	for range maxReferenceAttempts {
		reference, err := srv.references.NewReference()
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to generate reference")
		}

		ent := &entity.Entitlement{
			ActorID:            actorID,
			CourseKey:          courseKey,
			Status:             entity.EntitlementStatusActive,
			ContributionAmount: amount,
			Reference:          reference,
			PaymentToken:       confirmation.Token,
			CreatedAt:          srv.now(),
		}

		err = srv.entitlementRepo.Create(ctx, ent)
		switch {
		case err == nil:
			return ent, true, nil
		case errors.Is(err, repository.ErrDuplicateReference):
			continue
		case errors.Is(err, repository.ErrDuplicateActiveEntitlement):
			existing, findErr := srv.entitlementRepo.FindActive(ctx, actorID, courseKey)
			if findErr != nil {
				return nil, false, storeUnavailable(findErr)
			}

			return existing, false, nil
		default:
			return nil, false, storeUnavailable(err)
		}
	}

	return nil, false, errors.Errorf("failed to allocate a unique reference after %d attempts", maxReferenceAttempts)
}

func (srv *accessService) publishGranted(ctx context.Context, ent *entity.Entitlement) {
	event := &service.EntitlementGrantedEvent{
		RequestID:          deliverycontext.GetRequestIDFromContext(ctx),
		EntitlementID:      ent.ID.String(),
		ActorID:            ent.ActorID.String(),
		CourseKey:          ent.CourseKey,
		ContributionAmount: ent.ContributionAmount,
		Reference:          ent.Reference,
		GrantedAt:          ent.CreatedAt.UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishEntitlementGranted(ctx, event); err != nil {
		srv.getLogger(ctx).WarnContext(ctx, "Failed to publish entitlement event",
			slog.String("reference", ent.Reference),
			slog.Any("error", err),
		)
	}
}

// ListEntitlements implements usecase.AccessUsecase.
func (srv *accessService) ListEntitlements(ctx context.Context, actor entity.Actor) ([]*entity.Entitlement, error) {
	if actor.IsAnonymous() {
		return nil, domainerrors.ErrUnauthenticated
	}

	entitlements, err := srv.entitlementRepo.FindByActor(ctx, actor.ID)
	if err != nil {
		return nil, storeUnavailable(err)
	}

	return entitlements, nil
}

// Receipt implements usecase.AccessUsecase.
func (srv *accessService) Receipt(ctx context.Context, actor entity.Actor, reference string) ([]byte, error) {
	if actor.IsAnonymous() {
		return nil, domainerrors.ErrUnauthenticated
	}

	ent, err := srv.findByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	// Other actors' references are reported as missing.
	if ent.ActorID != actor.ID {
		return nil, domainerrors.ErrEntitlementNotFound
	}

	png, err := srv.receipts.GenerateReceiptQR(ent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt")
	}

	return png, nil
}

// VerifyReceipt implements usecase.AccessUsecase.
func (srv *accessService) VerifyReceipt(ctx context.Context, qrData string) (*entity.Entitlement, error) {
	reference, err := srv.receipts.ParseReceiptQR(qrData)
	if err != nil {
		return nil, err
	}

	return srv.findByReference(ctx, reference)
}

func (srv *accessService) findByReference(ctx context.Context, reference string) (*entity.Entitlement, error) {
	ent, err := srv.entitlementRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrEntitlementNotFound) {
			return nil, domainerrors.ErrEntitlementNotFound
		}

		return nil, storeUnavailable(err)
	}

	return ent, nil
}

func (srv *accessService) findCourse(ctx context.Context, courseKey string) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByKey(ctx, courseKey)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	return course, nil
}

// acquire marks an unlock for actor and course as in flight.
func (srv *accessService) acquire(actorID uuid.UUID, courseKey string) (func(), bool) {
	key := actorID.String() + "|" + courseKey

	srv.inflightMu.Lock()
	defer srv.inflightMu.Unlock()

	if _, busy := srv.inflight[key]; busy {
		return nil, false
	}
	srv.inflight[key] = struct{}{}

	return func() {
		srv.inflightMu.Lock()
		delete(srv.inflight, key)
		srv.inflightMu.Unlock()
	}, true
}

func presetAmounts(infaq *config.InfaqConfig) []entity.PresetAmount {
	presets := make([]entity.PresetAmount, 0, len(infaq.Presets))
	for _, p := range infaq.Presets {
		presets = append(presets, entity.PresetAmount{Label: p.Label, Amount: p.Amount})
	}

	return presets
}

// lockReason explains a Denied state for the locked preview.
func lockReason(actor entity.Actor, state entity.GateState, err error) entity.LockReason {
	switch {
	case state == entity.GateGranted:
		return ""
	case err != nil:
		return entity.LockReasonStoreUnavailable
	case actor.IsAnonymous():
		return entity.LockReasonLoginRequired
	default:
		return entity.LockReasonNotEntitled
	}
}

// storeUnavailable tags an entitlement store failure with ErrStoreUnavailable.
func storeUnavailable(err error) error {
	if errors.Is(err, domainerrors.ErrStoreUnavailable) {
		return err
	}

	return errors.Join(domainerrors.ErrStoreUnavailable, err)
}

func invalidAmount(cause error, minimum int64) error {
	details := cause.Error()
	if errors.Is(cause, entity.ErrAmountBelowMinimum) {
		details = fmt.Sprintf("%s: minimum is %d", details, minimum)
	}

	return errors.Join(domainerrors.ErrInvalidAmount.WithDetails(details), cause)
}
