package handler

import (
	"log/slog"
	"net/http"

	"pesantren/internal/delivery/api/middleware"
	"pesantren/internal/delivery/api/response"
	deliverycontext "pesantren/internal/delivery/context"
	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/errors"
	"pesantren/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccessHandlerParams holds dependencies for AccessHandler, injected by Fx.
type AccessHandlerParams struct {
	fx.In

	AccessUC usecase.AccessUsecase
	Logger   *slog.Logger
}

// AccessHandler serves the access gate and the unlock dialog.
type AccessHandler struct {
	accessUC usecase.AccessUsecase
	logger   *slog.Logger
}

// NewAccessHandler is the constructor for AccessHandler
func NewAccessHandler(params AccessHandlerParams) *AccessHandler {
	return &AccessHandler{
		accessUC: params.AccessUC,
		logger:   params.Logger,
	}
}

// AccessResponse is the resolved gate of a course or lesson
type AccessResponse struct {
	State          entity.GateState            `json:"state"`
	Reason         entity.LockReason           `json:"reason,omitempty"`
	Classification entity.LessonClassification `json:"classification"`
	UnlockAllowed  bool                        `json:"unlock_allowed"`
	Notice         string                      `json:"notice,omitempty"`
}

// UnlockRequest carries the unlock dialog selection. Exactly one of the fields is set.
type UnlockRequest struct {
	PresetIndex  *int    `json:"preset_index" validate:"omitempty,gte=0"`
	CustomAmount *string `json:"custom_amount" validate:"omitempty,max=32"`
}

// UnlockResponse is the actor's active entitlement and the gate after the unlock
type UnlockResponse struct {
	Entitlement *entity.Entitlement `json:"entitlement"`
	State       entity.GateState    `json:"state"`
}

// CheckAccess resolves the gate for a course, or one lesson with ?lesson=
func (h *AccessHandler) CheckAccess(c echo.Context) error {
	ctx := c.Request().Context()

	decision, err := h.accessUC.ResolveAccess(ctx, middleware.GetActor(c), c.Param("courseKey"), c.QueryParam("lesson"))
	if decision == nil {
		return err
	}

	resp := AccessResponse{
		State:          decision.State,
		Reason:         decision.Reason,
		Classification: decision.Classification,
		UnlockAllowed:  decision.State == entity.GateDenied && err == nil,
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("access check degraded",
			slog.String("course_key", c.Param("courseKey")),
			slog.Any("error", err),
		)
		resp.Notice = domainerrors.ErrStoreUnavailable.Message()
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			resp.Notice = appErr.Message()
		}
	}

	return response.Success(c, http.StatusOK, resp)
}

// UnlockOptions returns the presets and minimum of the unlock dialog
func (h *AccessHandler) UnlockOptions(c echo.Context) error {
	options, err := h.accessUC.UnlockOptions(c.Request().Context(), c.Param("courseKey"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, options)
}

// Unlock submits the dialog selection and returns the entitlement. It answers 201 when a
// new entitlement was written and 200 when the actor already held one.
func (h *AccessHandler) Unlock(c echo.Context) error {
	var req UnlockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unlock request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.PresetIndex != nil && req.CustomAmount != nil {
		return domainerrors.ErrInvalidAmount.WithDetails("choose either a preset or a custom amount")
	}

	var selection entity.AmountSelection
	switch {
	case req.PresetIndex != nil:
		selection.SelectPreset(*req.PresetIndex)
	case req.CustomAmount != nil:
		selection.EnterCustom(*req.CustomAmount)
	}

	ctx := c.Request().Context()
	actor := middleware.GetActor(c)
	courseKey := c.Param("courseKey")

	gate := usecase.NewAccessGate(h.accessUC, actor.IDPtr(), entity.LessonClassification{CourseKey: courseKey})
	state, err := gate.Resolve(ctx)
	if err != nil {
		return err
	}
	if state == entity.GateGranted {
		ent, err := h.activeEntitlement(c, actor, courseKey)
		if err != nil {
			return err
		}

		return response.Success(c, http.StatusOK, UnlockResponse{Entitlement: ent, State: state})
	}

	flow := usecase.NewUnlockFlow(h.accessUC, gate)
	result, err := flow.Submit(ctx, actor.IDPtr(), courseKey, selection)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, UnlockResponse{
		Entitlement: result.Entitlement,
		State:       gate.State(),
	})
}

// activeEntitlement finds the entitlement behind an already granted gate.
func (h *AccessHandler) activeEntitlement(c echo.Context, actor entity.Actor, courseKey string) (*entity.Entitlement, error) {
	entitlements, err := h.accessUC.ListEntitlements(c.Request().Context(), actor)
	if err != nil {
		return nil, err
	}
	for _, ent := range entitlements {
		if ent.IsActive() && ent.CourseKey == courseKey {
			return ent, nil
		}
	}

	return nil, domainerrors.ErrEntitlementNotFound
}
