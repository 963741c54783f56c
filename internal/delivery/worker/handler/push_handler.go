package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pesantren/config"
	deliverycontext "pesantren/internal/delivery/context"
	"pesantren/internal/domain/constants"
	"pesantren/internal/domain/entity"
	"pesantren/internal/domain/repository"
	"pesantren/internal/domain/service"
	"pesantren/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// errEventMismatch marks an event that disagrees with the entitlement store.
var errEventMismatch = errors.New("entitlement event does not match store")

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// tokenVerifier validates the OIDC token of a push request.
type tokenVerifier func(req *http.Request) error

// PushHandler reconciles pushed entitlement.granted events against the entitlement store.
type PushHandler struct {
	verify          tokenVerifier
	logger          *slog.Logger
	entitlementRepo repository.EntitlementRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	EntitlementRepo repository.EntitlementRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:          params.Logger,
		entitlementRepo: params.EntitlementRepo,
	}

	// Google push requests carry an OIDC token outside local development
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Other event types may share the subscription; acknowledge and skip them
	if eventType := pushMsg.Message.Attributes["event_type"]; eventType != "" && eventType != constants.EventTypeEntitlementGranted {
		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.EntitlementGrantedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse entitlement event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("reference", event.Reference),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.reconcile(ctx, &event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Entitlement event not reconciled",
			slog.String("course_key", event.CourseKey),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// 503 makes Pub/Sub redeliver; anything else is acknowledged to stop retries
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Entitlement event reconciled",
		slog.String("course_key", event.CourseKey),
		slog.Int64("contribution_amount", event.ContributionAmount),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the push request.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.EntitlementGrantedEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// reconcile checks that the event describes an active entitlement exactly as stored.
func (h *PushHandler) reconcile(ctx context.Context, event *service.EntitlementGrantedEvent) error {
	if event.Reference == "" {
		return errors.Wrap(errEventMismatch, "event has no reference")
	}

	stored, err := h.entitlementRepo.FindByReference(ctx, event.Reference)
	if err != nil {
		if errors.Is(err, repository.ErrEntitlementNotFound) {
			return errors.Wrap(errEventMismatch, "reference is unknown")
		}

		return newRetryableError(errors.WithStack(err))
	}

	return matchEvent(stored, event)
}

func matchEvent(stored *entity.Entitlement, event *service.EntitlementGrantedEvent) error {
	switch {
	case !stored.IsActive():
		return errors.Wrap(errEventMismatch, "entitlement is not active")
	case stored.ID.String() != event.EntitlementID:
		return errors.Wrap(errEventMismatch, "entitlement id differs")
	case stored.ActorID.String() != event.ActorID:
		return errors.Wrap(errEventMismatch, "actor differs")
	case stored.CourseKey != event.CourseKey:
		return errors.Wrap(errEventMismatch, "course differs")
	case stored.ContributionAmount != event.ContributionAmount:
		return errors.Wrap(errEventMismatch, "contribution amount differs")
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
