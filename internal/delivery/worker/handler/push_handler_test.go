package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pesantren/config"
	"pesantren/internal/domain/constants"
	"pesantren/internal/domain/entity"
	"pesantren/internal/domain/repository"
	"pesantren/internal/domain/service"
	"pesantren/internal/errors"
	mockRepo "pesantren/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, event *service.EntitlementGrantedEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/entitlement-granted-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockRepo.MockEntitlementRepository) {
	t.Helper()

	repo := mockRepo.NewMockEntitlementRepository(t)
	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		EntitlementRepo: repo,
	})

	return h, repo
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push/entitlements", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	stored := &entity.Entitlement{
		ID:                 uuid.New(),
		ActorID:            uuid.New(),
		CourseKey:          "bahasa-arab",
		Status:             entity.EntitlementStatusActive,
		ContributionAmount: 25000,
		Reference:          "INFQ-ABC",
	}
	event := func() *service.EntitlementGrantedEvent {
		return &service.EntitlementGrantedEvent{
			RequestID:          "req-1",
			EntitlementID:      stored.ID.String(),
			ActorID:            stored.ActorID.String(),
			CourseKey:          stored.CourseKey,
			ContributionAmount: stored.ContributionAmount,
			Reference:          stored.Reference,
		}
	}

	t.Run("matching event is acknowledged", func(t *testing.T) {
		h, repo := newPushHandler(t, &config.Config{})
		repo.EXPECT().FindByReference(mock.Anything, "INFQ-ABC").Return(stored, nil).Once()

		rec := servePush(h, pushBody(t, event(), map[string]string{"event_type": constants.EventTypeEntitlementGranted}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mismatch is acknowledged without retry", func(t *testing.T) {
		h, repo := newPushHandler(t, &config.Config{})
		repo.EXPECT().FindByReference(mock.Anything, "INFQ-ABC").Return(stored, nil).Once()

		ev := event()
		ev.ContributionAmount = 1
		rec := servePush(h, pushBody(t, ev, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown reference is acknowledged", func(t *testing.T) {
		h, repo := newPushHandler(t, &config.Config{})
		repo.EXPECT().FindByReference(mock.Anything, "INFQ-ABC").Return(nil, repository.ErrEntitlementNotFound).Once()

		rec := servePush(h, pushBody(t, event(), nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store failure asks for redelivery", func(t *testing.T) {
		h, repo := newPushHandler(t, &config.Config{})
		repo.EXPECT().FindByReference(mock.Anything, "INFQ-ABC").Return(nil, errors.New("connection refused")).Once()

		rec := servePush(h, pushBody(t, event(), nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("other event types are skipped", func(t *testing.T) {
		h, _ := newPushHandler(t, &config.Config{})

		rec := servePush(h, pushBody(t, event(), map[string]string{"event_type": "course.created"}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed data", func(t *testing.T) {
		h, _ := newPushHandler(t, &config.Config{})

		rec := servePush(h, `{"message":{"data":"%%%"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("google push outside develop requires a token", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = constants.EnvProduction
		h, _ := newPushHandler(t, cfg)
		require.NotNil(t, h.verify)

		rec := servePush(h, pushBody(t, event(), nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("develop skips token verification", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = constants.EnvDevelop
		h, _ := newPushHandler(t, cfg)
		assert.Nil(t, h.verify)
	})
}

func TestMatchEvent(t *testing.T) {
	stored := &entity.Entitlement{ID: uuid.New(), ActorID: uuid.New(), CourseKey: "fiqih", Status: entity.EntitlementStatusInactive}
	err := matchEvent(stored, &service.EntitlementGrantedEvent{
		EntitlementID: stored.ID.String(),
		ActorID:       stored.ActorID.String(),
		CourseKey:     "fiqih",
	})
	assert.ErrorIs(t, err, errEventMismatch)
}
