package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pesantren/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishEntitlementGranted(t *testing.T) {
	event := &service.EntitlementGrantedEvent{
		RequestID:          "req-1",
		EntitlementID:      "ent-1",
		ActorID:            "actor-1",
		CourseKey:          "bahasa-arab",
		ContributionAmount: 25000,
		Reference:          "INFAQ-ABC",
		GrantedAt:          "2026-01-01T00:00:00Z",
	}

	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishEntitlementGranted(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "ent-1", received.Message.MessageID)
	assert.Equal(t, "entitlement.granted", received.Message.Attributes["event_type"])
	assert.Equal(t, "bahasa-arab", received.Message.Attributes["course_key"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.EntitlementGrantedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishEntitlementGranted(context.Background(), &service.EntitlementGrantedEvent{EntitlementID: "ent-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
