package pubsub

import (
	"context"
	"testing"

	"pesantren/config"
	"pesantren/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.Config) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: cfg,
			Logger: discardLogger(),
		}
	}

	t.Run("unconfigured falls back to noop", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(&config.Config{}))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishEntitlementGranted(context.Background(), &service.EntitlementGrantedEvent{}))
	})

	t.Run("local provider needs endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}))
		assert.Error(t, err)
	})

	t.Run("local provider", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(&config.Config{
			PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"},
		}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("google provider needs project and topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}))
		assert.Error(t, err)

		_, err = NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}}))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}))
		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}
