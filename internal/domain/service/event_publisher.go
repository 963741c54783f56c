package service

import (
	"context"
)

// EntitlementGrantedEvent announces a successful unlock to downstream consumers.
type EntitlementGrantedEvent struct {
	RequestID          string `json:"request_id,omitempty"` // For distributed tracing
	EntitlementID      string `json:"entitlement_id"`
	ActorID            string `json:"actor_id"`
	CourseKey          string `json:"course_key"`
	ContributionAmount int64  `json:"contribution_amount"`
	Reference          string `json:"reference"`
	GrantedAt          string `json:"granted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEntitlementGranted publishes an unlock event
	PublishEntitlementGranted(ctx context.Context, event *EntitlementGrantedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
