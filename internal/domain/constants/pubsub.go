// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub provider names accepted in config.PubSubConfig.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EventTypeEntitlementGranted is the event type attribute attached to published unlock events.
const EventTypeEntitlementGranted = "entitlement.granted"
