package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntitlementStatus is the lifecycle status of an entitlement row.
type EntitlementStatus string

const (
	EntitlementStatusActive   EntitlementStatus = "active"
	EntitlementStatusInactive EntitlementStatus = "inactive"
)

// IsValid checks if the status is a known value.
func (s EntitlementStatus) IsValid() bool {
	return s == EntitlementStatusActive || s == EntitlementStatusInactive
}

// Entitlement grants one actor access to one course. Rows are append-only for the
// e-learning module; deactivation belongs to administration tooling.
type Entitlement struct {
	ID                 uuid.UUID         `json:"id"`
	ActorID            uuid.UUID         `json:"actor_id"`
	CourseKey          string            `json:"course_key"`
	Status             EntitlementStatus `json:"status"`
	ContributionAmount int64             `json:"contribution_amount"` // Smallest currency unit.
	Reference          string            `json:"reference"`           // Opaque transaction tag.
	PaymentToken       string            `json:"-"`
	CreatedAt          time.Time         `json:"created_at"`
}

// IsActive reports whether the entitlement grants access.
func (e *Entitlement) IsActive() bool {
	return e != nil && e.Status == EntitlementStatusActive
}

// Grants reports whether the entitlement opens courseKey for actorID.
func (e *Entitlement) Grants(actorID uuid.UUID, courseKey string) bool {
	return e.IsActive() && e.ActorID == actorID && e.CourseKey == courseKey
}
