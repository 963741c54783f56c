package model

import (
	"time"

	"github.com/google/uuid"
)

// EntitlementModel is the GORM-specific struct for the 'entitlements' table.
// The partial unique index allows a single active row per actor and course.
type EntitlementModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ActorID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entitlements_active_actor_course,where:status = 'active'"`
	CourseKey          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_entitlements_active_actor_course,where:status = 'active'"`
	Status             string    `gorm:"type:varchar(16);not null;default:'active';index"`
	ContributionAmount int64     `gorm:"not null"`
	Reference          string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_entitlements_reference"`
	PaymentToken       string    `gorm:"type:varchar(128)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntitlementModel) TableName() string {
	return "entitlements"
}
