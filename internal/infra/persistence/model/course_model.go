package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModel is the GORM-specific struct for the 'courses' table.
type CourseModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Key                 string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Title               string    `gorm:"type:varchar(255);not null"`
	Description         string    `gorm:"type:text"`
	MinimumContribution int64     `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// LessonModel is the GORM-specific struct for the 'lessons' table.
// Blocks hold the kind-tagged JSON encoding of entity.Blocks.
type LessonModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CourseKey     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_lessons_course_slug;index:idx_lessons_course_position,priority:1"`
	Slug          string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_lessons_course_slug"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Summary       string    `gorm:"type:text"`
	Position      int       `gorm:"not null;default:0;index:idx_lessons_course_position,priority:2"`
	IsFreePreview bool      `gorm:"not null;default:false"`
	Blocks        []byte    `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Course *CourseModel `gorm:"foreignKey:CourseKey;references:Key;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (LessonModel) TableName() string {
	return "lessons"
}
