package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Course groups lessons behind one infaq gate.
type Course struct {
	ID                  uuid.UUID `json:"id"`
	Key                 string    `json:"key"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	MinimumContribution int64     `json:"minimum_contribution"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Lesson is one page of a course, rendered from its blocks.
type Lesson struct {
	ID            uuid.UUID `json:"id"`
	CourseKey     string    `json:"course_key"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	Position      int       `json:"position"`
	IsFreePreview bool      `json:"is_free_preview"`
	Blocks        Blocks    `json:"blocks,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LessonClassification is the gate input supplied by the content layer.
type LessonClassification struct {
	CourseKey           string `json:"course_key"`
	IsFreePreview       bool   `json:"is_free_preview"`
	MinimumContribution int64  `json:"minimum_contribution"`
}

// Classify derives the gate input for lesson. A nil lesson classifies the course as a whole.
func (c *Course) Classify(lesson *Lesson) LessonClassification {
	classification := LessonClassification{
		CourseKey:           c.Key,
		MinimumContribution: c.MinimumContribution,
	}
	if lesson != nil {
		classification.IsFreePreview = lesson.IsFreePreview
	}

	return classification
}

// EffectiveMinimum is the course's own minimum contribution, or fallback when the course
// does not set one.
func (c *Course) EffectiveMinimum(fallback int64) int64 {
	if c.MinimumContribution > 0 {
		return c.MinimumContribution
	}

	return fallback
}

// PositionChange records a lesson whose position moved during a reorder.
type PositionChange struct {
	LessonID uuid.UUID
	Position int
}

// MoveLesson moves lessonID to index target within lessons (ordered by Position) and
// renumbers every lesson to 0..n-1. It returns only the lessons whose position changed.
func MoveLesson(lessons []*Lesson, lessonID uuid.UUID, target int) ([]PositionChange, bool) {
	if target < 0 || target >= len(lessons) {
		return nil, false
	}

	ordered := slices.Clone(lessons)
	slices.SortStableFunc(ordered, func(a, b *Lesson) int {
		return a.Position - b.Position
	})

	from := slices.IndexFunc(ordered, func(l *Lesson) bool { return l.ID == lessonID })
	if from < 0 {
		return nil, false
	}

	moved := ordered[from]
	ordered = slices.Delete(ordered, from, from+1)
	ordered = slices.Insert(ordered, target, moved)

	var changes []PositionChange
	for i, lesson := range ordered {
		if lesson.Position != i {
			changes = append(changes, PositionChange{LessonID: lesson.ID, Position: i})
			lesson.Position = i
		}
	}

	return changes, true
}
