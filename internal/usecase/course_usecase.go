package usecase

import (
	"context"

	"pesantren/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCourseInput carries operator input for a new course.
type CreateCourseInput struct {
	Key                 string
	Title               string
	Description         string
	MinimumContribution int64
}

// CreateLessonInput carries operator input for a new lesson. A nil Position appends the lesson.
type CreateLessonInput struct {
	Slug          string
	Title         string
	Summary       string
	IsFreePreview bool
	Position      *int
	Blocks        entity.Blocks
}

// LessonSummary is one row of a course outline.
type LessonSummary struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	Position      int       `json:"position"`
	IsFreePreview bool      `json:"is_free_preview"`
	Locked        bool      `json:"locked"`
}

// CourseOutline is a course with its ordered lessons as seen by one actor.
type CourseOutline struct {
	Course  *entity.Course   `json:"course"`
	State   entity.GateState `json:"state"`
	Lessons []*LessonSummary `json:"lessons"`
	Notice  string           `json:"notice,omitempty"`
}

// CourseUsecase defines catalogue use cases.
type CourseUsecase interface {
	CreateCourse(ctx context.Context, input *CreateCourseInput) (*entity.Course, error)
	ListCourses(ctx context.Context) ([]*entity.Course, error)

	// GetCourseOutline returns the course and its lessons with lock flags for the actor.
	GetCourseOutline(ctx context.Context, actor entity.Actor, courseKey string) (*CourseOutline, error)

	CreateLesson(ctx context.Context, courseKey string, input *CreateLessonInput) (*entity.Lesson, error)

	// ReorderLesson moves a lesson to position and returns the renumbered outline.
	ReorderLesson(ctx context.Context, courseKey string, lessonID uuid.UUID, position int) ([]*entity.Lesson, error)
}
