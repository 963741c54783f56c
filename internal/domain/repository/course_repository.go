package repository

import (
	"context"

	"pesantren/internal/domain/entity"
	"pesantren/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalogue persistence.
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrDuplicateCourse = errors.New("course key already exists")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrDuplicateLesson = errors.New("lesson slug already exists in course")
	ErrUnknownCourse   = errors.New("lesson references an unknown course")
)

// CourseRepository persists courses.
type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	FindByKey(ctx context.Context, key string) (*entity.Course, error)
	List(ctx context.Context) ([]*entity.Course, error)
}

// LessonRepository persists lessons and their ordered blocks.
type LessonRepository interface {
	Create(ctx context.Context, lesson *entity.Lesson) error

	// FindBySlug returns one lesson with its blocks.
	FindBySlug(ctx context.Context, courseKey, slug string) (*entity.Lesson, error)

	// ListByCourse returns the lesson outline ordered by position. Blocks are not loaded.
	ListByCourse(ctx context.Context, courseKey string) ([]*entity.Lesson, error)

	// UpdatePosition moves one lesson.
	UpdatePosition(ctx context.Context, id uuid.UUID, position int) error
}
