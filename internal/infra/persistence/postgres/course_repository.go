package postgres

import (
	"context"

	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/repository"
	"pesantren/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// courseRepository implements the repository.CourseRepository interface.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{
		db: db,
	}
}

// Create persists a new course.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCourse
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required course information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	course.ID = courseM.ID
	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// FindByKey retrieves a course by its key.
func (repo *courseRepository) FindByKey(ctx context.Context, key string) (*entity.Course, error) {
	var courseM model.CourseModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by key")
	}

	return toCourseDomain(&courseM), nil
}

// List retrieves every course ordered by title.
func (repo *courseRepository) List(ctx context.Context) ([]*entity.Course, error) {
	var courseModels []*model.CourseModel

	if err := repo.db.WithContext(ctx).
		Order("title ASC").
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(courseModels))
	for _, courseM := range courseModels {
		courses = append(courses, toCourseDomain(courseM))
	}

	return courses, nil
}

// --- Mapper Functions ---

func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	return &entity.Course{
		ID:                  data.ID,
		Key:                 data.Key,
		Title:               data.Title,
		Description:         data.Description,
		MinimumContribution: data.MinimumContribution,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromCourseDomain(data *entity.Course) *model.CourseModel {
	if data == nil {
		return nil
	}

	return &model.CourseModel{
		ID:                  data.ID,
		Key:                 data.Key,
		Title:               data.Title,
		Description:         data.Description,
		MinimumContribution: data.MinimumContribution,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
