package postgres

import (
	"context"
	"encoding/json"

	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/repository"
	"pesantren/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// lessonRepository implements the repository.LessonRepository interface.
type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository is the constructor for lessonRepository.
func NewLessonRepository(db *gorm.DB) repository.LessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// Create persists a new lesson together with its encoded blocks.
func (repo *lessonRepository) Create(ctx context.Context, lesson *entity.Lesson) error {
	lessonM, err := fromLessonDomain(lesson)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(lessonM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLesson
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUnknownCourse
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required lesson information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lesson")
	}

	lesson.ID = lessonM.ID
	lesson.CreatedAt = lessonM.CreatedAt
	lesson.UpdatedAt = lessonM.UpdatedAt

	return nil
}

// FindBySlug retrieves a lesson with its blocks.
func (repo *lessonRepository) FindBySlug(ctx context.Context, courseKey, slug string) (*entity.Lesson, error) {
	var lessonM model.LessonModel

	if err := repo.db.WithContext(ctx).
		Where("course_key = ? AND slug = ?", courseKey, slug).
		First(&lessonM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLessonNotFound
		}

		return nil, errors.Wrap(err, "failed to find lesson by slug")
	}

	return toLessonDomain(&lessonM)
}

// ListByCourse retrieves the lesson outline of a course without blocks.
func (repo *lessonRepository) ListByCourse(ctx context.Context, courseKey string) ([]*entity.Lesson, error) {
	var lessonModels []*model.LessonModel

	if err := repo.db.WithContext(ctx).
		Omit("blocks").
		Where("course_key = ?", courseKey).
		Order("position ASC").
		Find(&lessonModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list lessons by course")
	}

	lessons := make([]*entity.Lesson, 0, len(lessonModels))
	for _, lessonM := range lessonModels {
		lesson, err := toLessonDomain(lessonM)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}

	return lessons, nil
}

// UpdatePosition sets the position of a single lesson.
func (repo *lessonRepository) UpdatePosition(ctx context.Context, id uuid.UUID, position int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LessonModel{}).
		Where("id = ?", id).
		Update("position", position)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update lesson position")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLessonNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toLessonDomain(data *model.LessonModel) (*entity.Lesson, error) {
	if data == nil {
		return nil, nil
	}

	lesson := &entity.Lesson{
		ID:            data.ID,
		CourseKey:     data.CourseKey,
		Slug:          data.Slug,
		Title:         data.Title,
		Summary:       data.Summary,
		Position:      data.Position,
		IsFreePreview: data.IsFreePreview,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if len(data.Blocks) > 0 {
		if err := json.Unmarshal(data.Blocks, &lesson.Blocks); err != nil {
			return nil, errors.Wrapf(err, "failed to decode blocks of lesson %s", data.ID)
		}
	}

	return lesson, nil
}

func fromLessonDomain(data *entity.Lesson) (*model.LessonModel, error) {
	if data == nil {
		return nil, nil
	}

	blocks, err := json.Marshal(data.Blocks)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return &model.LessonModel{
		ID:            data.ID,
		CourseKey:     data.CourseKey,
		Slug:          data.Slug,
		Title:         data.Title,
		Summary:       data.Summary,
		Position:      data.Position,
		IsFreePreview: data.IsFreePreview,
		Blocks:        blocks,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}
