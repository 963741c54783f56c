package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "pesantren/internal/delivery/context"
	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/repository"
	"pesantren/internal/errors"
	"pesantren/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type courseService struct {
	courseRepo repository.CourseRepository
	lessonRepo repository.LessonRepository
	txManager  repository.TransactionManager
	access     usecase.AccessChecker
	logger     *slog.Logger
}

// CourseServiceParams holds dependencies for CourseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	LessonRepo repository.LessonRepository
	TxManager  repository.TransactionManager
	Access     usecase.AccessUsecase
	Logger     *slog.Logger
}

// NewCourseService creates the catalogue use cases.
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		courseRepo: params.CourseRepo,
		lessonRepo: params.LessonRepo,
		txManager:  params.TxManager,
		access:     params.Access,
		logger:     params.Logger,
	}
}

func (srv *courseService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCourse implements usecase.CourseUsecase.
func (srv *courseService) CreateCourse(ctx context.Context, input *usecase.CreateCourseInput) (*entity.Course, error) {
	if input.MinimumContribution < 0 {
		return nil, domainerrors.ErrInvalidAmount.WithDetails("minimum contribution must not be negative")
	}

	course := &entity.Course{
		Key:                 input.Key,
		Title:               input.Title,
		Description:         input.Description,
		MinimumContribution: input.MinimumContribution,
	}
	if err := srv.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repository.ErrDuplicateCourse) {
			return nil, domainerrors.ErrCourseAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create course")
	}

	srv.getLogger(ctx).InfoContext(ctx, "Course created", slog.String("course_key", course.Key))

	return course, nil
}

// ListCourses implements usecase.CourseUsecase.
func (srv *courseService) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	courses, err := srv.courseRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

// GetCourseOutline implements usecase.CourseUsecase.
func (srv *courseService) GetCourseOutline(ctx context.Context, actor entity.Actor, courseKey string) (*usecase.CourseOutline, error) {
	course, err := srv.findCourse(ctx, courseKey)
	if err != nil {
		return nil, err
	}

	lessons, err := srv.lessonRepo.ListByCourse(ctx, courseKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lessons")
	}

	outline := &usecase.CourseOutline{
		Course:  course,
		Lessons: make([]*usecase.LessonSummary, 0, len(lessons)),
	}

	gate := usecase.NewAccessGate(srv.access, actor.IDPtr(), course.Classify(nil))
	state, err := gate.Resolve(ctx)
	if err != nil {
		srv.getLogger(ctx).WarnContext(ctx, "Course access check failed",
			slog.String("course_key", courseKey),
			slog.Any("error", err),
		)
		outline.Notice = noticeFor(err)
	}
	outline.State = state

	for _, lesson := range lessons {
		outline.Lessons = append(outline.Lessons, &usecase.LessonSummary{
			ID:            lesson.ID,
			Slug:          lesson.Slug,
			Title:         lesson.Title,
			Summary:       lesson.Summary,
			Position:      lesson.Position,
			IsFreePreview: lesson.IsFreePreview,
			Locked:        !lesson.IsFreePreview && state != entity.GateGranted,
		})
	}

	return outline, nil
}

// CreateLesson implements usecase.CourseUsecase.
func (srv *courseService) CreateLesson(ctx context.Context, courseKey string, input *usecase.CreateLessonInput) (*entity.Lesson, error) {
	lesson := &entity.Lesson{
		CourseKey:     courseKey,
		Slug:          input.Slug,
		Title:         input.Title,
		Summary:       input.Summary,
		IsFreePreview: input.IsFreePreview,
		Blocks:        input.Blocks,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewCourseRepository().FindByKey(ctx, courseKey); err != nil {
			if errors.Is(err, repository.ErrCourseNotFound) {
				return domainerrors.ErrCourseNotFound
			}

			return errors.Wrap(err, "failed to find course")
		}

		lessonRepo := factory.NewLessonRepository()
		existing, err := lessonRepo.ListByCourse(ctx, courseKey)
		if err != nil {
			return errors.Wrap(err, "failed to list lessons")
		}

		lesson.Position = len(existing)
		if err := lessonRepo.Create(ctx, lesson); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateLesson):
				return domainerrors.ErrLessonAlreadyExists
			case errors.Is(err, repository.ErrUnknownCourse):
				return domainerrors.ErrCourseNotFound
			default:
				return errors.Wrap(err, "failed to create lesson")
			}
		}

		if input.Position == nil || *input.Position == lesson.Position {
			return nil
		}

		return moveLesson(ctx, lessonRepo, append(existing, lesson), lesson.ID, *input.Position)
	})
	if err != nil {
		return nil, err
	}

	srv.getLogger(ctx).InfoContext(ctx, "Lesson created",
		slog.String("course_key", courseKey),
		slog.String("slug", lesson.Slug),
		slog.Int("position", lesson.Position),
	)

	return lesson, nil
}

// ReorderLesson implements usecase.CourseUsecase.
func (srv *courseService) ReorderLesson(ctx context.Context, courseKey string, lessonID uuid.UUID, position int) ([]*entity.Lesson, error) {
	var lessons []*entity.Lesson

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		lessonRepo := factory.NewLessonRepository()

		var err error
		lessons, err = lessonRepo.ListByCourse(ctx, courseKey)
		if err != nil {
			return errors.Wrap(err, "failed to list lessons")
		}

		return moveLesson(ctx, lessonRepo, lessons, lessonID, position)
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(lessons, func(a, b *entity.Lesson) int {
		return a.Position - b.Position
	})

	return lessons, nil
}

// moveLesson renumbers lessons and persists only the rows whose position changed.
func moveLesson(ctx context.Context, lessonRepo repository.LessonRepository, lessons []*entity.Lesson, lessonID uuid.UUID, position int) error {
	changes, ok := entity.MoveLesson(lessons, lessonID, position)
	if !ok {
		return domainerrors.ErrInvalidLessonOrder
	}

	for _, change := range changes {
		if err := lessonRepo.UpdatePosition(ctx, change.LessonID, change.Position); err != nil {
			return errors.Wrap(err, "failed to update lesson position")
		}
	}

	return nil
}

func (srv *courseService) findCourse(ctx context.Context, courseKey string) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByKey(ctx, courseKey)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	return course, nil
}

// noticeFor returns the user-facing message of a surfaced gate error.
func noticeFor(err error) string {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.Message()
	}

	return domainerrors.ErrStoreUnavailable.Message()
}
