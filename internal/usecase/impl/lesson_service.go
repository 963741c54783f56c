package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"pesantren/config"
	deliverycontext "pesantren/internal/delivery/context"
	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/quiz"
	"pesantren/internal/domain/repository"
	"pesantren/internal/errors"
	"pesantren/internal/usecase"

	"go.uber.org/fx"
)

const excerptRunes = 160

type lessonService struct {
	courseRepo repository.CourseRepository
	lessonRepo repository.LessonRepository
	access     usecase.AccessChecker
	infaq      *config.InfaqConfig
	logger     *slog.Logger
}

// LessonServiceParams holds dependencies for LessonService, injected by Fx.
type LessonServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	LessonRepo repository.LessonRepository
	Access     usecase.AccessUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewLessonService creates the lesson view and quiz use cases.
func NewLessonService(params LessonServiceParams) usecase.LessonUsecase {
	infaq := params.Config.Infaq
	if infaq == nil {
		infaq = &config.InfaqConfig{}
	}

	return &lessonService{
		courseRepo: params.CourseRepo,
		lessonRepo: params.LessonRepo,
		access:     params.Access,
		infaq:      infaq,
		logger:     params.Logger,
	}
}

func (srv *lessonService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetLesson implements usecase.LessonUsecase. Locked lessons render as a preview with the
// unlock call to action, including when the entitlement store is down.
func (srv *lessonService) GetLesson(ctx context.Context, actor entity.Actor, courseKey, slug string, display entity.DisplaySettings) (*usecase.LessonView, error) {
	course, lesson, err := srv.load(ctx, courseKey, slug)
	if err != nil {
		return nil, err
	}

	view := &usecase.LessonView{
		CourseKey: courseKey,
		Slug:      lesson.Slug,
		Title:     lesson.Title,
		Display:   display,
	}

	gate := usecase.NewAccessGate(srv.access, actor.IDPtr(), course.Classify(lesson))
	state, gateErr := gate.Resolve(ctx)
	if gateErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		srv.getLogger(ctx).WarnContext(ctx, "Lesson access check failed",
			slog.String("course_key", courseKey),
			slog.String("slug", slug),
			slog.Any("error", gateErr),
		)
		view.Notice = noticeFor(gateErr)
	}
	view.State = state

	if state != entity.GateGranted {
		view.Locked = &usecase.LockedPreview{
			Title:               lesson.Title,
			Excerpt:             excerpt(lesson.Summary),
			Reason:              lockReason(actor, state, gateErr),
			MinimumContribution: course.EffectiveMinimum(srv.infaq.MinimumContribution),
			Currency:            srv.infaq.Currency,
			Presets:             presetAmounts(srv.infaq),
		}

		return view, nil
	}

	view.Blocks, err = renderBlocks(lesson.Blocks, display)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render lesson")
	}

	return view, nil
}

// ScoreQuiz implements usecase.LessonUsecase.
func (srv *lessonService) ScoreQuiz(ctx context.Context, actor entity.Actor, courseKey, slug string, blockIndex int, answers []usecase.QuizAnswer) (*quiz.Result, error) {
	course, lesson, err := srv.load(ctx, courseKey, slug)
	if err != nil {
		return nil, err
	}

	state, err := srv.access.CheckAccess(ctx, actor.IDPtr(), course.Key, lesson.IsFreePreview)
	if err != nil {
		return nil, err
	}
	if state != entity.GateGranted {
		return nil, domainerrors.ErrForbidden.WithDetails("lesson is locked")
	}

	quizBlock, ok := lesson.Blocks.Quiz(blockIndex)
	if !ok {
		return nil, domainerrors.ErrQuizNotFound
	}

	session := quiz.NewSession(quizBlock)
	for _, answer := range answers {
		session.Select(answer.Question, answer.Option)
	}
	result := session.Result()

	srv.getLogger(ctx).DebugContext(ctx, "Quiz scored",
		slog.String("course_key", courseKey),
		slog.String("slug", slug),
		slog.Int("block", blockIndex),
		slog.Int("score", result.Score),
	)

	return &result, nil
}

func (srv *lessonService) load(ctx context.Context, courseKey, slug string) (*entity.Course, *entity.Lesson, error) {
	course, err := srv.courseRepo.FindByKey(ctx, courseKey)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, nil, domainerrors.ErrCourseNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find course")
	}

	lesson, err := srv.lessonRepo.FindBySlug(ctx, courseKey, slug)
	if err != nil {
		if errors.Is(err, repository.ErrLessonNotFound) {
			return nil, nil, domainerrors.ErrLessonNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find lesson")
	}

	return course, lesson, nil
}

// excerpt cuts summary to a preview length on a rune boundary.
func excerpt(summary string) string {
	if utf8.RuneCountInString(summary) <= excerptRunes {
		return summary
	}

	runes := []rune(summary)

	return string(runes[:excerptRunes]) + "…"
}
