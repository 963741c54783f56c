package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pesantren/internal/delivery/api/middleware"
	"pesantren/internal/delivery/api/response"
	"pesantren/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LessonHandlerParams holds dependencies for LessonHandler, injected by Fx.
type LessonHandlerParams struct {
	fx.In

	LessonUC usecase.LessonUsecase
	Display  *middleware.DisplayMiddleware
	Logger   *slog.Logger
}

// LessonHandler serves lesson pages and quiz scoring.
type LessonHandler struct {
	lessonUC usecase.LessonUsecase
	display  *middleware.DisplayMiddleware
	logger   *slog.Logger
}

// NewLessonHandler is the constructor for LessonHandler
func NewLessonHandler(params LessonHandlerParams) *LessonHandler {
	return &LessonHandler{
		lessonUC: params.LessonUC,
		display:  params.Display,
		logger:   params.Logger,
	}
}

// QuizAnswerRequest is one answer event
type QuizAnswerRequest struct {
	Question *int `json:"question" validate:"required,gte=0"`
	Option   *int `json:"option" validate:"required,gte=0"`
}

// ScoreQuizRequest represents the request body for scoring a quiz
type ScoreQuizRequest struct {
	Answers []QuizAnswerRequest `json:"answers" validate:"max=500,dive"`
}

// GetLesson renders a lesson, or its locked preview, for the current actor
func (h *LessonHandler) GetLesson(c echo.Context) error {
	display := middleware.GetDisplaySettings(c, h.display.Defaults())

	view, err := h.lessonUC.GetLesson(c.Request().Context(), middleware.GetActor(c), c.Param("courseKey"), c.Param("slug"), display)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}

// ScoreQuiz scores the answers to one quiz block of a lesson
func (h *LessonHandler) ScoreQuiz(c echo.Context) error {
	blockIndex, err := strconv.Atoi(c.Param("block"))
	if err != nil || blockIndex < 0 {
		return response.BadRequest(c, "INVALID_BLOCK", "Invalid quiz block index")
	}

	var req ScoreQuizRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quiz answers")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	answers := make([]usecase.QuizAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, usecase.QuizAnswer{Question: *a.Question, Option: *a.Option})
	}

	result, err := h.lessonUC.ScoreQuiz(c.Request().Context(), middleware.GetActor(c), c.Param("courseKey"), c.Param("slug"), blockIndex, answers)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}
