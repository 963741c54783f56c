package handler

import (
	"log/slog"
	"net/http"

	"pesantren/internal/delivery/api/middleware"
	"pesantren/internal/delivery/api/response"
	"pesantren/internal/domain/entity"
	"pesantren/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CourseHandlerParams holds dependencies for CourseHandler, injected by Fx.
type CourseHandlerParams struct {
	fx.In

	CourseUC usecase.CourseUsecase
	Logger   *slog.Logger
}

// CourseHandler serves the catalogue and its operator endpoints.
type CourseHandler struct {
	courseUC usecase.CourseUsecase
	logger   *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler
func NewCourseHandler(params CourseHandlerParams) *CourseHandler {
	return &CourseHandler{
		courseUC: params.CourseUC,
		logger:   params.Logger,
	}
}

// CreateCourseRequest represents the request body for creating a course
type CreateCourseRequest struct {
	Key                 string `json:"key" validate:"required,max=64,slug"`
	Title               string `json:"title" validate:"required,max=200"`
	Description         string `json:"description" validate:"max=2000"`
	MinimumContribution int64  `json:"minimum_contribution" validate:"gte=0"`
}

// CreateLessonRequest represents the request body for creating a lesson
type CreateLessonRequest struct {
	Slug          string        `json:"slug" validate:"required,max=100,slug"`
	Title         string        `json:"title" validate:"required,max=200"`
	Summary       string        `json:"summary" validate:"max=2000"`
	IsFreePreview bool          `json:"is_free_preview"`
	Position      *int          `json:"position" validate:"omitempty,gte=0"`
	Blocks        entity.Blocks `json:"blocks" validate:"dive"`
}

// ReorderLessonRequest represents the request body for moving a lesson
type ReorderLessonRequest struct {
	Position *int `json:"position" validate:"required,gte=0"`
}

// ListCourses lists the catalogue
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.courseUC.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}

	return response.List(c, courses)
}

// GetCourse returns a course with its lesson outline for the current actor
func (h *CourseHandler) GetCourse(c echo.Context) error {
	outline, err := h.courseUC.GetCourseOutline(c.Request().Context(), middleware.GetActor(c), c.Param("courseKey"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, outline)
}

// CreateCourse handles course creation by operators
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	course, err := h.courseUC.CreateCourse(c.Request().Context(), &usecase.CreateCourseInput{
		Key:                 req.Key,
		Title:               req.Title,
		Description:         req.Description,
		MinimumContribution: req.MinimumContribution,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, course)
}

// CreateLesson handles lesson creation by operators
func (h *CourseHandler) CreateLesson(c echo.Context) error {
	var req CreateLessonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lesson input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lesson, err := h.courseUC.CreateLesson(c.Request().Context(), c.Param("courseKey"), &usecase.CreateLessonInput{
		Slug:          req.Slug,
		Title:         req.Title,
		Summary:       req.Summary,
		IsFreePreview: req.IsFreePreview,
		Position:      req.Position,
		Blocks:        req.Blocks,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, lesson)
}

// ReorderLesson moves a lesson within its course
func (h *CourseHandler) ReorderLesson(c echo.Context) error {
	lessonID, err := uuid.Parse(c.Param("lessonId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid lesson ID")
	}

	var req ReorderLessonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lessons, err := h.courseUC.ReorderLesson(c.Request().Context(), c.Param("courseKey"), lessonID, *req.Position)
	if err != nil {
		return err
	}

	return response.List(c, lessons)
}
