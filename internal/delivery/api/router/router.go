// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pesantren/config"
	"pesantren/internal/delivery/api/middleware"
	"pesantren/internal/delivery/api/router/handler"
	"pesantren/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CourseHandler      *handler.CourseHandler
	LessonHandler      *handler.LessonHandler
	AccessHandler      *handler.AccessHandler
	EntitlementHandler *handler.EntitlementHandler
	DisplayHandler     *handler.DisplayHandler
	TestHandler        *handler.TestHandler
	AuthMiddleware     *middleware.AuthMiddleware
	DisplayMiddleware  *middleware.DisplayMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	courseHandler      *handler.CourseHandler
	lessonHandler      *handler.LessonHandler
	accessHandler      *handler.AccessHandler
	entitlementHandler *handler.EntitlementHandler
	displayHandler     *handler.DisplayHandler
	testHandler        *handler.TestHandler
	authMiddleware     *middleware.AuthMiddleware
	displayMiddleware  *middleware.DisplayMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		courseHandler:      params.CourseHandler,
		lessonHandler:      params.LessonHandler,
		accessHandler:      params.AccessHandler,
		entitlementHandler: params.EntitlementHandler,
		displayHandler:     params.DisplayHandler,
		testHandler:        params.TestHandler,
		authMiddleware:     params.AuthMiddleware,
		displayMiddleware:  params.DisplayMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Learner routes; anonymous visitors see locked previews
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.OptionalAuthenticate)
	apiV1.Use(r.displayMiddleware.Handle)

	apiV1.GET("/display-settings", r.displayHandler.GetDisplaySettings)

	coursesGroup := apiV1.Group("/courses")
	{
		coursesGroup.GET("", r.courseHandler.ListCourses)
		coursesGroup.GET("/:courseKey", r.courseHandler.GetCourse)
		coursesGroup.GET("/:courseKey/access", r.accessHandler.CheckAccess)
		coursesGroup.GET("/:courseKey/unlock-options", r.accessHandler.UnlockOptions)
		coursesGroup.POST("/:courseKey/unlock", r.accessHandler.Unlock, r.authMiddleware.RequireActor)
		coursesGroup.GET("/:courseKey/lessons/:slug", r.lessonHandler.GetLesson)
		coursesGroup.POST("/:courseKey/lessons/:slug/quizzes/:block/score", r.lessonHandler.ScoreQuiz)
	}

	entitlementsGroup := apiV1.Group("/entitlements")
	entitlementsGroup.Use(r.authMiddleware.RequireActor)
	{
		entitlementsGroup.GET("", r.entitlementHandler.ListEntitlements)
		entitlementsGroup.GET("/:reference/receipt", r.entitlementHandler.Receipt)
	}

	// Operator routes require authentication and the "operator" role
	operatorGroup := e.Group("/operator")
	operatorGroup.Use(r.authMiddleware.Authenticate)
	operatorGroup.Use(r.authMiddleware.RequireRole(entity.RoleOperator))
	{
		operatorGroup.POST("/courses", r.courseHandler.CreateCourse)
		operatorGroup.POST("/courses/:courseKey/lessons", r.courseHandler.CreateLesson)
		operatorGroup.PUT("/courses/:courseKey/lessons/:lessonId/position", r.courseHandler.ReorderLesson)
		operatorGroup.POST("/receipts/verify", r.entitlementHandler.VerifyReceipt)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
