package handler

import (
	"net/http"

	"pesantren/internal/delivery/api/middleware"
	"pesantren/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the actor resolved from the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	actor := middleware.GetActor(c)
	if actor.IsAnonymous() {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Actor not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":  "Authentication middleware test successful",
		"actor_id": actor.ID,
		"roles":    actor.Roles,
		"status":   "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
