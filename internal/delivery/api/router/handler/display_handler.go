package handler

import (
	"net/http"

	"pesantren/internal/delivery/api/middleware"
	"pesantren/internal/delivery/api/response"
	"pesantren/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// DisplayHandler exposes the effective display settings.
type DisplayHandler struct {
	display *middleware.DisplayMiddleware
}

// NewDisplayHandler is the constructor for DisplayHandler
func NewDisplayHandler(display *middleware.DisplayMiddleware) *DisplayHandler {
	return &DisplayHandler{display: display}
}

// DisplaySettingsResponse pairs the effective settings with the configured ones
type DisplaySettingsResponse struct {
	Effective entity.DisplaySettings `json:"effective"`
	Defaults  entity.DisplaySettings `json:"defaults"`
	FontSize  entity.FontSizeBounds  `json:"font_size_bounds"`
}

// GetDisplaySettings returns the settings the request would render with
func (h *DisplayHandler) GetDisplaySettings(c echo.Context) error {
	return response.Success(c, http.StatusOK, DisplaySettingsResponse{
		Effective: middleware.GetDisplaySettings(c, h.display.Defaults()),
		Defaults:  h.display.Defaults(),
		FontSize:  h.display.Bounds(),
	})
}
