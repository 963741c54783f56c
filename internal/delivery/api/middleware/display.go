package middleware

import (
	"strconv"

	"pesantren/config"
	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const (
	keyDisplaySettings = "display_settings"

	HeaderDisplayFontSize        = "X-Display-Font-Size"
	HeaderDisplayTranslation     = "X-Display-Translation"
	HeaderDisplayTransliteration = "X-Display-Transliteration"
)

// DisplayMiddleware resolves the display settings of a request. Configured defaults are
// overridden by query parameters first, then headers.
type DisplayMiddleware struct {
	defaults entity.DisplaySettings
	bounds   entity.FontSizeBounds
}

// NewDisplayMiddleware builds the defaults from configuration.
func NewDisplayMiddleware(cfg *config.Config) *DisplayMiddleware {
	display := cfg.DisplaySettings
	if display == nil {
		display = &config.DisplayConfig{ShowTranslation: true, ShowTransliteration: true}
	}
	bounds := entity.FontSizeBounds{Min: display.MinFontSize, Max: display.MaxFontSize}

	return &DisplayMiddleware{
		defaults: entity.DisplaySettings{
			FontSize:            bounds.Clamp(display.FontSize),
			ShowTranslation:     display.ShowTranslation,
			ShowTransliteration: display.ShowTransliteration,
		},
		bounds: bounds,
	}
}

// Defaults returns the configured settings.
func (m *DisplayMiddleware) Defaults() entity.DisplaySettings {
	return m.defaults
}

// Bounds returns the accepted font size range.
func (m *DisplayMiddleware) Bounds() entity.FontSizeBounds {
	return m.bounds
}

// Handle stores the effective settings in the echo context.
func (m *DisplayMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings := m.defaults

		if raw := override(c, "font_size", HeaderDisplayFontSize); raw != "" {
			size, err := strconv.Atoi(raw)
			if err != nil {
				return domainerrors.ErrValidationFailed.WithDetails("font_size must be a whole number")
			}
			settings = settings.WithFontSize(size, m.bounds)
		}

		if raw := override(c, "translation", HeaderDisplayTranslation); raw != "" {
			show, err := strconv.ParseBool(raw)
			if err != nil {
				return domainerrors.ErrValidationFailed.WithDetails("translation must be true or false")
			}
			settings = settings.WithTranslation(show)
		}

		if raw := override(c, "transliteration", HeaderDisplayTransliteration); raw != "" {
			show, err := strconv.ParseBool(raw)
			if err != nil {
				return domainerrors.ErrValidationFailed.WithDetails("transliteration must be true or false")
			}
			settings = settings.WithTransliteration(show)
		}

		c.Set(keyDisplaySettings, settings)

		return next(c)
	}
}

func override(c echo.Context, param, header string) string {
	if v := c.QueryParam(param); v != "" {
		return v
	}

	return c.Request().Header.Get(header)
}

// GetDisplaySettings returns the settings resolved for the request, or fallback when the
// display middleware did not run.
func GetDisplaySettings(c echo.Context, fallback entity.DisplaySettings) entity.DisplaySettings {
	if settings, ok := c.Get(keyDisplaySettings).(entity.DisplaySettings); ok {
		return settings
	}

	return fallback
}
