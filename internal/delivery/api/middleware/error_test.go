package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pesantren/internal/delivery/api/response"
	"pesantren/internal/delivery/api/validator"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	var logs bytes.Buffer
	v := validator.New()
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)), v)

	handle := func(err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		m.HandleHTTPError(err, c)

		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		return rec, body
	}

	t.Run("validation failure lists fields", func(t *testing.T) {
		type request struct {
			Title string `json:"title" validate:"required"`
		}

		rec, body := handle(v.Validate(&request{}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, map[string]any{"title": "title is required"}, body.Error.Details)
	})

	t.Run("wrapped app error keeps details", func(t *testing.T) {
		rec, body := handle(errors.Wrap(domainerrors.ErrInvalidAmount.WithDetails("below minimum"), "unlock"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_AMOUNT", body.Error.Code)
		assert.Equal(t, domainerrors.ErrInvalidAmount.Message(), body.Error.Message)
		assert.Equal(t, "below minimum", body.Error.Details)
	})

	t.Run("server side app error is logged without details", func(t *testing.T) {
		logs.Reset()
		rec, body := handle(domainerrors.ErrStoreUnavailable.WithDetails("dial tcp: refused"))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Nil(t, body.Error.Details)
		assert.Contains(t, logs.String(), "Request failed")
	})

	t.Run("echo error", func(t *testing.T) {
		rec, body := handle(echo.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		logs.Reset()
		rec, body := handle(errors.New("pq: connection reset"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
		assert.Contains(t, logs.String(), "Unhandled error")
	})

	t.Run("committed response is left alone", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, c.NoContent(http.StatusAccepted))

		m.HandleHTTPError(errors.New("late"), c)
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
