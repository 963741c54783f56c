package validator

import (
	"testing"

	"pesantren/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unlockRequest struct {
	CourseKey string `json:"course_key" validate:"required"`
	Slug      string `json:"slug" validate:"omitempty,slug"`
	Amount    int64  `json:"amount" validate:"gte=0"`
	Lines     []line `json:"lines" validate:"dive"`
}

type line struct {
	URL string `json:"url" validate:"required,url"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&unlockRequest{CourseKey: "fiqih", Amount: 1}))
	})

	t.Run("uses json names", func(t *testing.T) {
		err := v.Validate(&unlockRequest{Amount: -1, Lines: []line{{URL: "not a url"}}})
		require.Error(t, err)

		fields, ok := v.FieldErrors(err)
		require.True(t, ok)
		assert.Equal(t, "course_key is required", fields["course_key"])
		assert.Contains(t, fields, "amount")
		assert.Contains(t, fields, "lines[0].url")
	})

	t.Run("slug", func(t *testing.T) {
		assert.NoError(t, v.Validate(&unlockRequest{CourseKey: "fiqih", Slug: "bab-1-thaharah"}))

		for _, slug := range []string{"Bab 1", "bab--1", "-bab", "bab_1"} {
			err := v.Validate(&unlockRequest{CourseKey: "fiqih", Slug: slug})
			fields, ok := v.FieldErrors(err)
			require.True(t, ok, slug)
			assert.Equal(t, "slug may only contain lowercase letters, digits and single hyphens", fields["slug"])
		}
	})

	t.Run("non validation error", func(t *testing.T) {
		_, ok := v.FieldErrors(errors.New("boom"))
		assert.False(t, ok)
	})
}
