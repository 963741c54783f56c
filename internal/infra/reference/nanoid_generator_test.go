package reference

import (
	"strings"
	"testing"

	"pesantren/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNanoidGenerator_Defaults(t *testing.T) {
	gen := NewGenerator(&config.Config{})

	seen := make(map[string]struct{})
	for range 200 {
		ref, err := gen.NewReference()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(ref, DefaultPrefix))

		body := strings.TrimPrefix(ref, DefaultPrefix)
		assert.Len(t, body, DefaultLength)
		for _, r := range body {
			assert.Contains(t, DefaultAlphabet, string(r))
		}

		_, dup := seen[ref]
		assert.False(t, dup, "duplicate reference %s", ref)
		seen[ref] = struct{}{}
	}
}

func TestNanoidGenerator_Configured(t *testing.T) {
	gen := NewGenerator(&config.Config{
		Reference: &config.ReferenceConfig{Prefix: "PSN", Length: 6, Alphabet: "0123456789"},
	})

	ref, err := gen.NewReference()
	require.NoError(t, err)
	assert.Regexp(t, `^PSN[0-9]{6}$`, ref)
}
