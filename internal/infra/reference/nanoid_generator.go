// Package reference generates opaque entitlement references backed by nanoid.
package reference

import (
	"pesantren/config"
	"pesantren/internal/domain/service"
	"pesantren/internal/errors"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Defaults used when the reference section is absent. An explicit empty prefix is kept.
// The alphabet drops 0/O and 1/I so references can be read aloud.
const (
	DefaultPrefix   = "INFAQ-"
	DefaultLength   = 12
	DefaultAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

type nanoidGenerator struct {
	prefix   string
	length   int
	alphabet string
}

// NewGenerator creates a reference generator from configuration.
func NewGenerator(cfg *config.Config) service.ReferenceGenerator {
	gen := &nanoidGenerator{
		prefix:   DefaultPrefix,
		length:   DefaultLength,
		alphabet: DefaultAlphabet,
	}
	if ref := cfg.Reference; ref != nil {
		gen.prefix = ref.Prefix
		if ref.Length > 0 {
			gen.length = ref.Length
		}
		if ref.Alphabet != "" {
			gen.alphabet = ref.Alphabet
		}
	}

	return gen
}

// NewReference returns the prefix followed by a random nanoid.
func (g *nanoidGenerator) NewReference() (string, error) {
	id, err := nanoid.Generate(g.alphabet, g.length)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate reference")
	}

	return g.prefix + id, nil
}
