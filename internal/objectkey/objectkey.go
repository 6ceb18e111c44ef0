// Package objectkey names stored audio objects.
//
// Keys are <prefix><unix-millis><extension>, e.g. audio-1700000000000.mp3.
// Two invocations in the same millisecond get the same key unless the UUID
// suffix is enabled; no collision check is made against the bucket.
package objectkey

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator builds object keys from a clock.
type Generator struct {
	now    func() time.Time
	suffix func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithSuffixSource replaces the UUID source used for unique keys.
func WithSuffixSource(suffix func() string) Option {
	return func(g *Generator) {
		g.suffix = suffix
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		now:    time.Now,
		suffix: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a key for an object stored now.
func (g *Generator) Next(prefix, extension string, unique bool) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	if unique {
		b.WriteByte('-')
		b.WriteString(g.suffix())
	}
	b.WriteString(extension)
	return b.String()
}
