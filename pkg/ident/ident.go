// Package ident generates collision-resistant opaque identifiers with a
// fixed, verifiable shape.
//
// An identifier looks like "1735732800000_k3j9x2m4qz8f1p0aw": a millisecond
// timestamp prefix followed by two base-36 random segments. The timestamp
// keeps identifiers roughly ordered for debugging; the random tail makes
// same-millisecond collisions astronomically unlikely within a session.
//
// Valid reports whether a string has the generated shape. Callers use it to
// refuse identifiers that did not come from a Generator before touching any
// storage keyed by them.
package ident

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// segmentLength is the number of base-36 digits per random segment.
const segmentLength = 9

// idRe is the shape every generated identifier matches. Anything that fails
// this check was not produced by a Generator.
var idRe = regexp.MustCompile(`^\d+_[a-z0-9]+$`)

// Generator produces opaque identifiers. The zero value is not usable;
// construct with NewGenerator.
type Generator struct {
	now  func() time.Time
	rand func() float64
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithRand overrides the randomness source with a function returning a
// uniform value in [0, 1). Intended for tests.
func WithRand(fn func() float64) GeneratorOption {
	return func(g *Generator) {
		if fn != nil {
			g.rand = fn
		}
	}
}

// NewGenerator creates a Generator backed by the wall clock and math/rand/v2.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		now:  time.Now,
		rand: rand.Float64,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// New produces a fresh identifier: millisecond timestamp, underscore, then
// two random base-36 segments.
func (g *Generator) New() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	b.WriteByte('_')
	b.WriteString(base36Fraction(g.rand(), segmentLength))
	b.WriteString(base36Fraction(g.rand(), segmentLength))
	return b.String()
}

// Valid reports whether id has the shape of a generated identifier.
func Valid(id string) bool {
	return idRe.MatchString(id)
}

const base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// base36Fraction encodes a fraction in [0, 1) as n base-36 digits, the same
// way successive multiplications read off positional digits.
func base36Fraction(f float64, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		f *= 36
		d := int(f)
		if d > 35 {
			d = 35
		}
		f -= float64(d)
		buf[i] = base36Digits[d]
	}
	return string(buf)
}

var defaultGenerator = NewGenerator()

// NewID produces an identifier from a package-level default Generator.
func NewID() string {
	return defaultGenerator.New()
}
