package source

import (
	"fairy-generator/utils"
	"math"
	"math/rand/v2"
	"reflect"
)

// Range is a RangeSource backed by a PCG generator.
type Range struct {
	rnd *rand.Rand
}

// NewRange returns a Range seeded with seed. Equal seeds yield equal sequences.
// The stream differs from the one gofakeit.New(seed) draws from.
func NewRange(seed uint64) *Range {
	return &Range{rnd: rand.New(rand.NewPCG(seed, ^seed))}
}

// Between returns a value uniformly distributed in [low, high].
// For floating point types high itself is reachable only up to rounding.
// It panics if high < low.
func Between[T utils.Number](r *Range, low, high T) T {
	if high < low {
		panic("source: invalid range")
	}

	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		u := r.rnd.Float64()
		// interpolate instead of low+u*(high-low), the width may not be representable
		return T(float64(low)*(1-u) + float64(high)*u)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		span := uint64(int64(high) - int64(low))
		return T(int64(low) + int64(r.upTo(span)))
	default:
		span := uint64(high) - uint64(low)
		return T(uint64(low) + r.upTo(span))
	}
}

// upTo returns a value in [0, n].
func (r *Range) upTo(n uint64) uint64 {
	if n == math.MaxUint64 {
		return r.rnd.Uint64()
	}

	return r.rnd.Uint64N(n + 1)
}

func (r *Range) Int64Between(low, high int64) int64 { return Between(r, low, high) }

func (r *Range) Int32Between(low, high int32) int32 { return Between(r, low, high) }

func (r *Range) Float64Between(low, high float64) float64 { return Between(r, low, high) }

// IntBetween is the plain int flavour used for small counts.
func (r *Range) IntBetween(low, high int) int { return Between(r, low, high) }
