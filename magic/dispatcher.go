package magic

import (
	"fairy-generator/primitive"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
)

// Temporal fields are drawn from [YearLow, YearHigh).
const (
	YearLow  = 2000
	YearHigh = 2100
)

// RangeSource draws numbers uniformly from inclusive ranges.
type RangeSource interface {
	Int64Between(low, high int64) int64
	Int32Between(low, high int32) int32
	Float64Between(low, high float64) float64
}

// TemporalSource draws local date-times between the starts of two years.
type TemporalSource interface {
	Between(yearLow, yearHigh int) (civil.DateTime, error)
}

// WordSource produces single words.
type WordSource interface {
	Word() (string, error)
}

// Sources are the collaborators rules draw from.
type Sources struct {
	Range    RangeSource
	Temporal TemporalSource
	Words    WordSource
}

// Rule produces a value assignable to fields of one kind.
type Rule func(s *Sources) (reflect.Value, error)

// rules is the dispatch table, indexed by kind. Unsupported kinds hold nil.
var rules = [primitive.KindTotal]Rule{
	primitive.KindString: func(s *Sources) (reflect.Value, error) {
		w, err := s.Words.Word()
		if err != nil {
			return reflect.Value{}, fmt.Errorf("draw word: %w", err)
		}
		return reflect.ValueOf(w), nil
	},
	primitive.KindInt64: func(s *Sources) (reflect.Value, error) {
		return reflect.ValueOf(s.Range.Int64Between(math.MinInt64, math.MaxInt64)), nil
	},
	primitive.KindInt32: func(s *Sources) (reflect.Value, error) {
		return reflect.ValueOf(s.Range.Int32Between(math.MinInt32, math.MaxInt32)), nil
	},
	primitive.KindFloat64: func(s *Sources) (reflect.Value, error) {
		return reflect.ValueOf(s.Range.Float64Between(-math.MaxFloat64, math.MaxFloat64)), nil
	},
	primitive.KindFloat32: func(s *Sources) (reflect.Value, error) {
		return reflect.ValueOf(float32(s.Range.Float64Between(-math.MaxFloat32, math.MaxFloat32))), nil
	},
	primitive.KindBigInt: func(s *Sources) (reflect.Value, error) {
		return reflect.ValueOf(big.NewInt(s.Range.Int64Between(math.MinInt64, math.MaxInt64))), nil
	},
	primitive.KindBigFloat: func(s *Sources) (reflect.Value, error) {
		return reflect.ValueOf(big.NewFloat(s.Range.Float64Between(-math.MaxFloat64, math.MaxFloat64))), nil
	},
	primitive.KindDate: temporal(func(dt civil.DateTime) any {
		return civil.DateOf(dt.In(time.UTC))
	}),
	primitive.KindLocalDateTime: temporal(func(dt civil.DateTime) any {
		return dt
	}),
	primitive.KindZonedDateTime: temporal(func(dt civil.DateTime) any {
		return dt.In(time.Local)
	}),
	primitive.KindInstant: temporal(func(dt civil.DateTime) any {
		return primitive.InstantOf(dt.In(time.UTC))
	}),
}

// temporal builds a rule drawing a local date-time and projecting it.
func temporal(project func(civil.DateTime) any) Rule {
	return func(s *Sources) (reflect.Value, error) {
		dt, err := s.Temporal.Between(YearLow, YearHigh)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("draw date-time: %w", err)
		}
		return reflect.ValueOf(project(dt)), nil
	}
}

// Lookup returns the rule for kind, false when kind is unsupported.
func Lookup(kind primitive.KindEnum) (Rule, bool) {
	if !kind.IsSupported() {
		return nil, false
	}

	rule := rules[kind]

	return rule, rule != nil
}

// Dispatch resolves the kind of t and returns its rule.
func Dispatch(t reflect.Type) (primitive.KindEnum, Rule, bool) {
	kind := primitive.FromReflectType(t)
	rule, ok := Lookup(kind)

	return kind, rule, ok
}
