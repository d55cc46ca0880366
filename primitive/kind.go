package primitive

import (
	"math/big"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the semantic type tag of a field that can be bewitched.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (unsupported) value for KindEnum

	KindString
	KindInt64
	KindInt32
	KindFloat64
	KindFloat32
	KindBigInt
	KindBigFloat
	KindDate
	KindLocalDateTime
	KindZonedDateTime
	KindInstant

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsSupported() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt64, KindInt32, KindFloat64, KindFloat32, KindBigInt, KindBigFloat:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt64, KindInt32, KindBigInt:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat64, KindFloat32, KindBigFloat:
		return true
	}
}

func (k KindEnum) IsTemporal() bool {
	switch k {
	default:
		return false
	case KindDate, KindLocalDateTime, KindZonedDateTime, KindInstant:
		return true
	}
}

// Bits returns the fixed width of a numeric kind, arbitrary precision kinds report zero.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindBigInt, KindBigFloat:
		return 0
	case KindInt32, KindFloat32:
		return 32
	case KindInt64, KindFloat64:
		return 64
	}
}

// FromReflectType resolves the semantic kind of rtype by exact type identity.
// Named types declared over a supported type are not supported themselves.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case reflect.TypeFor[string]():
		return KindString
	case reflect.TypeFor[int64]():
		return KindInt64
	case reflect.TypeFor[int32]():
		return KindInt32
	case reflect.TypeFor[float64]():
		return KindFloat64
	case reflect.TypeFor[float32]():
		return KindFloat32
	case reflect.TypeFor[*big.Int]():
		return KindBigInt
	case reflect.TypeFor[*big.Float]():
		return KindBigFloat
	case reflect.TypeFor[civil.Date]():
		return KindDate
	case reflect.TypeFor[civil.DateTime]():
		return KindLocalDateTime
	case reflect.TypeFor[time.Time]():
		return KindZonedDateTime
	case reflect.TypeFor[Instant]():
		return KindInstant
	}

	return 0
}
