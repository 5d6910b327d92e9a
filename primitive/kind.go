package primitive

import (
	"math"
	"math/big"
	"reflect"

	"github.com/cockroachdb/apd/v3"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum enumerates the value kinds a step parameter can be converted to by
// a built-in transform.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindByte   // signed 8-bit integer
	KindShort  // signed 16-bit integer
	KindInt    // signed 32-bit integer
	KindLong   // signed 64-bit integer
	KindFloat  // single precision floating point
	KindDouble // double precision floating point
	KindBigInteger
	KindBigDecimal
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var typeNames = map[KindEnum]string{
	KindByte:       "byte",
	KindShort:      "short",
	KindInt:        "int",
	KindLong:       "long",
	KindFloat:      "float",
	KindDouble:     "double",
	KindBigInteger: "biginteger",
	KindBigDecimal: "bigdecimal",
	KindString:     "string",
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindByte, KindShort, KindInt, KindLong,
		KindFloat, KindDouble,
		KindBigInteger, KindBigDecimal:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindByte, KindShort, KindInt, KindLong, KindBigInteger:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat, KindDouble, KindBigDecimal:
		return true
	}
}

// IsFixedWidth reports whether values of the kind fit a fixed number of bits.
func (k KindEnum) IsFixedWidth() bool {
	switch k {
	default:
		return false
	case KindByte, KindShort, KindInt, KindLong, KindFloat, KindDouble:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only fixed width kinds has meaningful bits amount, but requested for: " + k.String())
	case KindByte:
		return 8
	case KindShort:
		return 16
	case KindInt, KindFloat:
		return 32
	case KindLong, KindDouble:
		return 64
	}
}

// Range returns the inclusive bounds of a fixed width integer kind.
func (k KindEnum) Range() (minValue, maxValue int64) {
	if !k.IsInteger() || !k.IsFixedWidth() {
		panic("only fixed width integer kinds has a range, but requested for: " + k.String())
	}

	if k == KindLong {
		return math.MinInt64, math.MaxInt64
	}

	half := int64(1) << (k.Bits() - 1)

	return -half, half - 1
}

// TypeName returns the step parameter type name of the kind, e.g. "int" for KindInt.
func (k KindEnum) TypeName() string {
	return typeNames[k]
}

// GoType returns the value type the kind is converted to.
func (k KindEnum) GoType() reflect.Type {
	switch k {
	case KindByte:
		return reflect.TypeOf(int8(0))
	case KindShort:
		return reflect.TypeOf(int16(0))
	case KindInt:
		return reflect.TypeOf(int32(0))
	case KindLong:
		return reflect.TypeOf(int64(0))
	case KindFloat:
		return reflect.TypeOf(float32(0))
	case KindDouble:
		return reflect.TypeOf(float64(0))
	case KindBigInteger:
		return reflect.TypeOf((*big.Int)(nil))
	case KindBigDecimal:
		return reflect.TypeOf((*apd.Decimal)(nil))
	case KindString:
		return reflect.TypeOf("")
	default:
		return nil
	}
}

// FromTypeName maps a step parameter type name back to its kind.
// Unknown names yield the zero (invalid) kind.
func FromTypeName(name string) KindEnum {
	for k, n := range typeNames {
		if n == name {
			return k
		}
	}

	return 0
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case reflect.TypeOf(int8(0)):
		return KindByte
	case reflect.TypeOf(int16(0)):
		return KindShort
	case reflect.TypeOf(int32(0)):
		return KindInt
	case reflect.TypeOf(int64(0)):
		return KindLong
	case reflect.TypeOf(float32(0)):
		return KindFloat
	case reflect.TypeOf(float64(0)):
		return KindDouble
	case reflect.TypeOf((*big.Int)(nil)):
		return KindBigInteger
	case reflect.TypeOf((*apd.Decimal)(nil)):
		return KindBigDecimal
	case reflect.TypeOf(""):
		return KindString
	}

	// pointers to fixed width kinds are the nullable form of the same kind
	if rtype.Kind() == reflect.Pointer {
		if elem := FromReflectType(rtype.Elem()); elem.IsFixedWidth() {
			return elem
		}
	}

	return 0
}
