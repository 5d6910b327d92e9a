package transform

import (
	"slices"

	"github.com/coderbyheart/cucumber/numberparser"
	"github.com/coderbyheart/cucumber/primitive"
)

var (
	integerRegexps       = []string{`-?\d+`, `\d+`}
	floatingPointRegexps = []string{`-?\d*[.,]\d+`}
)

// IntegerRegexps returns the capture group regexps of the integer built-ins.
func IntegerRegexps() []string {
	return slices.Clone(integerRegexps)
}

// FloatingPointRegexps returns the capture group regexps of the floating point built-ins.
func FloatingPointRegexps() []string {
	return slices.Clone(floatingPointRegexps)
}

// RegexpsFor returns the built-in regexps matching kind. Kinds without
// dedicated regexps accept any text.
func RegexpsFor(kind primitive.KindEnum) []string {
	switch {
	case kind.IsInteger():
		return IntegerRegexps()
	case kind.IsFloat():
		return FloatingPointRegexps()
	default:
		return []string{anyRegexp}
	}
}

func (r *Registry) addBuiltins(p numberparser.NumberParser) {
	addNumber(r, primitive.KindByte, p.ParseByte)
	addNumber(r, primitive.KindShort, p.ParseShort)
	addNumber(r, primitive.KindInt, p.ParseInt)
	addNumber(r, primitive.KindLong, p.ParseLong)
	addNumber(r, primitive.KindFloat, p.ParseFloat)
	addNumber(r, primitive.KindDouble, p.ParseDouble)
}

func (r *Registry) addBigNumbers(p numberparser.BigNumberParser) {
	r.Add(MustSimple(primitive.KindBigInteger.TypeName(), integerRegexps, p.ParseBigInteger))
	r.Add(MustSimple(primitive.KindBigDecimal.TypeName(), floatingPointRegexps, p.ParseBigDecimal))
}

// addNumber registers parse for *T and, sharing the same routine, for T.
// T goes last so it owns the type name and the regexps.
func addNumber[T any](r *Registry, kind primitive.KindEnum, parse func(string) (T, error)) {
	regexps := RegexpsFor(kind)

	r.Add(MustSimple(kind.TypeName(), regexps, func(s string) (*T, error) {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}

		return &v, nil
	}))
	r.Add(MustSimple(kind.TypeName(), regexps, parse))
}
