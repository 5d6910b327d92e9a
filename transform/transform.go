package transform

import (
	"encoding"
	"fmt"
	"reflect"
	"regexp"
	"slices"
)

// anyRegexp is the capture group regexp of the fallback transforms.
const anyRegexp = ".*"

// Transform converts captured text into a value of Type.
//
// Implementations are Simple, Constructed and Identity.
type Transform interface {
	// TypeName is the name a step expression uses for the transform, e.g. "int".
	TypeName() string
	// Type is the type of the values returned by Transform.
	Type() TypeID
	// CaptureGroupRegexps returns the regexps of the accepted text, in
	// preference order. The result is never empty.
	CaptureGroupRegexps() []string
	// Transform converts s. Errors are reported here, never during lookup.
	Transform(s string) (any, error)

	sealed()
}

// Simple is a transform built from an explicit conversion function.
type Simple struct {
	typeName string
	typ      TypeID
	regexps  []string
	fn       func(string) (any, error)
}

// NewSimple creates a transform named typeName producing values of T.
// Every regexp must compile, and at least one is required.
func NewSimple[T any](typeName string, regexps []string, fn func(string) (T, error)) (*Simple, error) {
	if len(regexps) == 0 {
		return nil, fmt.Errorf("transform %q: %w", typeName, ErrNoCaptureGroupRegexps)
	}

	for _, re := range regexps {
		if _, err := regexp.Compile(re); err != nil {
			return nil, fmt.Errorf("transform %q: invalid capture group regexp: %w", typeName, err)
		}
	}

	return &Simple{
		typeName: typeName,
		typ:      TypeOf[T](),
		regexps:  slices.Clone(regexps),
		fn: func(s string) (any, error) {
			return fn(s)
		},
	}, nil
}

// MustSimple is like NewSimple but panics on invalid arguments.
func MustSimple[T any](typeName string, regexps []string, fn func(string) (T, error)) *Simple {
	t, err := NewSimple(typeName, regexps, fn)
	if err != nil {
		panic(err)
	}

	return t
}

func (t *Simple) TypeName() string { return t.typeName }

func (t *Simple) Type() TypeID { return t.typ }

func (t *Simple) CaptureGroupRegexps() []string { return slices.Clone(t.regexps) }

func (t *Simple) Transform(s string) (any, error) {
	v, err := t.fn(s)
	if err != nil {
		return nil, &ConversionError{TypeName: t.typeName, Input: s, Err: err}
	}

	return v, nil
}

func (*Simple) sealed() {}

// Constructed builds values through the target type's own string
// constructor. It is synthesized by the registry and never registered.
type Constructed struct {
	typ TypeID
}

func (t *Constructed) TypeName() string { return t.typ.String() }

func (t *Constructed) Type() TypeID { return t.typ }

func (t *Constructed) CaptureGroupRegexps() []string { return []string{anyRegexp} }

// Transform tries, in order, encoding.TextUnmarshaler on a pointer to the
// type and a plain conversion for string-kinded types. For a pointer type
// the pointed-to type is constructed and the pointer is returned.
func (t *Constructed) Transform(s string) (any, error) {
	rt := t.typ.Reflect()
	if rt == nil {
		return nil, &ConstructionError{Type: t.typ, Input: s, Err: ErrNoStringConstructor}
	}

	target, isPointer := rt, false
	if rt.Kind() == reflect.Pointer {
		target, isPointer = rt.Elem(), true
	}

	ptr := reflect.New(target)

	switch u := ptr.Interface().(type) {
	case encoding.TextUnmarshaler:
		if err := u.UnmarshalText([]byte(s)); err != nil {
			return nil, &ConstructionError{Type: t.typ, Input: s, Err: err}
		}
	default:
		if target.Kind() != reflect.String {
			return nil, &ConstructionError{Type: t.typ, Input: s, Err: ErrNoStringConstructor}
		}

		ptr.Elem().SetString(s)
	}

	if isPointer {
		return ptr.Interface(), nil
	}

	return ptr.Elem().Interface(), nil
}

func (*Constructed) sealed() {}

// Identity is the string transform every resolution ends with.
type Identity struct{}

func (Identity) TypeName() string { return "string" }

func (Identity) Type() TypeID { return TypeOf[string]() }

func (Identity) CaptureGroupRegexps() []string { return []string{anyRegexp} }

func (Identity) Transform(s string) (any, error) { return s, nil }

func (Identity) sealed() {}
