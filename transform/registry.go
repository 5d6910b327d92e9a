package transform

import (
	"cmp"
	"slices"

	"github.com/go-logr/logr"
	"golang.org/x/text/language"

	"github.com/coderbyheart/cucumber/numberparser"
)

// Registry holds transforms indexed by type, by type name and by capture
// group regexp. Every index keeps the last transform added for a key.
//
// A Registry is built, then frozen: Add is not safe to call concurrently with
// anything, but once the last Add has returned the registry is only read and
// may be shared by any number of goroutines. No locking is done.
type Registry struct {
	byType               map[TypeID]Transform
	byTypeName           map[string]Transform
	byCaptureGroupRegexp map[string]Transform

	logger             logr.Logger
	typeCheckedRegexps bool
}

type options struct {
	logger             logr.Logger
	typeCheckedRegexps bool
	bigNumbers         numberparser.BigNumberParser
}

// Option configures a Registry.
type Option func(*options)

// WithLogger sets the logger for registrations and fallbacks.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTypeCheckedRegexps makes LookupByRegexp ignore a regexp match whose
// transform produces a type not assignable to the requested one.
func WithTypeCheckedRegexps() Option {
	return func(o *options) {
		o.typeCheckedRegexps = true
	}
}

// WithBigNumbers registers "biginteger" and "bigdecimal" transforms backed by p.
// They are registered ahead of the built-ins, so the built-ins keep their
// regexps in the regexp index.
func WithBigNumbers(p numberparser.BigNumberParser) Option {
	return func(o *options) {
		o.bigNumbers = p
	}
}

// New creates a registry with the built-in transforms converting through parser.
func New(parser numberparser.NumberParser, opts ...Option) *Registry {
	o := options{logger: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		byType:               make(map[TypeID]Transform),
		byTypeName:           make(map[string]Transform),
		byCaptureGroupRegexp: make(map[string]Transform),
		logger:               o.logger,
		typeCheckedRegexps:   o.typeCheckedRegexps,
	}

	if o.bigNumbers != nil {
		r.addBigNumbers(o.bigNumbers)
	}

	r.addBuiltins(parser)

	return r
}

// NewForLocale creates a registry whose numbers are parsed for locale.
func NewForLocale(locale language.Tag, opts ...Option) *Registry {
	return New(numberparser.New(locale), opts...)
}

// Add registers t under its type, its type name and each of its regexps,
// replacing whatever was registered under the same keys.
func (r *Registry) Add(t Transform) {
	r.byType[t.Type()] = t
	r.byTypeName[t.TypeName()] = t

	regexps := t.CaptureGroupRegexps()
	for _, re := range regexps {
		r.byCaptureGroupRegexp[re] = t
	}

	r.logger.V(1).Info("registered transform",
		"typeName", t.TypeName(), "type", t.Type().String(), "regexps", regexps)
}

// LookupByRegexp resolves the transform for a parameter of type typ whose text
// was matched by captureGroupRegexp. typ may be the zero TypeID.
//
// It never fails; a Constructed transform may still fail on conversion.
func (r *Registry) LookupByRegexp(typ TypeID, captureGroupRegexp string) Transform {
	if !typ.IsZero() {
		if t, ok := r.byType[typ]; ok {
			return t
		}
	}

	if t, ok := r.byCaptureGroupRegexp[captureGroupRegexp]; ok {
		if typ.IsZero() || t.Type().AssignableTo(typ) {
			return t
		}

		if !r.typeCheckedRegexps {
			r.logger.V(1).Info("capture group regexp resolved to a transform of another type",
				"regexp", captureGroupRegexp, "type", typ.String(), "transformType", t.Type().String())

			return t
		}
	}

	return r.fallback(typ)
}

// LookupByName resolves the transform for a parameter of type typ, named
// parameterName, declared with typeName. Empty strings and the zero TypeID
// mean "not supplied".
//
// An explicit typeName must be registered, otherwise an UnknownTypeNameError
// is returned. The parameter name is only a hint and is ignored when unknown.
func (r *Registry) LookupByName(typ TypeID, parameterName, typeName string) (Transform, error) {
	if !typ.IsZero() {
		if t, ok := r.byType[typ]; ok {
			return t, nil
		}
	}

	if typeName != "" {
		t, ok := r.byTypeName[typeName]
		if !ok {
			return nil, &UnknownTypeNameError{TypeName: typeName}
		}

		return t, nil
	}

	if parameterName != "" {
		if t, ok := r.byTypeName[parameterName]; ok {
			return t, nil
		}
	}

	return r.fallback(typ), nil
}

// All returns the transforms registered by type, ordered by type name and type.
func (r *Registry) All() []Transform {
	result := make([]Transform, 0, len(r.byType))
	for _, t := range r.byType {
		result = append(result, t)
	}

	slices.SortFunc(result, func(a, b Transform) int {
		if c := cmp.Compare(a.TypeName(), b.TypeName()); c != 0 {
			return c
		}

		return cmp.Compare(a.Type().String(), b.Type().String())
	})

	return result
}

func (r *Registry) fallback(typ TypeID) Transform {
	if typ.IsConcrete() {
		r.logger.V(1).Info("no transform registered, constructing from string", "type", typ.String())
		return &Constructed{typ: typ}
	}

	return Identity{}
}
