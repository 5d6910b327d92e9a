package config

import (
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/text/language"

	"github.com/coderbyheart/cucumber/numberparser"
	"github.com/coderbyheart/cucumber/primitive"
	"github.com/coderbyheart/cucumber/transform"
)

// BuildRegistry validates f and builds the registry it describes: built-ins
// for the configured locale, then the declared transforms in file order.
// Warnings are logged, infos at V(1); any validation error aborts.
func BuildRegistry(f *File, logger logr.Logger) (*transform.Registry, error) {
	diags := Validate(f)
	for _, w := range diags.Warnings {
		logger.Info("config warning", "code", w.Code, "path", w.Path, "message", w.Message)
	}

	for _, i := range diags.Infos {
		logger.V(1).Info("config note", "code", i.Code, "path", i.Path, "message", i.Message)
	}

	if diags.HasErrors() {
		return nil, diags.Error()
	}

	tag, err := language.Parse(f.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", f.Locale, err)
	}

	parser := numberparser.New(tag)

	opts := []transform.Option{transform.WithLogger(logger)}
	if f.TypeCheckedRegexps {
		opts = append(opts, transform.WithTypeCheckedRegexps())
	}

	if f.BigNumbers {
		opts = append(opts, transform.WithBigNumbers(parser))
	}

	registry := transform.New(parser, opts...)

	for i := range f.Transforms {
		t, err := newTransform(&f.Transforms[i], parser)
		if err != nil {
			return nil, fmt.Errorf("transforms[%d]: %w", i, err)
		}

		registry.Add(t)
	}

	return registry, nil
}

func newTransform(def *TransformDef, p *numberparser.Parser) (*transform.Simple, error) {
	switch primitive.FromTypeName(def.Kind) {
	case primitive.KindByte:
		return transform.NewSimple(def.TypeName, def.Regexps, p.ParseByte)
	case primitive.KindShort:
		return transform.NewSimple(def.TypeName, def.Regexps, p.ParseShort)
	case primitive.KindInt:
		return transform.NewSimple(def.TypeName, def.Regexps, p.ParseInt)
	case primitive.KindLong:
		return transform.NewSimple(def.TypeName, def.Regexps, p.ParseLong)
	case primitive.KindFloat:
		return transform.NewSimple(def.TypeName, def.Regexps, p.ParseFloat)
	case primitive.KindDouble:
		return transform.NewSimple(def.TypeName, def.Regexps, p.ParseDouble)
	case primitive.KindBigInteger:
		return transform.NewSimple(def.TypeName, def.Regexps, p.ParseBigInteger)
	case primitive.KindBigDecimal:
		return transform.NewSimple(def.TypeName, def.Regexps, p.ParseBigDecimal)
	case primitive.KindString:
		return transform.NewSimple(def.TypeName, def.Regexps, func(s string) (string, error) { return s, nil })
	default:
		return nil, fmt.Errorf("unknown kind %q", def.Kind)
	}
}
