package config

import (
	"fmt"
	"regexp"

	"golang.org/x/text/language"

	"github.com/coderbyheart/cucumber/internal/diagnostic"
	"github.com/coderbyheart/cucumber/internal/logging"
	"github.com/coderbyheart/cucumber/internal/suggest"
	"github.com/coderbyheart/cucumber/numberparser"
	"github.com/coderbyheart/cucumber/primitive"
)

// maxSuggestionDistance bounds the edit distance of "did you mean" hints.
const maxSuggestionDistance = 2

var builtinTypeNames = map[string]bool{
	"byte":   true,
	"short":  true,
	"int":    true,
	"long":   true,
	"float":  true,
	"double": true,
}

// KindNames returns every accepted value of TransformDef.Kind.
func KindNames() []string {
	names := make([]string, 0, primitive.KindTotal-1)
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		names = append(names, k.TypeName())
	}

	return names
}

// Validate checks a configuration file without building anything.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config file is nil", "")
		return res
	}

	validateLocale(res, f.Locale)
	res.Merge(validateLog(f.Log))

	seenTypeNames := map[string]int{}

	for i := range f.Transforms {
		def := &f.Transforms[i]
		path := fmt.Sprintf("transforms[%d]", i)

		if def.TypeName == "" {
			res.AddError("missing_type_name", "type_name is required", path+".type_name")
		} else {
			if prev, ok := seenTypeNames[def.TypeName]; ok {
				res.AddWarning("duplicate_type_name",
					fmt.Sprintf("type name %q is also declared by transforms[%d]; the later one wins", def.TypeName, prev),
					path+".type_name")
			}

			seenTypeNames[def.TypeName] = i

			if builtinTypeNames[def.TypeName] {
				res.AddInfo("overrides_builtin",
					fmt.Sprintf("type name %q replaces the built-in transform of that name", def.TypeName),
					path+".type_name")
			}
		}

		if primitive.FromTypeName(def.Kind) == 0 {
			res.AddError("unknown_kind", fmt.Sprintf("unknown kind %q", def.Kind), path+".kind",
				suggest.Closest(def.Kind, KindNames(), maxSuggestionDistance)...)
		}

		if len(def.Regexps) == 0 {
			res.AddError("missing_regexps", "at least one regexp is required", path+".regexps")
		}

		for j, re := range def.Regexps {
			if _, err := regexp.Compile(re); err != nil {
				res.AddError("invalid_regexp", err.Error(), fmt.Sprintf("%s.regexps[%d]", path, j))
			}
		}
	}

	return res
}

func validateLocale(res *diagnostic.Diagnostics, locale string) {
	tag, err := language.Parse(locale)
	if err != nil {
		res.AddError("invalid_locale", fmt.Sprintf("invalid locale %q: %v", locale, err), "locale")
		return
	}

	if _, ok := numberparser.Match(tag); !ok {
		res.AddWarning("unsupported_locale",
			fmt.Sprintf("no number symbols for locale %q, using English separators", locale), "locale")
	}
}

func validateLog(cfg LogConfig) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if _, err := logging.ParseLevel(cfg.Level); err != nil {
		res.AddError("invalid_log_level", err.Error(), "log.level",
			suggest.Closest(cfg.Level, []string{"debug", "info", "warn", "error"}, maxSuggestionDistance)...)
	}

	switch cfg.Format {
	case logging.FormatJSON, logging.FormatConsole, "":
	default:
		res.AddError("invalid_log_format", fmt.Sprintf("unknown log format %q", cfg.Format), "log.format",
			suggest.Closest(cfg.Format, []string{logging.FormatJSON, logging.FormatConsole}, maxSuggestionDistance)...)
	}

	return res
}
