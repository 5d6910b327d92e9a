// Package transform resolves which conversion turns a captured step
// parameter into the value a step definition expects.
//
// A Transform is a named, typed conversion together with the capture group
// regexps describing the text it accepts. The Registry indexes transforms
// three ways and resolves a request against them in a fixed priority order.
//
// # Variants
//
// The set of transforms is closed:
//   - Simple: explicit type name, type, regexps and conversion function.
//     All built-in numeric transforms are Simple.
//   - Constructed: synthesized for a concrete type with no registration. It
//     builds the value through the type's own string constructor
//     (encoding.TextUnmarshaler, or a string-kinded type).
//   - Identity: the string fallback, returning its input unchanged.
//
// # Built-ins
//
// A registry starts with byte, short, int, long, float and double, producing
// int8, int16, int32, int64, float32 and float64. Every one is registered
// twice, for its pointer type and then for the value type, so a step
// definition may ask for either. The value type is added last and owns the
// type name and the regexps: "double" alone yields a float64.
//
// Go's int and uint are not built-ins. A parameter of type int has no
// registered transform and resolves to Constructed, which fails with
// ErrNoStringConstructor on conversion. Use int32 or int64, or Add a
// transform for int.
//
// Integers accept `-?\d+` and `\d+`. Floating point accepts `-?\d*[.,]\d+`
// whatever the locale, so "3,14" always matches the regexp even where ','
// is the grouping separator. The locale only affects the conversion: with an
// English locale "3,14" converts to 314.
//
// # Resolution order
//
// LookupByRegexp: type, capture group regexp, Constructed, Identity.
//
// LookupByName: type, explicit type name (a miss is an error), parameter name
// (a miss is ignored), Constructed, Identity.
//
// The regexp index carries no type information, so a regexp shared by
// unrelated transforms may resolve to a transform producing a type the caller
// did not ask for. WithTypeCheckedRegexps rejects such hits.
package transform
