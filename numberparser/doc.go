// Package numberparser parses the textual numbers captured from step
// expressions into Go numeric values for a single configured locale.
//
// The locale decides which rune is the decimal separator and which is the
// grouping separator. Grouping separators are dropped before conversion, so
// with an English locale "1,000" parses as 1000 and "3,14" as 314. Exponent
// notation is not accepted.
//
// Supported locales are matched with golang.org/x/text/language; a locale
// without a close match falls back to English symbols.
package numberparser
