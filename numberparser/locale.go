package numberparser

import (
	"golang.org/x/text/language"
)

// Symbols are the separators a locale uses when writing numbers.
type Symbols struct {
	Decimal  rune
	Grouping rune
}

// EnglishSymbols is used when no supported locale matches.
var EnglishSymbols = Symbols{Decimal: '.', Grouping: ','}

const (
	noBreakSpace       = '\u00a0'
	narrowNoBreakSpace = '\u202f'
)

var supported = []struct {
	tag     language.Tag
	symbols Symbols
}{
	{language.English, EnglishSymbols}, // first entry is the matcher's fallback
	{language.German, Symbols{Decimal: ',', Grouping: '.'}},
	{language.MustParse("de-CH"), Symbols{Decimal: '.', Grouping: '\u2019'}},
	{language.French, Symbols{Decimal: ',', Grouping: narrowNoBreakSpace}},
	{language.Spanish, Symbols{Decimal: ',', Grouping: '.'}},
	{language.Italian, Symbols{Decimal: ',', Grouping: '.'}},
	{language.Dutch, Symbols{Decimal: ',', Grouping: '.'}},
	{language.Portuguese, Symbols{Decimal: ',', Grouping: '.'}},
	{language.Russian, Symbols{Decimal: ',', Grouping: noBreakSpace}},
	{language.Swedish, Symbols{Decimal: ',', Grouping: noBreakSpace}},
	{language.Japanese, EnglishSymbols},
	{language.Chinese, EnglishSymbols},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, s.tag)
	}

	return language.NewMatcher(tags)
}()

// SymbolsFor returns the separators of the supported locale closest to tag.
func SymbolsFor(tag language.Tag) Symbols {
	symbols, _ := Match(tag)
	return symbols
}

// Match is like SymbolsFor but also reports whether a supported locale of
// the same language matched. When none did, the English symbols are returned;
// when the matcher substituted another language, its symbols are returned
// with false.
func Match(tag language.Tag) (Symbols, bool) {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return EnglishSymbols, false
	}

	want, _ := tag.Base()
	got, _ := supported[index].tag.Base()

	return supported[index].symbols, want == got
}

// isGrouping treats every kind of space as the same grouping separator, since
// captured text rarely preserves the exact space a locale prescribes.
func (s Symbols) isGrouping(r rune) bool {
	if r == s.Grouping {
		return true
	}

	return isSpace(s.Grouping) && isSpace(r)
}

func isSpace(r rune) bool {
	return r == ' ' || r == noBreakSpace || r == narrowNoBreakSpace
}
