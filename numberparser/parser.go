package numberparser

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/text/language"

	"github.com/coderbyheart/cucumber/primitive"
	"github.com/coderbyheart/cucumber/utils"
)

// NumberParser converts captured text into the fixed width numeric kinds.
type NumberParser interface {
	ParseByte(s string) (int8, error)
	ParseShort(s string) (int16, error)
	ParseInt(s string) (int32, error)
	ParseLong(s string) (int64, error)
	ParseFloat(s string) (float32, error)
	ParseDouble(s string) (float64, error)
}

// BigNumberParser converts captured text into arbitrary precision numbers.
type BigNumberParser interface {
	ParseBigInteger(s string) (*big.Int, error)
	ParseBigDecimal(s string) (*apd.Decimal, error)
}

// Parser is the locale-aware implementation of NumberParser and BigNumberParser.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	locale  language.Tag
	symbols Symbols
}

var (
	_ NumberParser    = (*Parser)(nil)
	_ BigNumberParser = (*Parser)(nil)
)

// New creates a Parser using the separators of the locale closest to tag.
func New(tag language.Tag) *Parser {
	return &Parser{
		locale:  tag,
		symbols: SymbolsFor(tag),
	}
}

// NewWithSymbols creates a Parser with explicit separators.
func NewWithSymbols(symbols Symbols) *Parser {
	return &Parser{
		locale:  language.Und,
		symbols: symbols,
	}
}

// Locale returns the locale the parser was created for.
func (p *Parser) Locale() language.Tag {
	return p.locale
}

// Symbols returns the separators in use.
func (p *Parser) Symbols() Symbols {
	return p.symbols
}

func (p *Parser) ParseByte(s string) (int8, error) {
	v, err := p.parseInteger(s, primitive.KindByte)
	return int8(v), err
}

func (p *Parser) ParseShort(s string) (int16, error) {
	v, err := p.parseInteger(s, primitive.KindShort)
	return int16(v), err
}

func (p *Parser) ParseInt(s string) (int32, error) {
	v, err := p.parseInteger(s, primitive.KindInt)
	return int32(v), err
}

func (p *Parser) ParseLong(s string) (int64, error) {
	return p.parseInteger(s, primitive.KindLong)
}

func (p *Parser) ParseFloat(s string) (float32, error) {
	v, err := p.parseFloating(s, primitive.KindFloat)
	return float32(v), err
}

func (p *Parser) ParseDouble(s string) (float64, error) {
	return p.parseFloating(s, primitive.KindDouble)
}

func (p *Parser) ParseBigInteger(s string) (*big.Int, error) {
	norm, err := p.normalize(s, false)
	if err != nil {
		return nil, &NumberFormatError{Input: s, Kind: primitive.KindBigInteger, Err: err}
	}

	v, ok := new(big.Int).SetString(norm, 10)
	if !ok {
		return nil, &NumberFormatError{Input: s, Kind: primitive.KindBigInteger, Err: ErrSyntax}
	}

	return v, nil
}

func (p *Parser) ParseBigDecimal(s string) (*apd.Decimal, error) {
	norm, err := p.normalize(s, true)
	if err != nil {
		return nil, &NumberFormatError{Input: s, Kind: primitive.KindBigDecimal, Err: err}
	}

	d, _, err := apd.NewFromString(norm)
	if err != nil {
		return nil, &NumberFormatError{Input: s, Kind: primitive.KindBigDecimal, Err: fmt.Errorf("%w: %w", ErrSyntax, err)}
	}

	return d, nil
}

func (p *Parser) parseInteger(s string, kind primitive.KindEnum) (int64, error) {
	norm, err := p.normalize(s, false)
	if err != nil {
		return 0, &NumberFormatError{Input: s, Kind: kind, Err: err}
	}

	v, err := strconv.ParseInt(norm, 10, 64)
	if err != nil {
		return 0, &NumberFormatError{Input: s, Kind: kind, Err: numError(err)}
	}

	minValue, maxValue := kind.Range()
	if !utils.IsInRange(minValue, v, maxValue) {
		return 0, &NumberFormatError{Input: s, Kind: kind, Err: ErrRange}
	}

	return v, nil
}

func (p *Parser) parseFloating(s string, kind primitive.KindEnum) (float64, error) {
	norm, err := p.normalize(s, true)
	if err != nil {
		return 0, &NumberFormatError{Input: s, Kind: kind, Err: err}
	}

	v, err := strconv.ParseFloat(norm, kind.Bits())
	if err != nil {
		return 0, &NumberFormatError{Input: s, Kind: kind, Err: numError(err)}
	}

	return v, nil
}

// normalize rewrites locale text into the form strconv understands: an
// optional '-', ASCII digits and, if fractional is set, at most one '.'.
// Grouping separators are dropped wherever they appear before the decimal
// separator.
func (p *Parser) normalize(s string, fractional bool) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	rest := s
	if strings.HasPrefix(rest, "-") {
		b.WriteByte('-')
		rest = rest[1:]
	}

	digits, seenDecimal := 0, false
	for len(rest) > 0 {
		r, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]

		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == p.symbols.Decimal && fractional && !seenDecimal:
			b.WriteByte('.')
			seenDecimal = true
		case p.symbols.isGrouping(r) && !seenDecimal && digits > 0:
			// dropped
		default:
			return "", ErrSyntax
		}
	}

	if digits == 0 {
		return "", ErrSyntax
	}

	return b.String(), nil
}

func numError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrRange
	}

	return ErrSyntax
}
