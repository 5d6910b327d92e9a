package transform

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/coderbyheart/cucumber/numberparser"
)

var builtinTypeNames = []string{"byte", "short", "int", "long", "float", "double"}

func TestNew_BuiltinTypeNamesResolve(t *testing.T) {
	r := NewForLocale(language.English)

	for _, name := range builtinTypeNames {
		t.Run(name, func(t *testing.T) {
			tr, err := r.LookupByName(TypeID{}, "", name)
			require.NoError(t, err)
			assert.Equal(t, name, tr.TypeName())
		})
	}
}

func TestNew_ValueAndPointerTypesBothRegistered(t *testing.T) {
	r := NewForLocale(language.English)

	tests := []struct {
		value    TypeID
		pointer  TypeID
		typeName string
		input    string
	}{
		{TypeOf[int8](), TypeOf[*int8](), "byte", "-12"},
		{TypeOf[int16](), TypeOf[*int16](), "short", "1200"},
		{TypeOf[int32](), TypeOf[*int32](), "int", "42"},
		{TypeOf[int64](), TypeOf[*int64](), "long", "-42"},
		{TypeOf[float32](), TypeOf[*float32](), "float", "1.5"},
		{TypeOf[float64](), TypeOf[*float64](), "double", "3.25"},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			value, err := r.LookupByName(tt.value, "", "")
			require.NoError(t, err)
			pointer, err := r.LookupByName(tt.pointer, "", "")
			require.NoError(t, err)

			assert.NotSame(t, value, pointer)
			assert.Equal(t, tt.typeName, value.TypeName())
			assert.Equal(t, tt.typeName, pointer.TypeName())
			assert.Equal(t, tt.value, value.Type())
			assert.Equal(t, tt.pointer, pointer.Type())
			assert.Equal(t, value.CaptureGroupRegexps(), pointer.CaptureGroupRegexps())

			v, err := value.Transform(tt.input)
			require.NoError(t, err)
			p, err := pointer.Transform(tt.input)
			require.NoError(t, err)

			assert.Equal(t, v, derefAny(t, p))
		})
	}
}

func derefAny(t *testing.T, p any) any {
	t.Helper()

	switch v := p.(type) {
	case *int8:
		return *v
	case *int16:
		return *v
	case *int32:
		return *v
	case *int64:
		return *v
	case *float32:
		return *v
	case *float64:
		return *v
	default:
		t.Fatalf("unexpected pointer type %T", p)
		return nil
	}
}

func TestLookupByName_TypeNameOnlyYieldsValueType(t *testing.T) {
	r := NewForLocale(language.English)

	tests := []struct {
		typeName string
		typ      TypeID
		input    string
		expected any
	}{
		{"byte", TypeOf[int8](), "7", int8(7)},
		{"short", TypeOf[int16](), "-7", int16(-7)},
		{"int", TypeOf[int32](), "42", int32(42)},
		{"long", TypeOf[int64](), "42", int64(42)},
		{"float", TypeOf[float32](), "1.5", float32(1.5)},
		{"double", TypeOf[float64](), "3.14", 3.14},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			byName, err := r.LookupByName(TypeID{}, "", tt.typeName)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, byName.Type())

			byParameter, err := r.LookupByName(TypeID{}, tt.typeName, "")
			require.NoError(t, err)
			assert.Same(t, byName, byParameter)

			v, err := byName.Transform(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestLookupByRegexp_BuiltinRegexps(t *testing.T) {
	r := NewForLocale(language.English)

	// every regexp resolves to the transform owning it in the index
	for _, tr := range r.All() {
		for _, re := range tr.CaptureGroupRegexps() {
			assert.Same(t, r.byCaptureGroupRegexp[re], r.LookupByRegexp(TypeID{}, re), re)
		}
	}

	// shared regexps belong to the last built-in added with them
	for _, re := range IntegerRegexps() {
		tr := r.LookupByRegexp(TypeID{}, re)
		assert.Equal(t, "long", tr.TypeName())
		assert.Equal(t, TypeOf[int64](), tr.Type())
	}

	tr := r.LookupByRegexp(TypeID{}, `-?\d*[.,]\d+`)
	assert.Equal(t, "double", tr.TypeName())
	assert.Equal(t, TypeOf[float64](), tr.Type())
}

func TestLookupByRegexp_TypeWinsOverRegexp(t *testing.T) {
	r := NewForLocale(language.English)

	tr := r.LookupByRegexp(TypeOf[int8](), `-?\d*[.,]\d+`)
	assert.Equal(t, "byte", tr.TypeName())
	assert.Equal(t, TypeOf[int8](), tr.Type())
}

func TestLookupByRegexp_Fallbacks(t *testing.T) {
	r := NewForLocale(language.English)

	tr := r.LookupByRegexp(TypeID{}, `[a-z]+`)
	assert.Equal(t, Identity{}, tr)

	tr = r.LookupByRegexp(TypeOf[fmt.Stringer](), `[a-z]+`)
	assert.Equal(t, Identity{}, tr, "interfaces are not constructed")

	tr = r.LookupByRegexp(TypeOf[color](), `[a-z]+`)
	require.IsType(t, &Constructed{}, tr)
	assert.Equal(t, TypeOf[color](), tr.Type())
}

func TestLookupByRegexp_UncheckedRegexpMayReturnOtherType(t *testing.T) {
	r := NewForLocale(language.English)

	// int is not registered, so the regexp index decides
	tr := r.LookupByRegexp(TypeOf[int](), `-?\d+`)
	assert.Equal(t, TypeOf[int64](), tr.Type())
}

func TestLookupByRegexp_TypeChecked(t *testing.T) {
	r := NewForLocale(language.English, WithTypeCheckedRegexps())

	tr := r.LookupByRegexp(TypeOf[int](), `-?\d+`)
	require.IsType(t, &Constructed{}, tr)
	assert.Equal(t, TypeOf[int](), tr.Type())

	_, err := tr.Transform("12")
	var ce *ConstructionError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, ErrNoStringConstructor)

	// an interface type accepts any transform assignable to it
	tr = r.LookupByRegexp(TypeOf[any](), `-?\d+`)
	assert.Equal(t, TypeOf[int64](), tr.Type())

	tr = r.LookupByRegexp(TypeOf[fmt.Stringer](), `-?\d+`)
	assert.Equal(t, Identity{}, tr)
}

func TestAdd_ThenLookupByType(t *testing.T) {
	r := NewForLocale(language.English)

	tr := MustSimple("color", []string{`red|green|blue`}, func(s string) (color, error) {
		return color(strings.ToUpper(s)), nil
	})
	r.Add(tr)

	got, err := r.LookupByName(tr.Type(), "", "")
	require.NoError(t, err)
	assert.Same(t, tr, got)

	assert.Same(t, tr, r.LookupByRegexp(TypeID{}, `red|green|blue`))

	v, err := got.Transform("red")
	require.NoError(t, err)
	assert.Equal(t, color("RED"), v)
}

func TestAdd_LastWriteWins(t *testing.T) {
	r := NewForLocale(language.English)

	first := MustSimple("word", []string{`\w+`}, func(s string) (string, error) { return s, nil })
	second := MustSimple("word", []string{`\w+`}, func(s string) (color, error) { return color(s), nil })
	r.Add(first)
	r.Add(second)

	got, err := r.LookupByName(TypeID{}, "", "word")
	require.NoError(t, err)
	assert.Same(t, second, got)
	assert.Same(t, second, r.LookupByRegexp(TypeID{}, `\w+`))

	// the type index still holds first under string
	got, err = r.LookupByName(TypeOf[string](), "", "")
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestAdd_OverridesBuiltin(t *testing.T) {
	r := NewForLocale(language.English)

	custom := MustSimple("int", []string{`\d+`}, func(s string) (int32, error) { return 7, nil })
	r.Add(custom)

	got, err := r.LookupByName(TypeOf[int32](), "", "")
	require.NoError(t, err)
	assert.Same(t, custom, got)

	// the pointer variant is a separate key and keeps the built-in
	got, err = r.LookupByName(TypeOf[*int32](), "", "")
	require.NoError(t, err)
	assert.NotSame(t, custom, got)
	assert.Equal(t, "int", got.TypeName())
}

func TestLookupByName_UnknownTypeName(t *testing.T) {
	r := NewForLocale(language.English)

	tr, err := r.LookupByName(TypeID{}, "", "unregistered_name")
	assert.Nil(t, tr)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTypeName)

	var unknown *UnknownTypeNameError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unregistered_name", unknown.TypeName)
	assert.Equal(t, `no transform for type name "unregistered_name"`, err.Error())

	// a known type wins before the type name is looked at
	tr, err = r.LookupByName(TypeOf[int64](), "", "unregistered_name")
	require.NoError(t, err)
	assert.Equal(t, "long", tr.TypeName())
}

func TestLookupByName_UnknownParameterNameFallsThrough(t *testing.T) {
	r := NewForLocale(language.English)

	tr, err := r.LookupByName(TypeID{}, "unregistered_name", "")
	require.NoError(t, err)
	assert.Equal(t, Identity{}, tr)

	tr, err = r.LookupByName(TypeOf[color](), "unregistered_name", "")
	require.NoError(t, err)
	assert.IsType(t, &Constructed{}, tr)
}

func TestLookupByName_ParameterNameAsTypeName(t *testing.T) {
	r := NewForLocale(language.English)

	tr, err := r.LookupByName(TypeID{}, "double", "")
	require.NoError(t, err)
	assert.Equal(t, "double", tr.TypeName())

	// the explicit type name takes precedence over the parameter name
	tr, err = r.LookupByName(TypeID{}, "double", "short")
	require.NoError(t, err)
	assert.Equal(t, "short", tr.TypeName())
}

func TestLookup_NothingMatchesYieldsIdentity(t *testing.T) {
	r := NewForLocale(language.English)

	tr := r.LookupByRegexp(TypeID{}, `no such regexp`)
	assert.Equal(t, "string", tr.TypeName())
	assert.Equal(t, TypeOf[string](), tr.Type())

	for _, s := range []string{"", "42", "3,14", "  spaced  ", "ünïcödé"} {
		v, err := tr.Transform(s)
		require.NoError(t, err)
		assert.Equal(t, s, v)
	}
}

func TestLocale_English(t *testing.T) {
	r := NewForLocale(language.English)

	intTr, err := r.LookupByName(TypeOf[int32](), "", "")
	require.NoError(t, err)
	v, err := intTr.Transform("42")
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)

	doubleTr, err := r.LookupByName(TypeOf[float64](), "", "")
	require.NoError(t, err)
	v, err = doubleTr.Transform("3.14")
	require.NoError(t, err)
	assert.Equal(t, 3.14, v)

	// "3,14" matches the floating point regexp and converts without error,
	// but ',' groups digits in English so the value is 314.
	v, err = doubleTr.Transform("3,14")
	require.NoError(t, err)
	assert.Equal(t, float64(314), v)
}

func TestLocale_German(t *testing.T) {
	r := NewForLocale(language.German)

	doubleTr, err := r.LookupByName(TypeID{}, "", "double")
	require.NoError(t, err)

	v, err := doubleTr.Transform("3,14")
	require.NoError(t, err)
	assert.Equal(t, 3.14, v)
}

func TestTransform_ConversionErrorWrapsNumberFormatError(t *testing.T) {
	r := NewForLocale(language.English)

	tr, err := r.LookupByName(TypeID{}, "", "int")
	require.NoError(t, err)

	_, err = tr.Transform("99999999999")
	require.Error(t, err)

	var conv *ConversionError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "int", conv.TypeName)
	assert.Equal(t, "99999999999", conv.Input)

	var nfe *numberparser.NumberFormatError
	require.ErrorAs(t, err, &nfe)
	assert.ErrorIs(t, err, numberparser.ErrRange)
}

func TestWithBigNumbers(t *testing.T) {
	r := New(numberparser.New(language.English), WithBigNumbers(numberparser.New(language.English)))

	bi, err := r.LookupByName(TypeID{}, "", "biginteger")
	require.NoError(t, err)
	v, err := bi.Transform("123456789012345678901234567890")
	require.NoError(t, err)
	require.IsType(t, &big.Int{}, v)
	assert.Equal(t, "123456789012345678901234567890", v.(*big.Int).String())

	bd, err := r.LookupByName(TypeOf[*apd.Decimal](), "", "")
	require.NoError(t, err)
	assert.Equal(t, "bigdecimal", bd.TypeName())
	v, err = bd.Transform("0.1")
	require.NoError(t, err)
	assert.Equal(t, "0.1", v.(*apd.Decimal).String())

	// the primitive built-ins keep their regexps
	assert.Equal(t, "long", r.LookupByRegexp(TypeID{}, `\d+`).TypeName())
	assert.Equal(t, "double", r.LookupByRegexp(TypeID{}, `-?\d*[.,]\d+`).TypeName())
}

func TestAll_Sorted(t *testing.T) {
	r := NewForLocale(language.English)

	all := r.All()
	require.Len(t, all, 12)

	var got []string
	for _, tr := range all {
		got = append(got, tr.TypeName()+" "+tr.Type().String())
	}

	assert.Equal(t, []string{
		"byte *int8", "byte int8",
		"double *float64", "double float64",
		"float *float32", "float float32",
		"int *int32", "int int32",
		"long *int64", "long int64",
		"short *int16", "short int16",
	}, got)
}

func TestAdd_Logs(t *testing.T) {
	var lines []string

	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	r := NewForLocale(language.English, WithLogger(logger))
	require.Len(t, lines, 12)
	assert.Contains(t, lines[0], `"typeName"="byte"`)

	lines = nil
	r.LookupByRegexp(TypeOf[color](), "nope")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "constructing from string")
}

func TestRegistry_ConcurrentReadsAfterSetup(t *testing.T) {
	r := NewForLocale(language.English)
	r.Add(MustSimple("color", []string{`red|green|blue`}, func(s string) (color, error) { return color(s), nil }))

	// frozen from here on: only reads below
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 200; j++ {
				tr, err := r.LookupByName(TypeID{}, "", "int")
				if !assert.NoError(t, err) {
					return
				}

				v, err := tr.Transform("42")
				assert.NoError(t, err)
				assert.Equal(t, int32(42), v)

				assert.Equal(t, "color", r.LookupByRegexp(TypeID{}, `red|green|blue`).TypeName())
				assert.Len(t, r.All(), 13)
			}
		}()
	}

	wg.Wait()
}
