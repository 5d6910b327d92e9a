// Package main provides the CLI entrypoint for transformlookup.
//
// transformlookup shows how step parameters are resolved and converted:
//   - list prints every transform registered by type
//   - resolve picks the transform for a parameter and optionally converts a value
package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"

	"github.com/coderbyheart/cucumber/internal/config"
	"github.com/coderbyheart/cucumber/internal/logging"
	"github.com/coderbyheart/cucumber/primitive"
	"github.com/coderbyheart/cucumber/transform"
)

const version = "0.1.0"

// Globals are the flags shared by every command.
type Globals struct {
	Config string `name:"config" short:"c" help:"Registry configuration file" type:"existingfile"`
	Locale string `name:"locale" short:"l" help:"Locale of captured numbers, overrides the configuration"`

	stdout io.Writer
	stderr io.Writer
}

// CLI defines the command-line interface for transformlookup.
type CLI struct {
	Globals

	List    ListCmd    `cmd:"" help:"List registered transforms"`
	Resolve ResolveCmd `cmd:"" help:"Resolve the transform for a parameter and convert a value"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ListCmd prints the registered transforms.
type ListCmd struct{}

func (c *ListCmd) Run(g *Globals) error {
	registry, err := g.registry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(g.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE NAME\tTYPE\tREGEXPS")

	for _, t := range registry.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.TypeName(), t.Type(), strings.Join(t.CaptureGroupRegexps(), "  "))
	}

	return w.Flush()
}

// ResolveCmd resolves a transform the way a step matcher would.
type ResolveCmd struct {
	GoType    string `name:"go-type" short:"g" help:"Go type the step definition expects, e.g. int32 or *float64"`
	TypeName  string `name:"type-name" short:"t" help:"Type name declared in the step expression"`
	Parameter string `name:"parameter" short:"p" help:"Parameter name, tried as a type name"`
	Regexp    string `name:"regexp" short:"r" help:"Capture group regexp the value was matched with; selects regexp resolution"`
	Dump      bool   `name:"dump" help:"Dump the converted value"`

	Value string `arg:"" optional:"" help:"Captured text to convert"`
}

func (c *ResolveCmd) Run(g *Globals) error {
	typ, err := goType(c.GoType)
	if err != nil {
		return err
	}

	registry, err := g.registry()
	if err != nil {
		return err
	}

	var t transform.Transform
	if c.Regexp != "" {
		t = registry.LookupByRegexp(typ, c.Regexp)
	} else {
		t, err = registry.LookupByName(typ, c.Parameter, c.TypeName)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(g.stdout, "transform: %s (%s)\n", t.TypeName(), t.Type())
	fmt.Fprintf(g.stdout, "regexps:   %s\n", strings.Join(t.CaptureGroupRegexps(), "  "))

	if c.Value == "" {
		return nil
	}

	v, err := t.Transform(c.Value)
	if err != nil {
		return err
	}

	if c.Dump {
		fmt.Fprint(g.stdout, spew.Sdump(v))
		return nil
	}

	fmt.Fprintf(g.stdout, "value:     %v (%T)\n", v, v)

	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	fmt.Fprintf(g.stdout, "transformlookup version %s\n", version)
	return nil
}

// registry builds the registry from the configuration file, or from the
// defaults when none is given.
func (g *Globals) registry() (*transform.Registry, error) {
	f := config.Default()

	if g.Config != "" {
		loaded, err := config.LoadFile(g.Config)
		if err != nil {
			return nil, err
		}

		f = loaded
	}

	if g.Locale != "" {
		f.Locale = g.Locale
	}

	// the logger is built from the file, so its settings are checked first
	if diags := config.Validate(f); diags.HasErrors() {
		return nil, diags.Error()
	}

	logger, err := logging.New(f.Logging(), g.stderr)
	if err != nil {
		return nil, err
	}

	return config.BuildRegistry(f, logger)
}

// goTypes are the types --go-type accepts.
var goTypes = func() map[string]transform.TypeID {
	m := map[string]transform.TypeID{}

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		rt := k.GoType()
		m[rt.String()] = transform.TypeFor(rt)

		if k.IsFixedWidth() {
			m["*"+rt.String()] = transform.TypeFor(reflect.PointerTo(rt))
		}
	}

	m["any"] = transform.TypeOf[any]()

	return m
}()

func goType(name string) (transform.TypeID, error) {
	if name == "" {
		return transform.TypeID{}, nil
	}

	typ, ok := goTypes[name]
	if !ok {
		names := make([]string, 0, len(goTypes))
		for n := range goTypes {
			names = append(names, n)
		}

		sort.Strings(names)

		return transform.TypeID{}, fmt.Errorf("unsupported Go type %q, expected one of %s", name, strings.Join(names, ", "))
	}

	return typ, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("transformlookup"),
		kong.Description("Resolve and apply step parameter transforms"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.stdout, cli.stderr = stdout, stderr

	return ctx.Run(&cli.Globals)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "transformlookup:", err)
		os.Exit(1)
	}
}
