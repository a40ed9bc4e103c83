// Package generator emits the Go source for the input-source wrapper
// flag types: one wrapper per flag kind, each embedding the cli flag
// type and recording the flag set handed to Apply.
package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"

	"github.com/altsrc-go/flagsrc-gen/config"
	"github.com/google/renameio/v2"
)

// Defaults for Options fields left empty
const (
	DefaultPackageName   = "altsrc"
	DefaultCLIImportPath = "github.com/urfave/cli/v2"
	DefaultTool          = "flagsrc-gen"
)

// Generator renders wrapper type declarations for a kind list
type Generator struct {
	Kinds   []config.FlagKind
	Options Options
}

// Options controls document emission behavior
type Options struct {
	PackageName   string // package clause of the generated file
	CLIImportPath string // import path of the wrapped flag library
	Tool          string // tool name recorded in the generated-by header
	SkipFormat    bool   // emit raw template output without the gofmt pass
}

func (o Options) withDefaults() Options {
	if o.PackageName == "" {
		o.PackageName = DefaultPackageName
	}
	if o.CLIImportPath == "" {
		o.CLIImportPath = DefaultCLIImportPath
	}
	if o.Tool == "" {
		o.Tool = DefaultTool
	}
	return o
}

// NewGenerator creates a new wrapper type generator
func NewGenerator(kinds []config.FlagKind, opts Options) *Generator {
	return &Generator{
		Kinds:   kinds,
		Options: opts,
	}
}

var headerTpl = template.Must(template.New("header").Parse(`// Code generated by {{.Tool}}; DO NOT EDIT.

package {{.PackageName}}

import (
	"flag"

	"{{.CLIImportPath}}"
)
`))

var flagTpl = template.Must(template.New("flag").Parse(`
// {{.}}Flag is the flag type that wraps cli.{{.}}Flag to allow
// for other values to be specified
type {{.}}Flag struct {
	*cli.{{.}}Flag
	set *flag.FlagSet
}

var _ FlagInputSourceExtension = (*{{.}}Flag)(nil)

// New{{.}}Flag creates a new {{.}}Flag
func New{{.}}Flag(fl *cli.{{.}}Flag) *{{.}}Flag {
	return &{{.}}Flag{{"{"}}{{.}}Flag: fl, set: nil}
}

// Apply saves the flagSet for later usage calls, then calls
// the wrapped {{.}}Flag.Apply
func (f *{{.}}Flag) Apply(set *flag.FlagSet) error {
	f.set = set
	return f.{{.}}Flag.Apply(set)
}
`))

// Render produces the generated source document: the generated-by
// header and import block, then one wrapper block per kind, in input
// order. An empty kind list yields the header and imports only.
// Render is a pure function of the generator's fields; calling it
// twice yields byte-identical output.
func (g *Generator) Render() ([]byte, error) {
	opts := g.Options.withDefaults()

	var buf bytes.Buffer
	if err := headerTpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("failed to render header: %w", err)
	}
	for _, kind := range g.Kinds {
		if err := flagTpl.Execute(&buf, kind); err != nil {
			return nil, fmt.Errorf("failed to render %s block: %w", kind, err)
		}
	}

	if opts.SkipFormat {
		return buf.Bytes(), nil
	}

	// Kind names are not validated up front, so a malformed name
	// surfaces here as unparseable source.
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// Generate renders the document and writes it to w. Write failures
// are reported distinct from render failures.
func (g *Generator) Generate(w io.Writer) error {
	src, err := g.Render()
	if err != nil {
		return err
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("failed to write generated source: %w", err)
	}
	return nil
}

// GenerateFile renders the document and writes it to path atomically,
// so a failed run never leaves a truncated source file for downstream
// builds to pick up.
func (g *Generator) GenerateFile(path string) error {
	src, err := g.Render()
	if err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("failed to create pending file for %s: %w", path, err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if _, err := pending.Write(src); err != nil {
		return fmt.Errorf("failed to write generated source: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
