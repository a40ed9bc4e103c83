package flagsrcgen_test

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	flagsrcgen "github.com/altsrc-go/flagsrc-gen"
	"github.com/altsrc-go/flagsrc-gen/config"
)

// parseGenerated renders the default document and parses it back as
// Go source, so the tests below can assert on declarations instead of
// substrings.
func parseGenerated(t *testing.T) *ast.File {
	t.Helper()

	src, err := flagsrcgen.Render()
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "flag_generated.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("Generated source does not parse: %v", err)
	}
	return file
}

func TestGeneratedSourceDeclarations(t *testing.T) {
	file := parseGenerated(t)

	if file.Name.Name != "altsrc" {
		t.Errorf("Expected package altsrc, got %s", file.Name.Name)
	}

	types := make(map[string]bool)
	funcs := make(map[string]bool)
	methods := make(map[string]bool) // receiver type -> has Apply
	asserts := 0

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			switch d.Tok {
			case token.TYPE:
				for _, spec := range d.Specs {
					types[spec.(*ast.TypeSpec).Name.Name] = true
				}
			case token.VAR:
				asserts++
			}
		case *ast.FuncDecl:
			if d.Recv == nil {
				funcs[d.Name.Name] = true
				continue
			}
			if star, ok := d.Recv.List[0].Type.(*ast.StarExpr); ok && d.Name.Name == "Apply" {
				methods[star.X.(*ast.Ident).Name] = true
			}
		}
	}

	kinds := config.AllKinds()
	for _, kind := range kinds {
		wrapper := string(kind) + "Flag"
		if !types[wrapper] {
			t.Errorf("Expected type %s to be declared", wrapper)
		}
		if !funcs["New"+wrapper] {
			t.Errorf("Expected constructor New%s to be declared", wrapper)
		}
		if !methods[wrapper] {
			t.Errorf("Expected Apply method on *%s", wrapper)
		}
	}
	if len(types) != len(kinds) {
		t.Errorf("Expected %d wrapper types, got %d", len(kinds), len(types))
	}
	if asserts != len(kinds) {
		t.Errorf("Expected %d conformance assertions, got %d", len(kinds), asserts)
	}
}

func TestGeneratedSourceGofmtClean(t *testing.T) {
	src, err := flagsrcgen.Render()
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}

	formatted, err := format.Source(src)
	if err != nil {
		t.Fatalf("Failed to format generated source: %v", err)
	}
	if !bytes.Equal(src, formatted) {
		t.Error("Expected generated source to be gofmt-clean")
	}
}

func TestGenerateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flag_generated.go")
	if err := flagsrcgen.GenerateFile(path); err != nil {
		t.Fatalf("Failed to generate file: %v", err)
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, path, nil, parser.ParseComments); err != nil {
		t.Fatalf("Generated file does not parse: %v", err)
	}
}
