// Package main generates the identifier enumerations for the location
// package.
//
// The generator reads location/registry.yaml, derives a Go constant name for
// every registered call, reference page, and field, and writes
// location/zz_generated_names.go containing the constants, their name
// tables, and String methods. Table lengths are pinned to the constant
// count with array-size assertions so a stale or hand-edited table fails to
// compile.
//
// Usage:
//
//	go run ./internal/codegen/names
//	go run ./internal/codegen/names -check  # verify freshness
//
// Or via go generate:
//
//	//go:generate go run ../internal/codegen/names
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/erraggy/errloc/internal/fileutil"
	"github.com/erraggy/errloc/internal/pathutil"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// registry mirrors location/registry.yaml.
type registry struct {
	Funcs    []string `yaml:"funcs"`
	RefPages []string `yaml:"refpages"`
	Fields   []string `yaml:"fields"`
}

// enumKind holds everything the template needs to emit one enumeration.
type enumKind struct {
	Type   string   // Go type name, e.g. "Func"
	Table  string   // name table variable, e.g. "funcNames"
	Recv   string   // receiver name for String
	Doc    []string // type doc comment lines
	Consts []string // constant names, excluding the Empty sentinel
	Names  []string // registered names, parallel to Consts
}

const namesTemplate = `// Code generated by internal/codegen/names from registry.yaml. DO NOT EDIT.

package location

import "strconv"
{{range .}}
{{range .Doc}}// {{.}}
{{end}}type {{.Type}} uint16

// {{.Type}} values. {{.Type}}Empty is the unset sentinel.
const (
	{{.Type}}Empty {{.Type}} = iota
{{range .Consts}}	{{.}}
{{end}}	num{{.Type}}s
)

var {{.Table}} = [...]string{
	"",
{{range .Names}}	"{{.}}",
{{end}}}

// {{.Table}} must hold exactly one entry per {{.Type}}.
var (
	_ [len({{.Table}}) - int(num{{.Type}}s)]struct{}
	_ [int(num{{.Type}}s) - len({{.Table}})]struct{}
)

// String returns the registered name of {{.Recv}}, or "" for {{.Type}}Empty.
func ({{.Recv}} {{.Type}}) String() string {
	if int({{.Recv}}) < len({{.Table}}) {
		return {{.Table}}[{{.Recv}}]
	}
	return "{{.Type}}(" + strconv.FormatInt(int64({{.Recv}}), 10) + ")"
}
{{end}}`

func main() {
	check := flag.Bool("check", false, "Compare generated output with existing file and exit non-zero if stale")
	flag.Parse()

	// The generator can be invoked from the project root
	// (go run ./internal/codegen/names) or from the location directory
	// (go generate).
	locationDir := "location"
	if _, err := os.Stat(locationDir); os.IsNotExist(err) {
		locationDir = "."
	}
	registryPath := filepath.Join(locationDir, "registry.yaml")
	outputPath, err := pathutil.SanitizeOutputPath(filepath.Join(locationDir, "zz_generated_names.go"))
	if err != nil {
		fatal("invalid output path: %v", err)
	}

	data, err := os.ReadFile(registryPath)
	if err != nil {
		fatal("failed to read registry: %v", err)
	}
	kinds, err := loadKinds(data)
	if err != nil {
		fatal("%v", err)
	}

	formatted, err := render(kinds)
	if err != nil {
		fatal("%v", err)
	}

	if *check {
		existing, err := os.ReadFile(outputPath)
		if err != nil {
			fatal("failed to read existing file: %v", err)
		}
		if !bytes.Equal(existing, formatted) {
			fatal("%s is stale; run: go run ./internal/codegen/names", outputPath)
		}
		fmt.Printf("%s is up to date\n", outputPath)
		return
	}

	if err := fileutil.WriteGenerated(outputPath, formatted); err != nil {
		fatal("failed to write %s: %v", outputPath, err)
	}
	fmt.Printf("Generated %s\n", outputPath)
}

// loadKinds decodes the registry and derives constant names for each list.
func loadKinds(data []byte) ([]enumKind, error) {
	var reg registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	funcs, err := newKind("Func", "funcNames", "f", reg.Funcs,
		"Func identifies the API entry point being validated.")
	if err != nil {
		return nil, err
	}
	refPages, err := newKind("RefPage", "refPageNames", "r", reg.RefPages,
		"RefPage identifies the reference page (structure or command description)",
		"whose valid usage rules govern the current context.")
	if err != nil {
		return nil, err
	}
	fields, err := newKind("Field", "fieldNames", "f", reg.Fields,
		"Field identifies a parameter or structure member.")
	if err != nil {
		return nil, err
	}
	return []enumKind{funcs, refPages, fields}, nil
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

func newKind(typ, table, recv string, names []string, doc ...string) (enumKind, error) {
	if len(names) == 0 {
		return enumKind{}, fmt.Errorf("registry: no %s entries", typ)
	}
	k := enumKind{Type: typ, Table: table, Recv: recv, Doc: doc, Names: names}
	seen := make(map[string]bool, len(names))
	// The empty sentinel owns <typ>Empty.
	constOwner := map[string]string{typ + "Empty": ""}
	for _, name := range names {
		if !isIdentifier(name) {
			return enumKind{}, fmt.Errorf("registry: %s name %q is not an identifier", typ, name)
		}
		if seen[name] {
			return enumKind{}, fmt.Errorf("registry: duplicate %s name %q", typ, name)
		}
		seen[name] = true
		c := constName(typ, name)
		if owner, taken := constOwner[c]; taken {
			if owner == "" {
				return enumKind{}, fmt.Errorf("registry: %s name %q collides with the %s sentinel", typ, name, c)
			}
			return enumKind{}, fmt.Errorf("registry: %s names %q and %q both generate %s", typ, owner, name, c)
		}
		constOwner[c] = name
		k.Consts = append(k.Consts, c)
	}
	return k, nil
}

// constName turns a registry name into an exported constant:
// ("Field", "pImageMemoryBarriers") -> "FieldPImageMemoryBarriers".
func constName(typ, name string) string {
	return typ + titleCaser.String(name)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}

// render executes the template and formats the result like goimports.
func render(kinds []enumKind) ([]byte, error) {
	tmpl, err := template.New("names").Parse(namesTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, kinds); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	formatted, err := imports.Process("zz_generated_names.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w\n\nGenerated code:\n%s", err, buf.String())
	}
	return formatted, nil
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprint(os.Stderr, "names: "+msg)
	os.Exit(1)
}
