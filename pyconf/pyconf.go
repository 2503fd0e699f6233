// Package pyconf renders a settings record as a Pelican settings module.
package pyconf

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/gkomninos/siteconf"
)

// Templates contains the embedded settings module template.
//
//go:embed templates/*.tmpl
var Templates embed.FS

// FileNames maps each profile to the module name Pelican expects for it.
var FileNames = map[siteconf.Profile]string{
	siteconf.Development: "pelicanconf.py",
	siteconf.Production:  "publishconf.py",
}

var tmpl = template.Must(template.ParseFS(Templates, "templates/settings.py.tmpl"))

type moduleData struct {
	Profile     siteconf.Profile
	Assignments []assignment
}

// assignment is one top-level NAME = value statement.
type assignment struct {
	Name  string
	Value string
}

// Write renders c as a Python settings module for profile p.
func Write(w io.Writer, p siteconf.Profile, c siteconf.SiteConfig) error {
	settings := c.Settings()
	data := moduleData{Profile: p, Assignments: make([]assignment, 0, len(settings))}
	for _, st := range settings {
		name := strings.ToUpper(st.Key)
		// Continuation lines line up with the first element after "NAME = (".
		value, err := format(st.Value, len(name)+len(" = "), c.StaticPaths)
		if err != nil {
			return fmt.Errorf("pyconf: render %s: %s: %w", p, name, err)
		}
		data.Assignments = append(data.Assignments, assignment{Name: name, Value: value})
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("pyconf: render %s: %w", p, err)
	}
	return nil
}

// WriteProfiles writes one module per profile into dir and returns the paths written.
func WriteProfiles(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var written []string
	for _, p := range siteconf.Profiles() {
		c, err := siteconf.Load(p)
		if err != nil {
			return written, err
		}
		out := filepath.Join(dir, FileNames[p])
		if err := writeFile(out, p, c); err != nil {
			return written, err
		}
		written = append(written, out)
	}
	return written, nil
}

func writeFile(path string, p siteconf.Profile, c siteconf.SiteConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pyconf: create %s: %w", path, err)
	}
	if err := Write(f, p, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Literal formats v as a Python literal. Links become tuples of pairs, nil
// pointers become None. Multi-line values are laid out as if the literal
// started at column zero, and path metadata is keyed in sorted order.
func Literal(v any) (string, error) {
	return format(v, 0, nil)
}

// format is Literal for a value starting at column col. Path metadata keys
// listed in order come first, in that order, followed by the rest sorted.
func format(v any, col int, order []string) (string, error) {
	switch x := v.(type) {
	case string:
		return quote(x), nil
	case int:
		return strconv.Itoa(x), nil
	case bool:
		if x {
			return "True", nil
		}
		return "False", nil
	case *string:
		if x == nil {
			return "None", nil
		}
		return quote(*x), nil
	case *bool:
		if x == nil {
			return "None", nil
		}
		return format(*x, col, order)
	case []string:
		parts := make([]string, len(x))
		for i, s := range x {
			parts[i] = quote(s)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case []siteconf.Link:
		if len(x) == 0 {
			return "()", nil
		}
		var b strings.Builder
		b.WriteString("(")
		for i, l := range x {
			if i > 0 {
				b.WriteString(",\n" + strings.Repeat(" ", col+1))
			}
			b.WriteString("(" + quote(l.Label) + ", " + quote(l.URL) + ")")
		}
		b.WriteString(",)")
		return b.String(), nil
	case map[string]string:
		return dict(x), nil
	case siteconf.PathMetadata:
		return dict(x), nil
	case map[string]siteconf.PathMetadata:
		keys := orderedKeys(x, order)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = "    " + quote(k) + ": " + dict(x[k])
		}
		if len(parts) == 0 {
			return "{}", nil
		}
		return "{\n" + strings.Join(parts, ",\n") + "\n}", nil
	}
	return "", fmt.Errorf("pyconf: no python literal for %T", v)
}

func dict(m map[string]string) string {
	keys := sortedKeys(m)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = quote(k) + ": " + quote(m[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// orderedKeys returns the keys of m that appear in order, in that order,
// followed by the remaining keys sorted.
func orderedKeys[V any](m map[string]V, order []string) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range order {
		if _, ok := m[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// quote returns s as a single-quoted Python string.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
