// Package routes maintains resource route declarations in a PHP routes file.
// Registration is an upsert keyed by resource name, so running the generator
// again replaces the earlier declaration instead of adding a second one.
package routes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/fsutil"
	"github.com/hlop3z/crudgen/internal/strutil"
)

// Kind selects the Route facade method.
type Kind string

// Route kinds.
const (
	KindResource    Kind = "resource"
	KindAPIResource Kind = "apiResource"
)

// Header starts a routes file created from scratch.
const Header = "<?php\n\nuse Illuminate\\Support\\Facades\\Route;\n\n"

// Declaration is one resource route.
type Declaration struct {
	Kind       Kind
	Resource   string
	Controller string
}

// String renders the declaration as a PHP statement.
func (d Declaration) String() string {
	return fmt.Sprintf("Route::%s('%s', %s::class);", d.Kind, d.Resource, d.Controller)
}

// Web returns the browser route for a model.
func Web(name string) Declaration {
	return Declaration{
		Kind:       KindResource,
		Resource:   strutil.Plural(name),
		Controller: `App\Http\Controllers\` + name + "Controller",
	}
}

// API returns the API route for a model.
func API(name string) Declaration {
	return Declaration{
		Kind:       KindAPIResource,
		Resource:   strutil.Plural(name),
		Controller: `App\Http\Controllers\Api\` + name + `\` + name + "Controller",
	}
}

// Outcome reports what Upsert did.
type Outcome string

// Upsert outcomes.
const (
	Added     Outcome = "added"
	Replaced  Outcome = "replaced"
	Unchanged Outcome = "unchanged"
)

// routeLine matches a resource declaration on its own line.
var routeLine = regexp.MustCompile(`^\s*Route::(resource|apiResource)\(\s*['"]([^'"]+)['"]\s*,\s*(.+?)::class\s*\)\s*;\s*$`)

// line is one line of the file; decl is set for recognised declarations.
type line struct {
	text string
	decl *Declaration
}

// Registry is a parsed routes file. Lines that are not resource
// declarations are kept verbatim.
type Registry struct {
	lines []line
}

// Parse reads a routes file.
func Parse(content string) *Registry {
	r := &Registry{}
	if content == "" {
		return r
	}

	content = strings.TrimSuffix(content, "\n")
	for _, text := range strings.Split(content, "\n") {
		l := line{text: text}
		if m := routeLine.FindStringSubmatch(text); m != nil {
			l.decl = &Declaration{
				Kind:       Kind(m[1]),
				Resource:   m[2],
				Controller: strings.TrimPrefix(strings.TrimSpace(m[3]), `\`),
			}
		}
		r.lines = append(r.lines, l)
	}
	return r
}

// Declarations returns the recognised declarations in file order.
func (r *Registry) Declarations() []Declaration {
	var out []Declaration
	for _, l := range r.lines {
		if l.decl != nil {
			out = append(out, *l.decl)
		}
	}
	return out
}

// Lookup returns the first declaration for resource.
func (r *Registry) Lookup(resource string) (Declaration, bool) {
	for _, l := range r.lines {
		if l.decl != nil && l.decl.Resource == resource {
			return *l.decl, true
		}
	}
	return Declaration{}, false
}

// Upsert sets the declaration for d.Resource. The first existing entry is
// replaced in place and any later entries for the same resource are
// dropped. Without an existing entry d is appended.
func (r *Registry) Upsert(d Declaration) Outcome {
	first := -1
	dropped := false
	kept := make([]line, 0, len(r.lines))

	for _, l := range r.lines {
		if l.decl == nil || l.decl.Resource != d.Resource {
			kept = append(kept, l)
			continue
		}
		if first == -1 {
			first = len(kept)
			kept = append(kept, l)
			continue
		}
		dropped = true
	}
	r.lines = kept

	if first == -1 {
		decl := d
		r.lines = append(r.lines, line{text: d.String(), decl: &decl})
		return Added
	}

	if *r.lines[first].decl == d && !dropped {
		return Unchanged
	}
	decl := d
	r.lines[first] = line{text: d.String(), decl: &decl}
	return Replaced
}

// String serialises the registry with a trailing newline.
func (r *Registry) String() string {
	if len(r.lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range r.lines {
		b.WriteString(l.text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Load reads the registry at path. A missing or blank file yields a registry
// holding only Header.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Parse(Header), nil
		}
		return nil, alerr.Wrap(alerr.ErrRoutesFile, err, "failed to read routes file").
			WithPath(path)
	}
	if strings.TrimSpace(string(data)) == "" {
		return Parse(Header), nil
	}
	return Parse(string(data)), nil
}

// Preview reports what Register would do without writing.
func Preview(path string, d Declaration) (Outcome, error) {
	reg, err := Load(path)
	if err != nil {
		return "", err
	}
	return reg.Upsert(d), nil
}

// Register upserts d into the routes file at path, creating the file when
// it does not exist. The file is only rewritten when something changed.
func Register(path string, d Declaration) (Outcome, error) {
	reg, err := Load(path)
	if err != nil {
		return "", err
	}

	outcome := reg.Upsert(d)
	if outcome == Unchanged {
		return outcome, nil
	}

	if err := fsutil.WriteFileAtomic(path, []byte(reg.String())); err != nil {
		return "", alerr.Wrap(alerr.ErrRoutesFile, err, "failed to write routes file").
			WithPath(path)
	}
	return outcome, nil
}
