// Package scaffold renders the CRUD artifacts for a model from its rule table.
// Rendering is pure: artifacts are returned in memory and written elsewhere.
package scaffold

import (
	"bytes"
	"embed"
	"path"
	"text/template"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/rules"
	"github.com/hlop3z/crudgen/internal/strutil"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates use [[ ]] so Blade's {{ }} passes through untouched.
var templates = template.Must(
	template.New("scaffold").Delims("[[", "]]").ParseFS(templateFS, "templates/*.tmpl"),
)

// Root names the project directory an artifact belongs under.
type Root string

// Artifact roots.
const (
	RootApp       Root = "app"
	RootResources Root = "resources"
)

// Artifact is one rendered file. Path is slash-separated and relative to
// Root.
type Artifact struct {
	Root    Root
	Path    string
	Content string
}

// Input is everything an emitter needs.
type Input struct {
	Name  string
	Rules *rules.Table

	// Fields overrides the field order of Rules when set.
	Fields []string
}

func (in Input) fields() []string {
	if len(in.Fields) > 0 {
		return in.Fields
	}
	return in.Rules.Fields()
}

// option is one <option> of a select.
type option struct {
	Value        string
	SelectedAttr string
}

type fieldView struct {
	Name    string
	Label   string
	Rule    string
	Options []option
}

type pageView struct {
	Name      string
	Plural    string
	Namespace string
	Class     string
	Fields    []fieldView

	// FormFields holds one rendered form control per field.
	FormFields []string
}

func newPageView(in Input) pageView {
	v := pageView{
		Name:   in.Name,
		Plural: strutil.Plural(in.Name),
	}
	for _, field := range in.fields() {
		fv := fieldView{
			Name:  field,
			Label: strutil.Headline(field),
			Rule:  in.Rules.Rule(field).String(),
		}
		if enum := in.Rules.Enum(field); enum != nil {
			for _, value := range enum.Values {
				o := option{Value: value}
				if enum.IsDefault(value) {
					o.SelectedAttr = " selected"
				}
				fv.Options = append(fv.Options, o)
			}
		}
		v.Fields = append(v.Fields, fv)
	}
	return v
}

// formFields renders the control for each field in the given form mode
// ("create" or "edit"). Enumerations become selects, everything else a text
// input.
func formFields(in Input, v pageView, mode string) ([]string, error) {
	out := make([]string, 0, len(v.Fields))
	for _, fv := range v.Fields {
		control := "input"
		if in.Rules.Enum(fv.Name) != nil {
			control = "select"
		}
		s, err := render("field."+control+"."+mode, fv)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", alerr.Wrap(alerr.ErrTemplate, err, "failed to render template").
			With("template", name)
	}
	return buf.String(), nil
}

// emit renders one artifact.
func emit(root Root, name string, data any, elem ...string) (Artifact, error) {
	content, err := render(name, data)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Root: root, Path: path.Join(elem...), Content: content}, nil
}
