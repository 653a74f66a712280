package model

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/strutil"
)

// definitionExts are the file extensions a model definition may use, in
// lookup order.
var definitionExts = []string{".yaml", ".yml"}

// definition is the on-disk shape of a model file.
//
//	table: products
//	fillable: [name, price, status, category_id]
//	enums:
//	  status:
//	    values: [draft, published]
//	    default: draft
//	columns:
//	  price: decimal
type definition struct {
	Table    string              `yaml:"table"`
	Fillable []string            `yaml:"fillable"`
	Enums    map[string]EnumMeta `yaml:"enums"`
	Columns  map[string]string   `yaml:"columns"`
}

// Repository resolves model names to descriptors from a directory holding
// one <Name>.yaml file per model.
type Repository struct {
	dir string
}

// NewRepository returns a repository reading from dir.
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// Dir returns the models directory.
func (r *Repository) Dir() string {
	return r.dir
}

// Path returns the definition file for name. When no file exists the
// .yaml path is returned.
func (r *Repository) Path(name string) string {
	for _, ext := range definitionExts {
		p := filepath.Join(r.dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(r.dir, name+definitionExts[0])
}

// Resolve reads and validates the definition for name.
// It returns ErrInvalidModelName for names that are not identifiers,
// ErrModelNotFound when no definition exists and ErrModelInvalid when the
// file cannot be parsed.
func (r *Repository) Resolve(name string) (*Descriptor, error) {
	if !strutil.IsIdentifier(name) {
		return nil, alerr.New(alerr.ErrInvalidModelName, "model name must be an identifier").
			WithModel(name).
			WithHelp("model names look like 'Product' or 'OrderLine'")
	}

	path := r.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e := alerr.New(alerr.ErrModelNotFound, "model does not exist").
				WithModel(name).
				WithPath(path)
			if names, listErr := r.List(); listErr == nil {
				if match, ok := alerr.FindClosestMatch(name, names); ok {
					e.With("suggestion", match).
						WithHelp(alerr.SuggestSimilar(name, names))
				}
			}
			return nil, e
		}
		return nil, alerr.Wrap(alerr.ErrModelInvalid, err, "failed to read model definition").
			WithModel(name).
			WithPath(path)
	}

	return Parse(name, data, path)
}

// Parse builds a descriptor from the YAML definition of model name.
// path is only used for error context.
func Parse(name string, data []byte, path string) (*Descriptor, error) {
	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, alerr.Wrap(alerr.ErrModelInvalid, err, "failed to parse model definition").
			WithModel(name).
			WithPath(path)
	}

	desc := &Descriptor{
		Name:     name,
		Table:    strings.TrimSpace(def.Table),
		Fillable: make([]string, 0, len(def.Fillable)),
		Enums:    def.Enums,
	}
	if desc.Table == "" {
		desc.Table = strutil.TableName(name)
	}

	seen := make(map[string]bool, len(def.Fillable))
	for _, field := range def.Fillable {
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, alerr.New(alerr.ErrModelInvalid, "fillable field name cannot be empty").
				WithModel(name).
				WithPath(path)
		}
		if !strutil.IsIdentifier(field) {
			return nil, alerr.New(alerr.ErrModelInvalid, "fillable field name must be an identifier").
				WithModel(name).
				WithPath(path).
				With("field", field).
				WithHelp("field names look like 'price' or 'category_id'")
		}
		if seen[field] {
			return nil, alerr.New(alerr.ErrModelInvalid, "fillable field declared twice").
				WithModel(name).
				WithPath(path).
				With("field", field)
		}
		seen[field] = true
		desc.Fillable = append(desc.Fillable, field)
	}

	for field, meta := range desc.Enums {
		if !strutil.IsIdentifier(field) {
			return nil, alerr.New(alerr.ErrModelInvalid, "enum field name must be an identifier").
				WithModel(name).
				WithPath(path).
				With("field", field)
		}
		if len(meta.Values) == 0 {
			return nil, alerr.New(alerr.ErrModelInvalid, "enum must declare at least one value").
				WithModel(name).
				WithPath(path).
				With("field", field)
		}
	}

	if len(def.Columns) > 0 {
		desc.Columns = make(map[string]ColumnType, len(def.Columns))
		for field, typ := range def.Columns {
			desc.Columns[field] = ParseColumnType(typ)
		}
	}

	return desc, nil
}

// List returns the names of all model definitions, sorted.
// A missing directory yields no names.
func (r *Repository) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, alerr.Wrap(alerr.ErrModelInvalid, err, "failed to read models directory").
			WithPath(r.dir)
	}

	seen := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !slices.Contains(definitionExts, ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if !strutil.IsIdentifier(name) || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
