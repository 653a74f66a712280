package crudgen

import (
	"context"

	"github.com/hlop3z/crudgen/internal/generator"
	"github.com/hlop3z/crudgen/internal/rules"
)

// Variant selects the artifact set to generate.
type Variant string

// Variants.
const (
	// HTML generates requests, a resource controller and blade views, and
	// registers a web route.
	HTML Variant = Variant(generator.VariantHTML)

	// API generates an API resource, requests and controller, and registers
	// an API route.
	API Variant = Variant(generator.VariantAPI)
)

// FieldRule is the inferred validation rule of one fillable field.
type FieldRule struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`

	// Enum lists the allowed values of an enumeration field.
	Enum []string `json:"enum,omitempty"`

	// Default is the pre-selected enumeration value, if declared.
	Default string `json:"default,omitempty"`
}

// File is one generated file.
type File struct {
	Path string `json:"path"`

	// Overwrite is true when the file existed before the run.
	Overwrite bool `json:"overwrite"`
}

// Result describes a generation run.
type Result struct {
	Model   string  `json:"model"`
	Variant Variant `json:"variant"`
	Files   []File  `json:"files"`

	RoutesFile string `json:"routes_file"`
	Route      string `json:"route"`

	// RouteOutcome is "added", "replaced" or "unchanged".
	RouteOutcome string `json:"route_outcome"`

	// DryRun is true when nothing was written.
	DryRun bool `json:"dry_run"`
}

// Rules infers the validation rule of every fillable field of a model, in
// declared order. Nothing is written.
func (c *Client) Rules(ctx context.Context, name string) ([]FieldRule, error) {
	ctx, cancel := c.context(ctx)
	defer cancel()

	_, table, err := c.gen.Rules(ctx, name)
	if err != nil {
		return nil, convertError(name, err)
	}
	return fieldRules(table), nil
}

// Generate writes every artifact of variant for the model and registers its
// route. Artifacts are overwritten; the route is never duplicated.
// With DryRun the result describes what would happen and nothing is written.
func (c *Client) Generate(ctx context.Context, name string, variant Variant, opts ...GenerateOption) (*Result, error) {
	cfg := applyGenerateOptions(opts)

	if variant != HTML && variant != API {
		return nil, ErrUnknownVariant
	}

	ctx, cancel := c.context(ctx)
	defer cancel()

	plan, err := c.gen.Plan(ctx, name, generator.Variant(variant))
	if err != nil {
		return nil, convertError(name, err)
	}

	res := &Result{
		Model:        plan.Model.Name,
		Variant:      variant,
		RoutesFile:   plan.RoutesFile,
		Route:        plan.Route.String(),
		RouteOutcome: string(plan.RouteOutcome),
		DryRun:       cfg.DryRun,
	}
	for _, f := range plan.Files {
		res.Files = append(res.Files, File{Path: f.Path, Overwrite: f.Overwrite})
	}
	if cfg.DryRun {
		return res, nil
	}

	applied, err := c.gen.Apply(plan)
	if err != nil {
		return nil, err
	}
	res.RouteOutcome = string(applied.RouteOutcome)
	return res, nil
}

// Preview renders the artifacts of variant in memory and returns them keyed
// by destination path. Nothing is written.
func (c *Client) Preview(ctx context.Context, name string, variant Variant) (map[string]string, error) {
	if variant != HTML && variant != API {
		return nil, ErrUnknownVariant
	}

	ctx, cancel := c.context(ctx)
	defer cancel()

	plan, err := c.gen.Plan(ctx, name, generator.Variant(variant))
	if err != nil {
		return nil, convertError(name, err)
	}

	out := make(map[string]string, len(plan.Files))
	for _, f := range plan.Files {
		out[f.Path] = f.Content
	}
	return out, nil
}

func fieldRules(table *rules.Table) []FieldRule {
	out := make([]FieldRule, 0, table.Len())
	for _, e := range table.Entries() {
		fr := FieldRule{Field: e.Field, Rule: e.Rule.String()}
		if e.Enum != nil {
			fr.Enum = e.Enum.Values
			if e.Enum.Default != nil {
				fr.Default = *e.Enum.Default
			}
		}
		out = append(out, fr)
	}
	return out
}
