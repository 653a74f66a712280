// Package generator runs one scaffolding pass: resolve the model, build its
// rule table, render every artifact in memory, then write the files and
// register the route.
package generator

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/fsutil"
	"github.com/hlop3z/crudgen/internal/introspect"
	"github.com/hlop3z/crudgen/internal/model"
	"github.com/hlop3z/crudgen/internal/routes"
	"github.com/hlop3z/crudgen/internal/rules"
	"github.com/hlop3z/crudgen/internal/scaffold"
)

// Variant selects which artifact set is generated.
type Variant string

// Variants.
const (
	VariantHTML Variant = "html"
	VariantAPI  Variant = "api"
)

// Layout locates the project directories generated files go into.
type Layout struct {
	AppDir       string
	ResourcesDir string
	RoutesDir    string
}

// DefaultLayout is the conventional Laravel layout relative to the working
// directory.
func DefaultLayout() Layout {
	return Layout{
		AppDir:       "./app",
		ResourcesDir: "./resources",
		RoutesDir:    "./routes",
	}
}

// RoutesFile returns the routes file a variant registers into.
func (l Layout) RoutesFile(v Variant) string {
	if v == VariantAPI {
		return filepath.Join(l.RoutesDir, "api.php")
	}
	return filepath.Join(l.RoutesDir, "web.php")
}

func (l Layout) rootDir(r scaffold.Root) string {
	if r == scaffold.RootResources {
		return l.ResourcesDir
	}
	return l.AppDir
}

// Resolver maps a model name to its descriptor.
type Resolver interface {
	Resolve(name string) (*model.Descriptor, error)
}

// Generator wires the model repository, schema inspector and output layout.
type Generator struct {
	models    Resolver
	inspector introspect.Inspector
	layout    Layout
	logger    *slog.Logger
}

// New creates a Generator. inspector may be nil, in which case only column
// types declared in the model definition are used. A nil logger uses
// slog.Default().
func New(models Resolver, inspector introspect.Inspector, layout Layout, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		models:    models,
		inspector: inspector,
		layout:    layout,
		logger:    logger,
	}
}

// PlannedFile is one file a run will write.
type PlannedFile struct {
	Path    string
	Content string

	// Overwrite is true when the file already exists.
	Overwrite bool
}

// Plan is everything a run will do, computed without touching disk.
type Plan struct {
	Model        *model.Descriptor
	Variant      Variant
	Rules        *rules.Table
	Files        []PlannedFile
	RoutesFile   string
	Route        routes.Declaration
	RouteOutcome routes.Outcome
}

// Result describes a completed run.
type Result struct {
	Plan         *Plan
	Written      []string
	RouteOutcome routes.Outcome
}

// Rules resolves a model and builds its rule table.
func (g *Generator) Rules(ctx context.Context, name string) (*model.Descriptor, *rules.Table, error) {
	desc, err := g.models.Resolve(name)
	if err != nil {
		return nil, nil, err
	}

	table, err := rules.Build(ctx, desc, g.schema(desc), rules.WithLogger(g.logger))
	if err != nil {
		return nil, nil, err
	}
	return desc, table, nil
}

// schema asks the live inspector first and falls back to the types declared
// by desc.
func (g *Generator) schema(desc *model.Descriptor) introspect.Inspector {
	declared := introspect.NewStatic(desc)
	if g.inspector == nil {
		return declared
	}
	return introspect.Chain{g.inspector, declared}
}

// Plan renders every artifact for name in memory.
func (g *Generator) Plan(ctx context.Context, name string, variant Variant) (*Plan, error) {
	desc, table, err := g.Rules(ctx, name)
	if err != nil {
		return nil, err
	}

	in := scaffold.Input{Name: desc.Name, Rules: table, Fields: desc.Fillable}

	var (
		artifacts []scaffold.Artifact
		route     routes.Declaration
	)
	switch variant {
	case VariantHTML:
		artifacts, err = scaffold.HTML(in)
		route = routes.Web(desc.Name)
	case VariantAPI:
		artifacts, err = scaffold.API(in)
		route = routes.API(desc.Name)
	default:
		return nil, alerr.New(alerr.EInternalError, "unknown variant").
			With("variant", string(variant))
	}
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Model:      desc,
		Variant:    variant,
		Rules:      table,
		RoutesFile: g.layout.RoutesFile(variant),
		Route:      route,
	}

	for _, a := range artifacts {
		p, err := fsutil.Join(g.layout.rootDir(a.Root), a.Path)
		if err != nil {
			return nil, err
		}
		_, statErr := os.Stat(p)
		plan.Files = append(plan.Files, PlannedFile{
			Path:      p,
			Content:   a.Content,
			Overwrite: statErr == nil,
		})
	}

	plan.RouteOutcome, err = routes.Preview(plan.RoutesFile, route)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// Apply writes a plan's files and registers its route. Existing files are
// overwritten. A failure part way leaves earlier files in place.
func (g *Generator) Apply(plan *Plan) (*Result, error) {
	res := &Result{Plan: plan}

	for _, f := range plan.Files {
		if err := fsutil.WriteFileAtomic(f.Path, []byte(f.Content)); err != nil {
			return res, err
		}
		g.logger.Debug("wrote file", "path", f.Path, "overwrite", f.Overwrite)
		res.Written = append(res.Written, f.Path)
	}

	outcome, err := routes.Register(plan.RoutesFile, plan.Route)
	if err != nil {
		return res, err
	}
	res.RouteOutcome = outcome

	g.logger.Info("generated crud",
		"model", plan.Model.Name,
		"variant", string(plan.Variant),
		"files", len(res.Written),
		"route", string(outcome),
	)
	return res, nil
}

// Run plans and applies generation for name.
func (g *Generator) Run(ctx context.Context, name string, variant Variant) (*Result, error) {
	plan, err := g.Plan(ctx, name, variant)
	if err != nil {
		return nil, err
	}
	return g.Apply(plan)
}
