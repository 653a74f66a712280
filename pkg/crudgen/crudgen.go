// Package crudgen provides the public API for the crudgen scaffolding tool.
// It resolves model definitions, infers validation rules from field names and
// column types, and writes CRUD artifacts plus route registrations into a
// Laravel-style project.
package crudgen

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/hlop3z/crudgen/internal/generator"
	"github.com/hlop3z/crudgen/internal/introspect"
	"github.com/hlop3z/crudgen/internal/model"
)

// Client is the main entry point for crudgen.
//
// Example:
//
//	client, err := crudgen.New(
//	    crudgen.WithDatabaseURL("postgres://localhost/shop"),
//	    crudgen.WithModelsDir("./models"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	res, err := client.Generate(ctx, "Product", crudgen.HTML)
type Client struct {
	db      *sql.DB
	dialect string
	config  *Config
	models  *model.Repository
	gen     *generator.Generator
}

// New creates a new Client with the given options.
//
// Without WithDatabaseURL the client runs offline and classifies fields from
// the column types declared in each model definition.
func New(opts ...Option) (*Client, error) {
	defaults := generator.DefaultLayout()
	cfg := &Config{
		ModelsDir:    "./models",
		AppDir:       defaults.AppDir,
		ResourcesDir: defaults.ResourcesDir,
		RoutesDir:    defaults.RoutesDir,
		Timeout:      30 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	c := &Client{
		config: cfg,
		models: model.NewRepository(cfg.ModelsDir),
	}

	var inspector introspect.Inspector
	if cfg.DatabaseURL != "" {
		db, dialect, err := connect(cfg)
		if err != nil {
			return nil, err
		}
		if inspector, err = introspect.New(db, dialect); err != nil {
			db.Close()
			return nil, err
		}
		c.db, c.dialect = db, dialect
		cfg.Logger.Debug("connected", "dialect", dialect, "url", introspect.RedactURL(cfg.DatabaseURL))
	}

	c.gen = generator.New(c.models, inspector, generator.Layout{
		AppDir:       cfg.AppDir,
		ResourcesDir: cfg.ResourcesDir,
		RoutesDir:    cfg.RoutesDir,
	}, cfg.Logger)

	return c, nil
}

func connect(cfg *Config) (*sql.DB, string, error) {
	db, dialect, err := introspect.Open(cfg.DatabaseURL, cfg.Dialect)
	if err != nil {
		return nil, dialect, &ConnectionError{
			URL:     introspect.RedactURL(cfg.DatabaseURL),
			Dialect: dialect,
			Cause:   err,
		}
	}

	// Introspection is a handful of short queries.
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, dialect, &ConnectionError{
			URL:     introspect.RedactURL(cfg.DatabaseURL),
			Dialect: dialect,
			Cause:   err,
		}
	}
	return db, dialect, nil
}

// Close closes the database connection, if any.
func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Dialect returns the database dialect name, or "" when offline.
func (c *Client) Dialect() string {
	return c.dialect
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return *c.config
}

// Models returns the names of all model definitions, sorted.
func (c *Client) Models() ([]string, error) {
	return c.models.List()
}

// context returns a context with the configured timeout.
func (c *Client) context(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.config.Timeout)
}
