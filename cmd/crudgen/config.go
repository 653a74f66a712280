package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/pkg/crudgen"
)

// Config represents the crudgen.yaml configuration file.
type Config struct {
	DatabaseURL  string `yaml:"database_url"`
	Dialect      string `yaml:"dialect"`
	ModelsDir    string `yaml:"models_dir"`
	AppDir       string `yaml:"app_dir"`
	ResourcesDir string `yaml:"resources_dir"`
	RoutesDir    string `yaml:"routes_dir"`
}

// loadConfig loads configuration from file, env vars, and CLI flags.
// Precedence: CLI flags > env vars > config file > defaults
func loadConfig() (*Config, error) {
	cfg := &Config{
		ModelsDir:    DefaultModelsDir,
		AppDir:       "./app",
		ResourcesDir: "./resources",
		RoutesDir:    "./routes",
	}

	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, alerr.Wrap(alerr.ErrConfig, err, "failed to parse config file").
				WithPath(configFile)
		}
		cfg.DatabaseURL = expandEnvVars(cfg.DatabaseURL)
	case !errors.Is(err, fs.ErrNotExist):
		return nil, alerr.Wrap(alerr.ErrConfig, err, "failed to read config file").
			WithPath(configFile)
	}

	envOverrides := []struct {
		key    string
		target *string
	}{
		{"DATABASE_URL", &cfg.DatabaseURL},
		{"CRUDGEN_MODELS_DIR", &cfg.ModelsDir},
		{"CRUDGEN_APP_DIR", &cfg.AppDir},
		{"CRUDGEN_RESOURCES_DIR", &cfg.ResourcesDir},
		{"CRUDGEN_ROUTES_DIR", &cfg.RoutesDir},
	}
	for _, o := range envOverrides {
		if v := os.Getenv(o.key); v != "" {
			*o.target = v
		}
	}

	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if modelsDir != "" {
		cfg.ModelsDir = modelsDir
	}

	return cfg, nil
}

// expandEnvVars expands ${VAR} patterns in a string.
func expandEnvVars(s string) string {
	return os.Expand(s, os.Getenv)
}

// newClient creates a crudgen client from the loaded config.
func newClient(cfg *Config) (*crudgen.Client, error) {
	opts := []crudgen.Option{
		crudgen.WithModelsDir(cfg.ModelsDir),
		crudgen.WithAppDir(cfg.AppDir),
		crudgen.WithResourcesDir(cfg.ResourcesDir),
		crudgen.WithRoutesDir(cfg.RoutesDir),
		crudgen.WithLogger(slog.Default()),
	}

	if cfg.DatabaseURL != "" {
		opts = append(opts, crudgen.WithDatabaseURL(cfg.DatabaseURL))
	}
	if cfg.Dialect != "" {
		opts = append(opts, crudgen.WithDialect(cfg.Dialect))
	}

	return crudgen.New(opts...)
}

// loadClient loads config and connects in one step.
func loadClient() (*Config, *crudgen.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}
