// Package main provides the CLI for crudgen, a CRUD scaffolding generator for
// Laravel-style applications. It reads a model definition, infers validation
// rules from field names and column types, and writes requests, controllers,
// views and route registrations.
//
// Usage:
//
//	crudgen init                          # Create crudgen.yaml and models/
//	crudgen models                        # List model definitions
//	crudgen rules <Name>                  # Show inferred validation rules
//	crudgen make:crud <Name>              # Generate the HTML CRUD
//	crudgen make:simple-api-crud <Name>   # Generate the JSON API CRUD
//	crudgen watch <Name> [--api]          # Regenerate on model changes
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// Global flags
var (
	configFile  string
	databaseURL string
	modelsDir   string
	verbose     bool
	jsonOutput  bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "crudgen",
		Short:         "CRUD scaffolding generator",
		Long:          `crudgen generates validation requests, controllers, views and routes for an existing model, inferring rules from field names and column types.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr())
			setupOutput()
		},
	}

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			defaultHelp(cmd, args)
			return
		}
		customHelp(cmd.OutOrStdout())
	})

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", DefaultConfigFile, "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&databaseURL, "database-url", "d", "", "Database connection URL")
	rootCmd.PersistentFlags().StringVar(&modelsDir, "models-dir", "", "Model definitions directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print machine-readable JSON")

	rootCmd.AddCommand(
		initCmd(),
		modelsCmd(),
		rulesCmd(),
		crudCmd(),
		apiCrudCmd(),
		watchCmd(),
	)

	return rootCmd
}

// setupLogger installs the process-wide structured logger.
func setupLogger(w io.Writer) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		handleError(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
