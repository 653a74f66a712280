package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hlop3z/crudgen/internal/cli"
	"github.com/hlop3z/crudgen/internal/ui"
	"github.com/hlop3z/crudgen/pkg/crudgen"
)

// handleError prints err with the most helpful message available.
func handleError(w io.Writer, err error) {
	var (
		notFound *crudgen.ModelNotFoundError
		noFields *crudgen.NoWritableFieldsError
		connErr  *crudgen.ConnectionError
	)

	switch {
	case errors.As(err, &notFound):
		printHelp(w, "model_not_found", notFound.Model, currentModelsDir())
		if notFound.Suggestion != "" {
			fmt.Fprintln(w)
			fmt.Fprint(w, cli.FormatHelp(fmt.Sprintf("did you mean '%s'?", notFound.Suggestion)))
		}

	case errors.As(err, &noFields):
		printHelp(w, "no_fillable_fields", noFields.Model)

	case errors.As(err, &connErr):
		printConnectionError(w, connErr)

	default:
		fmt.Fprint(w, cli.FormatError(err))
	}
}

// printConnectionError prints a helpful error message for database connection failures.
func printConnectionError(w io.Writer, connErr *crudgen.ConnectionError) {
	details := strings.Join([]string{
		ui.FormatKeyValue("dialect", connErr.Dialect),
		ui.FormatKeyValue("url", connErr.URL),
		ui.FormatKeyValue("cause", fmt.Sprint(connErr.Cause)),
	}, "\n")
	fmt.Fprintln(w, ui.RenderErrorPanel("Failed to connect to database", details))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Troubleshooting:")

	cause := ""
	if connErr.Cause != nil {
		cause = connErr.Cause.Error()
	}
	fmt.Fprintln(w, ui.Indent(strings.Join(getConnectionHelp(connErr.Dialect, cause), "\n"), 2))
}

// currentModelsDir reports the configured models directory for messages.
func currentModelsDir() string {
	cfg, err := loadConfig()
	if err != nil {
		return DefaultModelsDir
	}
	return cfg.ModelsDir
}
