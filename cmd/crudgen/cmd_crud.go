package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hlop3z/crudgen/internal/cli"
	"github.com/hlop3z/crudgen/internal/ui"
	"github.com/hlop3z/crudgen/pkg/crudgen"
)

// crudCmd generates the HTML CRUD for a model.
func crudCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "make:crud <Name>",
		Short:   "Generate requests, controller, views and web route for a model",
		Example: "  crudgen make:crud Product\n  crudgen make:crud Product --dry-run",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), args[0], crudgen.HTML, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")
	return cmd
}

// apiCrudCmd generates the JSON API CRUD for a model.
func apiCrudCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "make:simple-api-crud <Name>",
		Short:   "Generate API resource, requests, controller and api route for a model",
		Example: "  crudgen make:simple-api-crud Product",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), args[0], crudgen.API, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")
	return cmd
}

func runGenerate(ctx context.Context, w io.Writer, name string, variant crudgen.Variant, dryRun bool) error {
	_, client, err := loadClient()
	if err != nil {
		return err
	}
	defer client.Close()

	var opts []crudgen.GenerateOption
	if dryRun {
		opts = append(opts, crudgen.DryRun())
	}

	res, err := client.Generate(ctx, name, variant, opts...)
	if err != nil {
		return err
	}

	if cli.Default().IsJSON() {
		return writeJSON(w, res)
	}
	printResult(w, res)
	return nil
}

// printResult reports a generation run.
func printResult(w io.Writer, res *crudgen.Result) {
	if res.DryRun {
		fmt.Fprint(w, cli.FormatNote(MsgDryRun))
	} else {
		msg := MsgCRUDGenerated
		if res.Variant == crudgen.API {
			msg = MsgAPIGenerated
		}
		fmt.Fprint(w, cli.FormatSuccess(fmt.Sprintf(msg, res.Model)))
	}
	fmt.Fprintln(w)

	list := ui.NewList()
	overwritten := 0
	for _, f := range res.Files {
		if f.Overwrite {
			list.AddWarning(f.Path + ui.Dim(" (overwritten)"))
			overwritten++
		} else {
			list.AddSuccess(f.Path)
		}
	}
	fmt.Fprintln(w, list.String())
	fmt.Fprintln(w)

	fmt.Fprintln(w, ui.FormatKeyValue("route", fmt.Sprintf("%s %s", res.Route, ui.Dim("("+res.RouteOutcome+")"))))
	fmt.Fprintln(w, ui.FormatKeyValue("routes file", ui.FilePath(res.RoutesFile)))
	fmt.Fprintln(w, ui.Dim(ui.FormatCount(list.Len(), "file", "files")))

	if overwritten > 0 {
		verb := "will be"
		if !res.DryRun {
			verb = "were"
		}
		fmt.Fprint(w, cli.FormatWarning(fmt.Sprintf("%s %s overwritten",
			ui.FormatCount(overwritten, "existing file", "existing files"), verb)))
	}
}
