package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlop3z/crudgen/internal/cli"
	"github.com/hlop3z/crudgen/internal/ui"
)

// rulesCmd prints the inferred rule table of a model without writing.
func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules <Name>",
		Short: "Show the inferred validation rules of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := loadClient()
			if err != nil {
				return err
			}
			defer client.Close()

			rules, err := client.Rules(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if cli.Default().IsJSON() {
				return writeJSON(w, rules)
			}

			table := cli.NewTable("FIELD", "RULE", "OPTIONS")
			for _, r := range rules {
				options := strings.Join(r.Enum, ", ")
				if r.Default != "" {
					options += " (default " + r.Default + ")"
				}
				table.AddRow(r.Field, r.Rule, options)
			}
			fmt.Fprint(w, table.String())
			fmt.Fprintln(w, ui.Dim(ui.FormatCount(table.Len(), "field", "fields")))
			return nil
		},
	}
}
