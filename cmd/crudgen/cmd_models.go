package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlop3z/crudgen/internal/cli"
	"github.com/hlop3z/crudgen/internal/ui"
)

// modelsCmd lists the model definitions crudgen can resolve.
func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List model definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := loadClient()
			if err != nil {
				return err
			}
			defer client.Close()

			names, err := client.Models()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if cli.Default().IsJSON() {
				if names == nil {
					names = []string{}
				}
				return writeJSON(w, names)
			}
			if len(names) == 0 {
				fmt.Fprintln(w, ui.RenderWarningPanel("No Models",
					fmt.Sprintf(MsgNoModels, cfg.ModelsDir)+"\n\n"+
						strings.TrimSuffix(cli.FormatHelp("run 'crudgen init' to create an example model"), "\n")))
				return nil
			}

			list := ui.NewList()
			for _, name := range names {
				list.Add(name)
			}
			fmt.Fprintln(w, ui.Section("Models", list.String()))
			fmt.Fprintln(w, ui.Dim(ui.FormatCount(len(names), "model", "models")+" in "+cfg.ModelsDir))
			return nil
		},
	}
}
