package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/fsutil"
	"github.com/hlop3z/crudgen/internal/ui"
)

// initCmd writes crudgen.yaml and an example model. Existing files are kept.
func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create crudgen.yaml and the models directory with an example model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			list := ui.NewList()

			if err := os.MkdirAll(cfg.ModelsDir, fsutil.DirPerm); err != nil {
				return alerr.Wrap(alerr.ErrWriteFile, err, "failed to create models directory").
					WithPath(cfg.ModelsDir)
			}
			list.AddSuccess(cfg.ModelsDir + "/")

			files := []struct {
				path    string
				content string
			}{
				{configFile, configTemplate},
				{filepath.Join(cfg.ModelsDir, "Product.yaml"), exampleModel},
			}
			for _, f := range files {
				created, err := writeIfMissing(f.path, f.content)
				if err != nil {
					return err
				}
				if created {
					list.AddSuccess(f.path)
				} else {
					list.AddInfo(f.path + ui.Dim(" (exists, kept)"))
				}
			}

			content := list.String() + "\n\n" + ui.Dim("Next: crudgen rules Product")
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccessPanel(TitleProjectInitialized, content))
			return nil
		},
	}
}

// writeIfMissing writes content to path unless the file already exists.
func writeIfMissing(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := fsutil.WriteFileAtomic(path, []byte(content)); err != nil {
		return false, err
	}
	return true, nil
}
