package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/ui"
	"github.com/hlop3z/crudgen/pkg/crudgen"
)

// watchDebounce collapses the burst of events editors emit on save.
const watchDebounce = 150 * time.Millisecond

// watchCmd regenerates a model's CRUD whenever its definition changes.
func watchCmd() *cobra.Command {
	var api bool

	cmd := &cobra.Command{
		Use:   "watch <Name>",
		Short: "Regenerate whenever a model definition changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := loadClient()
			if err != nil {
				return err
			}
			defer client.Close()

			variant := crudgen.HTML
			if api {
				variant = crudgen.API
			}

			w := &modelWatcher{
				client:   client,
				name:     args[0],
				variant:  variant,
				dir:      cfg.ModelsDir,
				out:      cmd.OutOrStdout(),
				errOut:   cmd.ErrOrStderr(),
				debounce: watchDebounce,
			}
			return w.run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&api, "api", false, "Generate the API variant")
	return cmd
}

// modelWatcher reruns generation for one model. Runs happen on the watch
// loop itself, so they never overlap.
type modelWatcher struct {
	client   *crudgen.Client
	name     string
	variant  crudgen.Variant
	dir      string
	out      io.Writer
	errOut   io.Writer
	debounce time.Duration
}

func (mw *modelWatcher) run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return alerr.Wrap(alerr.EInternalError, err, "failed to start file watcher")
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save.
	if err := watcher.Add(mw.dir); err != nil {
		return alerr.Wrap(alerr.ErrConfig, err, "failed to watch models directory").
			WithPath(mw.dir)
	}

	mw.generate(ctx)

	fmt.Fprintln(mw.out, ui.RenderInfoPanel(TitleWatching,
		ui.FormatKeyValue("model", mw.name)+"\n"+
			ui.FormatKeyValue("directory", ui.FilePath(mw.dir))+"\n"+
			ui.Dim("Press Ctrl+C to stop")))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !mw.matches(event) {
				continue
			}
			slog.Debug("model changed", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(mw.debounce)
			} else {
				timer.Reset(mw.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			mw.generate(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "error", err)
		}
	}
}

// matches reports whether event touches the watched model's definition.
func (mw *modelWatcher) matches(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	return base == mw.name+".yaml" || base == mw.name+".yml"
}

// generate runs once and reports the outcome. Failures are printed, not
// returned, so the watch keeps going.
func (mw *modelWatcher) generate(ctx context.Context) {
	res, err := mw.client.Generate(ctx, mw.name, mw.variant)
	if err != nil {
		handleError(mw.errOut, err)
		return
	}
	printResult(mw.out, res)
}
