package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the simulator script when a preset file changes",
		Long: `Generate the simulator script once, then watch the preset file and
regenerate --out every time it is saved.

The preset file is taken from --file, from --preset when it names a file,
or from the preset setting in enginegen.yaml. Errors in the preset are
reported and watching continues. Press Ctrl-C to stop.`,
		Example: `  enginegen watch -f engine.star --out engine.mr`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cc := NewCommandContext(cmd)
			return runWatch(ctx, cmd.Flags(), cc, opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVar(&opts.Fuel, "fuel", "", "Fuel type (overrides config)")
	cmd.Flags().StringVarP(&opts.Out, "out", "O", "", "Output file")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// watchedFile returns the preset file a watch session follows.
func watchedFile(src *sourceFlags, preset string) (string, error) {
	ref := src.file
	if ref == "" {
		ref = src.preset
	}
	if ref == "" && src.cylinders == 0 {
		ref = preset
	}
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".yaml", ".yml", ".star":
		return filepath.Abs(ref)
	}
	return "", errors.New("watch needs a preset file: use --file or set preset in enginegen.yaml")
}

func runWatch(ctx context.Context, flags *pflag.FlagSet, cc *CommandContext, opts *GenerateOptions) error {
	if opts.Out == "" {
		return errors.New("watch requires --out")
	}
	path, err := watchedFile(&opts.source, cc.Cfg.Preset)
	if err != nil {
		return err
	}
	if opts.source.file == "" && opts.source.preset == "" {
		opts.source.file = path
	}

	regenerate := func() {
		if err := runGenerate(ctx, flags, cc, opts); err != nil {
			cc.Logger.Warn("regeneration failed", "file", path, "error", err)
			cc.Renderer.Error(err.Error())
		}
	}
	regenerate()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	// Watch the directory: editors often save by renaming over the file.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	cc.Renderer.Muted(fmt.Sprintf("Watching %s (Ctrl-C to stop)", path))

	return watchLoop(ctx, w, path, watchDebounce, regenerate, cc.Logger)
}

// watchLoop calls fn once per burst of changes to path, after the events
// have been quiet for delay. It returns when ctx is done or the watcher
// is closed.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, delay time.Duration, fn func(), logger *slog.Logger) error {
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

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || (!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug("preset changed", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)

		case <-fire:
			fire = nil
			fn()
		}
	}
}
