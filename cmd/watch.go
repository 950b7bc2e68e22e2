package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"shrink/internal/builder"
	"shrink/internal/ui"
)

const debounce = 100 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Watch for changes and minify again",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		b, err := newBuilder(cmd, args)
		if err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}

		ui.PrintHeader(Version)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := watch(ctx, b); err != nil {
			ui.PrintError("Watch failed: %v", err)
			os.Exit(1)
		}
	},
}

// watch runs a build, then rebuilds after every burst of changes to a source
// file in the CSS or JS directory until ctx is cancelled
func watch(ctx context.Context, b *builder.Builder) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, dir := range []string{b.Config.CSSDir, b.Config.JSDir} {
		path := b.Config.ResolveDir(dir)
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			ui.PrintWarning("Skipping %s: not a directory", path)
			continue
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("nothing to watch under %s", b.Config.Root)
	}

	rebuild := func() {
		if _, err := b.Build(); err != nil {
			ui.PrintError("Minification failed: %v", err)
		}
		fmt.Println()
		ui.PrintInfo("Watching for changes...")
	}

	rebuild()
	ui.PrintInfo("Press Ctrl+C to stop")

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			ui.PrintInfo("Stopped watching")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !builder.IsSource(event.Name) {
				continue
			}
			if !b.Quiet {
				ui.PrintInfo("Change detected: %s", filepath.Base(event.Name))
			}
			timer.Reset(debounce)

		case <-timer.C:
			fmt.Println()
			rebuild()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ui.PrintWarning("Watcher error: %v", err)
		}
	}
}
