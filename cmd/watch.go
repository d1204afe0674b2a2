package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abhisek/leetplan/internal/config"
	"github.com/abhisek/leetplan/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the daily plans and sync on every save",
	Long: "Watches the daily_plans directory and runs a sync pass whenever a plan\n" +
		"document is written. Stop with Ctrl-C.",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths(cmd)
		if err != nil {
			return err
		}
		return runWatch(paths)
	},
}

// debounceWindow coalesces the burst of write events editors emit on
// save into one sync pass.
const debounceWindow = 500 * time.Millisecond

func runWatch(paths config.Paths) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(paths.DailyPlans); err != nil {
		return fmt.Errorf("watch %s: %w", paths.DailyPlans, err)
	}
	fmt.Printf("Watching '%s' for plan edits. Press Ctrl-C to stop.\n", paths.DailyPlans)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isPlanWrite(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			if err := runSync(paths); err != nil {
				ui.Errorf("Sync failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ui.Errorf("Watcher error: %v", err)
		case <-stop:
			fmt.Println("\nStopped watching.")
			return nil
		}
	}
}

// isPlanWrite reports whether the event is a save of a plan document.
// Deletions are ignored: sync itself removes consumed plans, and
// reacting to those would loop.
func isPlanWrite(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return false
	}
	return strings.HasSuffix(filepath.Base(event.Name), ".md")
}
