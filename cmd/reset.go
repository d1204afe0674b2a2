package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/abhisek/leetplan/internal/config"
	"github.com/abhisek/leetplan/internal/state"
	"github.com/abhisek/leetplan/internal/ui"
	"github.com/abhisek/leetplan/internal/workspace"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Archive the current plan and reset the journey",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths(cmd)
		if err != nil {
			return err
		}
		return runReset(paths)
	},
}

func runReset(paths config.Paths) error {
	store := state.NewStore(paths.StateFile)
	if !store.Exists() {
		ui.Warnf("Nothing to reset. Run 'init' to start.")
		return nil
	}

	var confirmed bool
	confirm := huh.NewConfirm().
		Title("Are you sure you want to reset? This will archive your current progress.").
		Value(&confirmed)
	if err := confirm.Run(); err != nil {
		return err
	}
	if !confirmed {
		return errors.New("aborted")
	}

	timestamp := time.Now().Format("2006-01-02_150405")
	if err := store.Archive(paths.Archive, timestamp); err != nil {
		return err
	}
	if fileExists(paths.Dashboard) {
		dst := filepath.Join(paths.Archive, timestamp+"_dashboard.md")
		if err := os.Rename(paths.Dashboard, dst); err != nil {
			return fmt.Errorf("archive dashboard: %w", err)
		}
	}
	if err := clearDir(paths.DailyPlans); err != nil {
		return err
	}
	if err := workspace.Clean(paths.Workspace); err != nil {
		return err
	}

	ui.Successf("System has been reset.")
	fmt.Printf("Your previous state has been archived in '%s'.\n", paths.Archive)
	fmt.Println("Run 'init' to start a new journey.")
	return nil
}

func clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("clear %s: %w", dir, err)
		}
	}
	return nil
}
