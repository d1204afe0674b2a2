package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/leetplan/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "leetplan",
	Short: "Manage an adaptive LeetCode study plan",
	Long: "Leetplan schedules problems across days, generates editable daily plan\n" +
		"documents, and syncs your self-reported results back into an adaptive\n" +
		"spaced-repetition schedule.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("dir", "", "Journey directory (overrides LEETPLAN_HOME env var)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rebalanceCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolvePaths returns the journey layout using the --dir flag
// (highest priority), then LEETPLAN_HOME, then the working directory,
// and makes sure every subdirectory exists.
func resolvePaths(cmd *cobra.Command) (config.Paths, error) {
	flagValue, _ := cmd.Flags().GetString("dir")
	base, err := config.ResolveBase(flagValue)
	if err != nil {
		return config.Paths{}, err
	}
	paths := config.NewPaths(base)
	if err := paths.EnsureDirs(); err != nil {
		return config.Paths{}, err
	}
	return paths, nil
}
