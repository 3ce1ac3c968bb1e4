package cmd

import (
	"github.com/abhisek/benkyo/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "benkyo",
	Short: "Terminal study companion",
	Long:  "Benkyo — terminal study companion that tracks topic progress, schedules flashcard reviews, and recommends what to study next.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecommend(cmd, 5)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BENKYO_DB env var)")
	rootCmd.PersistentFlags().String("log", "off", "Logging mode: off, dev, or prod")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BENKYO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
