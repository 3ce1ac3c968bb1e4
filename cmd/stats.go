package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/benkyo/internal/syllabus"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		s, err := d.Stats.Stats(context.Background(), d.UserID)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		fmt.Printf("Current streak:   %d day(s)\n", s.TotalStudyDays)
		fmt.Printf("Topics completed: %d of %d\n", s.CompletedTopics, syllabus.TopicCount())
		fmt.Printf("Average score:    %.1f%%\n", s.AvgTestScore)
		fmt.Printf("Perfect scores:   %d\n", s.PerfectScoreCount)
		return nil
	},
}
