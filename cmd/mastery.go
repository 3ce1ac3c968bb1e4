package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/benkyo/internal/mastery"
	"github.com/abhisek/benkyo/internal/progress"
	"github.com/abhisek/benkyo/internal/syllabus"
	"github.com/spf13/cobra"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery [topic-id]",
	Short: "Show mastery per topic",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := context.Background()

		if len(args) == 1 {
			return printTopicMastery(ctx, d, args[0])
		}

		records, err := d.Store.ProgressRepo().ListByUser(ctx, d.UserID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		byTopic := make(map[string]*progress.Progress, len(records))
		for _, p := range records {
			byTopic[p.TopicID] = p
		}

		// Header.
		fmt.Printf("%-28s  %-12s  %5s  %5s  %s\n", "Topic", "Tier", "Level", "Tests", "Avg")
		fmt.Println(strings.Repeat("─", 64))

		for _, t := range syllabus.AllTopics() {
			s := mastery.Summarize(t.ID, byTopic[t.ID])
			fmt.Printf("%-28s  %-12s  %4d%%  %5d  %.0f%%\n",
				t.ID, s.Tier.DisplayName(), s.Level, s.TotalTestsTaken, s.AverageScore)
		}
		return nil
	},
}

func printTopicMastery(ctx context.Context, d *deps, topicID string) error {
	t, err := syllabus.GetTopic(topicID)
	if err != nil {
		return err
	}
	p, err := d.Store.ProgressRepo().Get(ctx, d.UserID, t.ID)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	s := mastery.Summarize(t.ID, p)
	fmt.Println(t.Title)
	fmt.Println(strings.Repeat("─", len(t.Title)))
	fmt.Printf("Tier:          %s\n", s.Tier.DisplayName())
	fmt.Printf("Level:         %d%%\n", s.Level)
	fmt.Printf("Completions:   %d\n", s.TotalCompletions)
	if p != nil {
		fmt.Printf("Best score:    %d%%\n", p.BestScore)
		fmt.Printf("Average score: %.1f%%\n", p.AverageScore)
		fmt.Printf("Tests taken:   %d\n", p.TotalTestsTaken)
		fmt.Printf("Completed:     %v\n", p.Completed())
	}
	return nil
}
