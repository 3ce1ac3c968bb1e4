package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/abhisek/benkyo/internal/achievements"
	"github.com/abhisek/benkyo/internal/progress"
	"github.com/abhisek/benkyo/internal/syllabus"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit <topic-id> <score>",
	Short: "Record a quiz score for a topic",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := syllabus.GetTopic(args[0])
		if err != nil {
			return err
		}
		score, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("score must be a number: %q", args[1])
		}
		questions, _ := cmd.Flags().GetInt("questions")
		correct, _ := cmd.Flags().GetInt("correct")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := context.Background()
		p, err := d.Progress.SubmitQuiz(ctx, d.UserID, t.ID, score, questions, correct)
		if err != nil {
			var inv *progress.ErrInvalidScore
			if errors.As(err, &inv) {
				return fmt.Errorf("score must be between 0 and 100, got %d", score)
			}
			return fmt.Errorf("submit quiz: %w", err)
		}

		fmt.Printf("Recorded %d%% on %s (best %d%%, average %.1f%% over %d tests)\n",
			score, t.Title, p.BestScore, p.AverageScore, p.TotalTestsTaken)

		newly := d.Trigger.Fire(ctx, d.UserID, achievements.EventQuizSubmitted)
		if p.Completed() {
			fmt.Printf("Topic completed: %s\n", t.Title)
			newly = append(newly, d.Trigger.Fire(ctx, d.UserID, achievements.EventTopicCompleted)...)
		}
		printEarned(newly)
		return nil
	},
}

func printEarned(defs []achievements.Definition) {
	for _, def := range defs {
		fmt.Printf("\U0001f3c6 Achievement unlocked: %s (%s)\n", def.Name, def.Description)
	}
}

func init() {
	submitCmd.Flags().Int("questions", 10, "Number of questions in the quiz")
	submitCmd.Flags().Int("correct", 0, "Number of correct answers")
}
