package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/benkyo/internal/spacedrep"
	"github.com/abhisek/benkyo/internal/syllabus"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Flashcard review scheduling",
}

var reviewDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List flashcards due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		due, err := d.Scheduler.DueCards(context.Background(), d.UserID)
		if err != nil {
			return fmt.Errorf("due cards: %w", err)
		}
		if len(due) == 0 {
			fmt.Println("No flashcards due. Nice work.")
			return nil
		}

		// Header.
		fmt.Printf("%-28s  %-20s  %-10s  %s\n", "Topic", "Card", "Interval", "Due since")
		fmt.Println(strings.Repeat("─", 76))

		for _, r := range due {
			fmt.Printf("%-28s  %-20s  %7dd   %s\n",
				r.TopicID, r.FlashcardID, r.IntervalDays,
				r.NextReviewDate.Format("2006-01-02"))
		}
		fmt.Printf("\n%d cards due\n", len(due))
		return nil
	},
}

var reviewRecordCmd = &cobra.Command{
	Use:   "record <topic-id> <card-id> <confidence>",
	Short: "Record a flashcard review (confidence 1-4)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := syllabus.GetTopic(args[0])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("confidence must be a number: %q", args[2])
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		rev, err := d.Scheduler.RecordReview(context.Background(), d.UserID, t.ID, args[1], spacedrep.Confidence(n))
		if err != nil {
			var inv *spacedrep.ErrInvalidConfidence
			if errors.As(err, &inv) {
				return fmt.Errorf("confidence must be between 1 and 4, got %d", n)
			}
			return fmt.Errorf("record review: %w", err)
		}

		fmt.Printf("Next review of %s/%s in %d day(s), on %s\n",
			t.ID, rev.FlashcardID, rev.IntervalDays,
			rev.NextReviewDate.Format("2006-01-02"))
		if days := rev.DaysUntilReview(time.Now()); days == 0 {
			fmt.Println("(already due)")
		}
		return nil
	},
}

func init() {
	reviewCmd.AddCommand(reviewDueCmd)
	reviewCmd.AddCommand(reviewRecordCmd)
}
