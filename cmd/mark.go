package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/benkyo/internal/achievements"
	"github.com/abhisek/benkyo/internal/progress"
	"github.com/abhisek/benkyo/internal/syllabus"
	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark <topic-id> <lesson|flashcards>",
	Short: "Mark a topic's lesson or flashcard set as completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := syllabus.GetTopic(args[0])
		if err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		return runMark(context.Background(), d, t, args[1])
	},
}

// runMark records the lesson or flashcard completion and, when that was the
// topic's last missing piece, fires the topic-completed event so achievements
// depending on it are evaluated.
func runMark(ctx context.Context, d *deps, t syllabus.TopicRef, part string) error {
	var p *progress.Progress
	switch part {
	case "lesson":
		rec, err := d.Progress.MarkExplanation(ctx, d.UserID, t.ID)
		if err != nil {
			return fmt.Errorf("mark lesson: %w", err)
		}
		fmt.Printf("Lesson completed: %s\n", t.Title)
		p = rec
	case "flashcards":
		rec, err := d.Progress.MarkFlashcard(ctx, d.UserID, t.ID)
		if err != nil {
			return fmt.Errorf("mark flashcards: %w", err)
		}
		fmt.Printf("Flashcards completed: %s\n", t.Title)
		p = rec
	default:
		return fmt.Errorf("unknown part %q, want lesson or flashcards", part)
	}

	if p.Completed() {
		fmt.Printf("Topic completed: %s\n", t.Title)
		printEarned(d.Trigger.Fire(ctx, d.UserID, achievements.EventTopicCompleted))
	}
	return nil
}
