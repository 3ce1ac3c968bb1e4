package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/abhisek/benkyo/internal/achievements"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session <minutes>",
	Short: "Log a study session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[0])
		if err != nil || minutes <= 0 {
			return fmt.Errorf("minutes must be a positive number: %q", args[0])
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := context.Background()
		if err := d.Stats.RecordSession(ctx, d.UserID, minutes*60); err != nil {
			return fmt.Errorf("record session: %w", err)
		}
		fmt.Printf("Logged %d minute(s) of study.\n", minutes)

		printEarned(d.Trigger.Fire(ctx, d.UserID, achievements.EventSessionEnded))
		return nil
	},
}
