package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/benkyo/internal/recommend"
	"github.com/abhisek/benkyo/internal/syllabus"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show what to study next",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return runRecommend(cmd, limit)
	},
}

func runRecommend(cmd *cobra.Command, limit int) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	records, err := d.Store.ProgressRepo().ListByUser(ctx, d.UserID)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	recs := recommend.Rank(syllabus.AllTopics(), records, time.Now(), limit)
	if len(recs) == 0 {
		fmt.Println("Nothing to recommend yet. Try: benkyo topics list")
		return nil
	}

	for i, r := range recs {
		fmt.Printf("%d. %s  [%s]\n", i+1, r.Title, r.Reason.DisplayName())
		fmt.Printf("   %s\n", r.ReasonText)
	}
	return nil
}

func init() {
	recommendCmd.Flags().Int("limit", 5, "Maximum number of recommendations")
}
