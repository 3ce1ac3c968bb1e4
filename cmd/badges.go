package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/benkyo/internal/achievements"
	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned and available achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		earned, err := d.Store.AwardStore().ListEarned(context.Background(), d.UserID)
		if err != nil {
			return fmt.Errorf("list earned: %w", err)
		}
		earnedAt := make(map[string]string, len(earned))
		for _, e := range earned {
			earnedAt[e.Key] = e.EarnedAt.Format("2006-01-02")
		}

		catalog := achievements.DefaultCatalog()
		var lastCategory achievements.Category
		for _, def := range catalog.All() {
			if def.Category != lastCategory {
				fmt.Printf("\n%s\n", def.Category.DisplayName())
				fmt.Println(strings.Repeat("─", len(def.Category.DisplayName())))
				lastCategory = def.Category
			}
			mark := " "
			suffix := ""
			if at, ok := earnedAt[def.Key]; ok {
				mark = "✓"
				suffix = "  (earned " + at + ")"
			}
			fmt.Printf("[%s] %-22s %s%s\n", mark, def.Name, def.Description, suffix)
		}

		fmt.Printf("\n%d of %d earned\n", len(earned), catalog.Len())
		return nil
	},
}
