package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/benkyo/internal/syllabus"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Browse the syllabus",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all topics (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		topics := syllabus.AllTopics()
		if category != "" {
			var filtered []syllabus.TopicRef
			for _, t := range topics {
				if strings.EqualFold(t.Category, category) {
					filtered = append(filtered, t)
				}
			}
			if len(filtered) == 0 {
				return fmt.Errorf("no topics found for category %q", category)
			}
			topics = filtered
		}

		// Header.
		fmt.Printf("%-28s  %-40s  %-16s  %s\n", "ID", "Title", "Category", "Sub-category")
		fmt.Println(strings.Repeat("─", 104))

		for _, t := range topics {
			title := t.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			fmt.Printf("%-28s  %-40s  %-16s  %s\n", t.ID, title, t.Category, t.SubCategory)
		}

		fmt.Printf("\n%d topics\n", len(topics))
		return nil
	},
}

func init() {
	topicsListCmd.Flags().String("category", "", "Filter by category name (e.g. Geography)")

	topicsCmd.AddCommand(topicsListCmd)
}
