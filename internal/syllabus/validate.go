package syllabus

import (
	"fmt"
	"strings"
)

// validateSyllabus performs structural checks on a parsed syllabus.
// Returns a combined error describing all problems found, or nil if valid.
func validateSyllabus(s Syllabus) error {
	var errs []string

	idSet := make(map[string]bool)
	topicCount := 0

	for _, cat := range s.Categories {
		if cat.Name == "" {
			errs = append(errs, "category with empty name")
		}
		for _, sub := range cat.SubCategories {
			for _, subsub := range sub.SubSubCategories {
				for _, topic := range subsub.Topics {
					topicCount++
					if topic.ID == "" {
						errs = append(errs, fmt.Sprintf("topic with empty ID under %q", cat.Name))
						continue
					}
					if idSet[topic.ID] {
						errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", topic.ID))
					}
					idSet[topic.ID] = true
					if topic.Title == "" {
						errs = append(errs, fmt.Sprintf("topic %q has empty title", topic.ID))
					}
				}
			}
		}
	}

	if topicCount == 0 {
		errs = append(errs, "syllabus contains no topics")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid syllabus: %s", strings.Join(errs, "; "))
	}
	return nil
}
