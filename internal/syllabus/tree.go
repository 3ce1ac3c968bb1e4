package syllabus

import (
	"fmt"
	"slices"
)

// tree holds the flattened curriculum with precomputed indices.
type tree struct {
	syllabus Syllabus
	topics   []TopicRef
	byID     map[string]*TopicRef
}

// t is the package-level tree singleton, set by init() in load.go from the
// embedded default syllabus, and replaced by LoadFile.
var t *tree

// buildTree flattens the syllabus in document order and builds the ID index.
func buildTree(s Syllabus) *tree {
	tr := &tree{syllabus: s}

	idx := 0
	for _, cat := range s.Categories {
		for _, sub := range cat.SubCategories {
			for _, subsub := range sub.SubSubCategories {
				for _, topic := range subsub.Topics {
					tr.topics = append(tr.topics, TopicRef{
						Topic:          topic,
						Category:       cat.Name,
						SubCategory:    sub.Name,
						SubSubCategory: subsub.Name,
						DocIndex:       idx,
					})
					idx++
				}
			}
		}
	}

	tr.byID = make(map[string]*TopicRef, len(tr.topics))
	for i := range tr.topics {
		tr.byID[tr.topics[i].ID] = &tr.topics[i]
	}

	return tr
}

// AllTopics returns every topic in curriculum document order.
func AllTopics() []TopicRef {
	return slices.Clone(t.topics)
}

// GetTopic returns a topic by ID, or an error if not found.
func GetTopic(id string) (TopicRef, error) {
	ref, ok := t.byID[id]
	if !ok {
		return TopicRef{}, fmt.Errorf("topic not found: %q", id)
	}
	return *ref, nil
}

// TopicCount returns the number of topics in the curriculum.
func TopicCount() int {
	return len(t.topics)
}

// Current returns the loaded syllabus.
func Current() Syllabus {
	return t.syllabus
}
