package syllabus

// Topic is the smallest unit of curriculum content. Each topic carries an
// explanation, a flashcard set, and a quiz; the core never looks inside
// those, it only tracks completion against the topic ID.
type Topic struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Keywords []string `json:"keywords,omitempty"`
}

// SubSubCategory is the innermost grouping level above topics.
type SubSubCategory struct {
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
}

// SubCategory groups sub-sub-categories.
type SubCategory struct {
	Name             string           `json:"name"`
	SubSubCategories []SubSubCategory `json:"sub_sub_categories"`
}

// Category is the top grouping level of the curriculum.
type Category struct {
	Name          string        `json:"name"`
	SubCategories []SubCategory `json:"sub_categories"`
}

// Syllabus is the full fixed curriculum. Document order matters: the
// recommendation ranker breaks ties by position in this tree.
type Syllabus struct {
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// TopicRef is a topic together with its position in the tree.
type TopicRef struct {
	Topic
	Category       string
	SubCategory    string
	SubSubCategory string
	DocIndex       int // 0-based position in document order
}
