package mastery

import "github.com/abhisek/benkyo/internal/progress"

// Tier is the coarse mastery label derived purely from repetition count.
// It is independent of the 0-100 mastery level: tier measures repetition,
// level measures completeness.
type Tier int

const (
	TierUntrained Tier = iota
	TierBeginner
	TierIntermediate
	TierAdvanced
	TierMaster
)

// Label returns the machine-readable tier name.
func (t Tier) Label() string {
	switch t {
	case TierUntrained:
		return "untrained"
	case TierBeginner:
		return "beginner"
	case TierIntermediate:
		return "intermediate"
	case TierAdvanced:
		return "advanced"
	case TierMaster:
		return "master"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierUntrained:
		return "Untrained"
	case TierBeginner:
		return "Beginner"
	case TierIntermediate:
		return "Intermediate"
	case TierAdvanced:
		return "Advanced"
	case TierMaster:
		return "Master"
	default:
		return "Unknown"
	}
}

// Style holds the display colors associated with a tier.
type Style struct {
	Color      string
	Background string
	Border     string
}

// Style returns the display attributes for the tier.
func (t Tier) Style() Style {
	switch t {
	case TierBeginner:
		return Style{Color: "#3b82f6", Background: "#eff6ff", Border: "#bfdbfe"}
	case TierIntermediate:
		return Style{Color: "#10b981", Background: "#ecfdf5", Border: "#a7f3d0"}
	case TierAdvanced:
		return Style{Color: "#f59e0b", Background: "#fef3c7", Border: "#fde68a"}
	case TierMaster:
		return Style{Color: "#eab308", Background: "#fef3c7", Border: "#fde047"}
	default:
		return Style{Color: "#9ca3af", Background: "#f3f4f6", Border: "#e5e7eb"}
	}
}

// TierFor maps a total completion count to a tier. The mapping is monotonic:
// more completions never yields a lower tier.
func TierFor(totalCompletions int) Tier {
	switch {
	case totalCompletions <= 0:
		return TierUntrained
	case totalCompletions <= 2:
		return TierBeginner
	case totalCompletions <= 4:
		return TierIntermediate
	case totalCompletions <= 7:
		return TierAdvanced
	default:
		return TierMaster
	}
}

// TotalCompletions counts a topic's repetitions: one each for the completed
// explanation and flashcard set, plus every quiz taken. Quiz attempts count
// unscaled, so repeated low-score retries raise the tier regardless of score
// improvement; flagged for product review, behavior kept as shipped.
func TotalCompletions(p *progress.Progress) int {
	if p == nil {
		return 0
	}
	count := 0
	if p.ExplanationCompleted {
		count++
	}
	if p.FlashcardCompleted {
		count++
	}
	return count + p.TotalTestsTaken
}
