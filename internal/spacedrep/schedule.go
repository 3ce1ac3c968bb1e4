package spacedrep

import "fmt"

// Confidence is the learner's self-reported recall strength for one
// flashcard, given during review.
type Confidence int

const (
	ConfidenceUnknown    Confidence = 1 // didn't know it
	ConfidenceUnsure     Confidence = 2 // shaky recall
	ConfidenceUnderstood Confidence = 3 // recalled with effort
	ConfidenceMastered   Confidence = 4 // instant recall
)

// Interval is a fixed (days, easiness) pair for one confidence value.
type Interval struct {
	Days     int
	Easiness float64
}

// intervals maps each confidence value to its review interval. This is
// deliberately not a compounding scheme: the same confidence always yields
// the same interval regardless of review history.
var intervals = map[Confidence]Interval{
	ConfidenceUnknown:    {Days: 1, Easiness: 1.3},
	ConfidenceUnsure:     {Days: 1, Easiness: 1.8},
	ConfidenceUnderstood: {Days: 3, Easiness: 2.5},
	ConfidenceMastered:   {Days: 7, Easiness: 2.8},
}

// ErrInvalidConfidence indicates a confidence rating outside {1,2,3,4}.
// Raised before any record is written.
type ErrInvalidConfidence struct {
	Confidence Confidence
}

func (e *ErrInvalidConfidence) Error() string {
	return fmt.Sprintf("invalid confidence %d: must be in 1-4", e.Confidence)
}

// Schedule returns the review interval for a confidence rating. Pure and
// deterministic; the only error is an out-of-range rating.
func Schedule(c Confidence) (Interval, error) {
	iv, ok := intervals[c]
	if !ok {
		return Interval{}, &ErrInvalidConfidence{Confidence: c}
	}
	return iv, nil
}
