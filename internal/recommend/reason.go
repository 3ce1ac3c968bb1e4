package recommend

// Reason tags why a topic was recommended. Each topic appears in the ranked
// output under at most one reason.
type Reason string

const (
	ReasonWeakArea         Reason = "weak_area"
	ReasonReviewNeeded     Reason = "review_needed"
	ReasonContinueLearning Reason = "continue_learning"
	ReasonNextToLearn      Reason = "next_to_learn"
)

// DisplayName returns a human-readable label for the reason.
func (r Reason) DisplayName() string {
	switch r {
	case ReasonWeakArea:
		return "Weak area"
	case ReasonReviewNeeded:
		return "Review needed"
	case ReasonContinueLearning:
		return "Continue learning"
	case ReasonNextToLearn:
		return "Next to learn"
	default:
		return string(r)
	}
}

// Recommendation is one entry of the ranked study queue.
type Recommendation struct {
	TopicID    string
	Title      string
	Category   string
	Reason     Reason
	ReasonText string
	Priority   int // 1-5, 5 is highest

	// Auxiliary display data; zero when not applicable to the reason.
	AverageScore float64
	DaysStale    int
	MasteryLevel int
}
