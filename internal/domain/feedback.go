package domain

// Feedback ratings form a closed set of two thumb values, matching what the
// UI offers.
const (
	RatingUp   = "👍"
	RatingDown = "👎"
)

// ValidRating reports whether the rating is one of the accepted thumb values.
func ValidRating(rating string) bool {
	return rating == RatingUp || rating == RatingDown
}

// FeedbackRecord is one append-only feedback entry. Identity is the
// store-assigned ID; records are never mutated or deleted after creation.
type FeedbackRecord struct {
	ID           int64  `json:"id"`
	Timestamp    string `json:"timestamp"`
	Persona      string `json:"persona"`
	Style        string `json:"style"`
	Rating       string `json:"rating"`
	Comment      string `json:"comment"`
	UserMsg      string `json:"user_msg"`
	AssistantMsg string `json:"assistant_msg"`
}

// Positive reports whether the record carries a thumbs-up rating.
func (r *FeedbackRecord) Positive() bool {
	return r.Rating == RatingUp
}

// FeedbackSummary aggregates feedback records for the analytics view.
type FeedbackSummary struct {
	Total            int     `json:"total"`
	Positive         int     `json:"positive"`
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

// SummarizeFeedback computes totals and the satisfaction rate (percentage of
// thumbs-up records) over the given records.
func SummarizeFeedback(records []*FeedbackRecord) FeedbackSummary {
	s := FeedbackSummary{Total: len(records)}
	for _, r := range records {
		if r.Positive() {
			s.Positive++
		}
	}
	if s.Total > 0 {
		s.SatisfactionRate = float64(s.Positive) / float64(s.Total) * 100
	}
	return s
}
