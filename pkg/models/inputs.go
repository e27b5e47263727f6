package models

// Priority is a task's scheduling bucket.
type Priority string

// Priority buckets.
const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for the claim query: higher claims first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	case PriorityLow:
		return 0
	}
	return 1
}

// ParsePriority normalizes a board priority name; unknown values fall back
// to normal.
func ParsePriority(s string) Priority {
	switch s {
	case "high", "High":
		return PriorityHigh
	case "low", "Low":
		return PriorityLow
	default:
		return PriorityNormal
	}
}

// UpsertTaskInput carries a board page into the task store. Upsert is
// idempotent on BoardPageID.
type UpsertTaskInput struct {
	BoardPageID    string
	ChannelID      string
	Title          string
	Topic          string
	StoryDirection string
	Priority       Priority

	// Sub-item counts; zero means "use the channel default".
	AssetCount int
	ClipCount  int
}

// ReviewEvidence records who decided what at a review gate. Entries are
// appended to the task's review log by the board poller.
type ReviewEvidence struct {
	Gate     Status `json:"gate"`
	Reviewer string `json:"reviewer,omitempty"`
	Decision string `json:"decision"` // "approved" or "rejected"
	Feedback string `json:"feedback,omitempty"`
	At       string `json:"at"` // RFC 3339
}
