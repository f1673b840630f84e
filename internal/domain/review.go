package domain

import "time"

// Review is a stored customer review. It is never mutated once in the store.
type Review struct {
	Location   string    `json:"Location"`
	ReviewBody string    `json:"ReviewBody"`
	ReviewID   string    `json:"ReviewId"`
	Timestamp  string    `json:"Timestamp"`
	Sentiment  Sentiment `json:"sentiment"`
}

// Sentiment maps a dimension name (neg|neu|pos|compound) to its score.
type Sentiment map[string]float64

// NewReview is the caller-supplied part of a review submission.
type NewReview struct {
	Location   string `validate:"required"`
	ReviewBody string `validate:"required"`
}

// ReviewFilter narrows a read query. Empty fields are not applied.
type ReviewFilter struct {
	Location  string
	StartDate string
	EndDate   string
}

func (f ReviewFilter) IsZero() bool {
	return f.Location == "" && f.StartDate == "" && f.EndDate == ""
}

// CanonicalTimestamp is the layout new reviews are stamped with.
const CanonicalTimestamp = "2006-01-02 15:04:05"

// FormatTimestamp renders t in the canonical write layout.
func FormatTimestamp(t time.Time) string { return t.Format(CanonicalTimestamp) }

// AllowedLocations is the fixed set of locations a new review may name.
var AllowedLocations = []string{
	"San Diego, California",
	"Denver, Colorado",
}

func IsAllowedLocation(loc string) bool {
	for _, l := range AllowedLocations {
		if l == loc {
			return true
		}
	}
	return false
}
