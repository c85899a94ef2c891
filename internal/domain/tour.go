package domain

import "time"

type Difficulty string

const (
	DifficultyEasy        Difficulty = "EASY"
	DifficultyModerate    Difficulty = "MODERATE"
	DifficultyChallenging Difficulty = "CHALLENGING"
)

type Tour struct {
	ID                 string
	HostID             string
	Title              string
	Description        string
	Location           string
	PriceCents         int64
	OriginalPriceCents int64 // 0 when the tour has never been discounted
	Currency           string
	DurationHours      int
	Rating             float64
	ReviewCount        int
	MaxParticipants    int
	Difficulty         Difficulty
	Included           []string
	Excluded           []string
	Tags               []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyChallenging:
		return true
	}
	return false
}

// Validate checks the field invariants a tour must hold before it is stored.
func (t *Tour) Validate() error {
	if t.Title == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if t.HostID == "" {
		return &ValidationError{Field: "host_id", Reason: "is required"}
	}
	if t.PriceCents <= 0 {
		return &ValidationError{Field: "price", Reason: "must be positive"}
	}
	if t.OriginalPriceCents != 0 && t.PriceCents > t.OriginalPriceCents {
		return &ValidationError{Field: "price", Reason: "must not exceed original price"}
	}
	if t.DurationHours <= 0 {
		return &ValidationError{Field: "duration", Reason: "must be positive"}
	}
	if t.MaxParticipants <= 0 {
		return &ValidationError{Field: "max_participants", Reason: "must be positive"}
	}
	if t.Rating < 0 || t.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	}
	if t.ReviewCount < 0 {
		return &ValidationError{Field: "review_count", Reason: "must not be negative"}
	}
	if !ValidDifficulty(t.Difficulty) {
		return &ValidationError{Field: "difficulty", Reason: "unknown value"}
	}
	return nil
}
