package srs

import "time"

// MemoryState holds the spaced repetition state for a single learnable fact
// (one facet of one knowledge unit). It is a plain value; all transitions go
// through Schedule.
type MemoryState struct {
	UnitID string `json:"unit_id"`
	Facet  string `json:"facet"`

	Stage Stage `json:"stage"`

	// Stability is the memory-strength scalar that scales interval growth.
	// Bounded below by MinStability so intervals never collapse or invert.
	Stability float64 `json:"stability"`

	// LapseStreak counts consecutive failing grades since the last success.
	LapseStreak int `json:"lapse_streak"`

	// IntervalDays is the last computed inter-review gap. Callers never read
	// it directly; it only feeds the next Schedule call.
	IntervalDays float64 `json:"interval_days"`

	// DueAt is when the fact next becomes eligible for review.
	DueAt time.Time `json:"due_at"`

	LastReviewedAt time.Time `json:"last_reviewed_at"`

	// Reps counts consecutive successful reviews; it resets on failure and
	// selects the fixed early-interval ladder while small.
	Reps int `json:"reps"`

	// Lapses counts lifetime failures.
	Lapses int `json:"lapses"`
}

// NewMemoryState creates the state for a never-reviewed fact: StageNew,
// default stability, immediately due.
func NewMemoryState(unitID, facet string, now time.Time) MemoryState {
	return MemoryState{
		UnitID:    unitID,
		Facet:     facet,
		Stage:     StageNew,
		Stability: DefaultStability,
		DueAt:     now,
	}
}

// IsDue reports whether the fact is at or past its review time.
// Burned facts are never due.
func (m MemoryState) IsDue(now time.Time) bool {
	if m.Stage == StageBurned {
		return false
	}
	return !now.Before(m.DueAt)
}

// OverdueDays returns how many days past due the fact is, or 0 if not yet due.
func (m MemoryState) OverdueDays(now time.Time) float64 {
	if !m.IsDue(now) {
		return 0
	}
	return now.Sub(m.DueAt).Hours() / 24.0
}
