package srs

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRating reports a rating outside the Again..Easy range.
// Use errors.Is to check.
var ErrInvalidRating = errors.New("srs: invalid rating")

// Scheduling parameters. Stability behaves like an SM-2 ease factor: it
// starts at DefaultStability, drifts with graded feedback, and stays inside
// [MinStability, MaxStability].
const (
	DefaultStability = 2.5
	MinStability     = 1.3
	MaxStability     = 3.5

	// On failure stability halves (floored at MinStability) and the
	// interval falls back to the relearn step.
	failStabilityFactor = 0.5
	RelearnIntervalDays = 0.25 // 6 hours

	// Rating-dependent stability multipliers: hard < good < easy.
	hardStabilityFactor = 1.02
	goodStabilityFactor = 1.1
	easyStabilityFactor = 1.25

	// A fact enters StageReview once its interval reaches ReviewThresholdDays
	// and burns once it exceeds BurnThresholdDays. Intervals never exceed
	// MaxIntervalDays.
	ReviewThresholdDays = 3.0
	BurnThresholdDays   = 120.0
	MaxIntervalDays     = 365.0
)

// earlyIntervals is the fixed ladder for the first successful reviews,
// indexed by the rep count after the current success: 4h, 8h, 1d, 3d.
// Beyond the ladder the interval grows multiplicatively with stability.
var earlyIntervals = []float64{
	1: 4.0 / 24.0,
	2: 8.0 / 24.0,
	3: 1.0,
	4: 3.0,
}

// Schedule computes the next memory state for a graded review. It is pure
// and deterministic: the same (state, rating, now) always yields the same
// result, and the input state is never mutated.
//
// Burned facts are terminal: grading one returns the state unchanged. That
// is a deliberate policy (no un-burning), applied uniformly to all facts.
//
// The returned DueAt is never before now, and Stability stays within its
// configured bounds for any rating sequence.
func Schedule(m MemoryState, rating Rating, now time.Time) (MemoryState, error) {
	if !rating.IsValid() {
		return MemoryState{}, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}

	if m.Stage == StageBurned {
		return m, nil
	}

	next := m
	next.LastReviewedAt = now

	if next.Stability < MinStability {
		next.Stability = DefaultStability
	}

	if !rating.Passing() {
		next.LapseStreak++
		next.Lapses++
		next.Reps = 0
		next.Stability = clampStability(next.Stability * failStabilityFactor)
		next.IntervalDays = RelearnIntervalDays
		next.Stage = StageLearning
		next.DueAt = now.Add(daysToDuration(next.IntervalDays))
		return next, nil
	}

	next.LapseStreak = 0
	next.Reps++
	next.Stability = clampStability(next.Stability * passFactor(rating))
	next.IntervalDays = nextInterval(next.Reps, m.IntervalDays, next.Stability)
	next.Stage = stageFor(m.Stage, next.IntervalDays)
	next.DueAt = now.Add(daysToDuration(next.IntervalDays))
	return next, nil
}

func passFactor(rating Rating) float64 {
	switch rating {
	case Hard:
		return hardStabilityFactor
	case Easy:
		return easyStabilityFactor
	default:
		return goodStabilityFactor
	}
}

// nextInterval returns the interval after a successful review. The early
// ladder anchors the first few reviews; afterwards the interval is
// prev*stability, bounded below by prev+1 day (monotonic growth while
// passing) and above by MaxIntervalDays.
func nextInterval(reps int, prev, stability float64) float64 {
	if reps >= 1 && reps < len(earlyIntervals) {
		ladder := earlyIntervals[reps]
		if ladder > prev {
			return ladder
		}
	}

	next := prev * stability
	if next < prev+1 {
		next = prev + 1
	}
	if next > MaxIntervalDays {
		next = MaxIntervalDays
	}
	return next
}

// stageFor derives the stage from the new interval. Stages only advance on
// success: New→Learning on the first pass, Learning→Review at the review
// threshold, and Review→Burned beyond the burn threshold.
func stageFor(prev Stage, intervalDays float64) Stage {
	switch {
	case intervalDays > BurnThresholdDays:
		return StageBurned
	case intervalDays >= ReviewThresholdDays:
		return StageReview
	default:
		if prev == StageNew {
			return StageLearning
		}
		if prev > StageLearning {
			return prev
		}
		return StageLearning
	}
}

func clampStability(s float64) float64 {
	if s < MinStability {
		return MinStability
	}
	if s > MaxStability {
		return MaxStability
	}
	return s
}

func daysToDuration(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}
