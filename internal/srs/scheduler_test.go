package srs

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestState() MemoryState {
	return NewMemoryState("unit-a", "meaning", testNow)
}

func TestNewMemoryState_ImmediatelyDue(t *testing.T) {
	m := newTestState()

	if m.Stage != StageNew {
		t.Errorf("Stage = %v, want %v", m.Stage, StageNew)
	}
	if m.LapseStreak != 0 {
		t.Errorf("LapseStreak = %d, want 0", m.LapseStreak)
	}
	if !m.IsDue(testNow) {
		t.Error("expected a fresh state to be due immediately")
	}
}

func TestSchedule_InvalidRating(t *testing.T) {
	m := newTestState()

	for _, r := range []Rating{0, 5, -1} {
		_, err := Schedule(m, r, testNow)
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Schedule(rating=%d) err = %v, want ErrInvalidRating", int(r), err)
		}
	}
}

func TestSchedule_FirstPass_EarlyLadder(t *testing.T) {
	m := newTestState()

	next, err := Schedule(m, Good, testNow)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if next.Stage != StageLearning {
		t.Errorf("Stage = %v, want %v", next.Stage, StageLearning)
	}
	if next.Reps != 1 {
		t.Errorf("Reps = %d, want 1", next.Reps)
	}
	wantInterval := 4.0 / 24.0
	if next.IntervalDays != wantInterval {
		t.Errorf("IntervalDays = %v, want %v", next.IntervalDays, wantInterval)
	}
	wantDue := testNow.Add(4 * time.Hour)
	if !next.DueAt.Equal(wantDue) {
		t.Errorf("DueAt = %v, want %v", next.DueAt, wantDue)
	}
}

func TestSchedule_PassingSequence_MonotonicDue(t *testing.T) {
	m := newTestState()
	now := testNow
	prevDue := now

	for i := 0; i < 20; i++ {
		next, err := Schedule(m, Good, now)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if next.DueAt.Before(prevDue) {
			t.Fatalf("step %d: DueAt %v regressed before %v", i, next.DueAt, prevDue)
		}
		if next.DueAt.Before(now) {
			t.Fatalf("step %d: DueAt %v earlier than now %v", i, next.DueAt, now)
		}
		if next.IntervalDays < m.IntervalDays {
			t.Fatalf("step %d: interval shrank from %v to %v on a pass",
				i, m.IntervalDays, next.IntervalDays)
		}
		prevDue = next.DueAt
		now = next.DueAt
		m = next
	}
}

func TestSchedule_Fail_ResetsIntervalAndCountsLapse(t *testing.T) {
	m := newTestState()
	now := testNow

	// Build up a long interval first.
	for i := 0; i < 6; i++ {
		var err error
		m, err = Schedule(m, Good, now)
		if err != nil {
			t.Fatalf("warmup %d: %v", i, err)
		}
		now = m.DueAt
	}
	if m.IntervalDays <= RelearnIntervalDays {
		t.Fatalf("warmup did not grow interval: %v", m.IntervalDays)
	}
	prevStability := m.Stability

	failed, err := Schedule(m, Again, now)
	if err != nil {
		t.Fatalf("fail: %v", err)
	}

	if failed.IntervalDays != RelearnIntervalDays {
		t.Errorf("IntervalDays = %v, want relearn value %v", failed.IntervalDays, RelearnIntervalDays)
	}
	if failed.LapseStreak != m.LapseStreak+1 {
		t.Errorf("LapseStreak = %d, want %d", failed.LapseStreak, m.LapseStreak+1)
	}
	if failed.Stage != StageLearning {
		t.Errorf("Stage = %v, want %v", failed.Stage, StageLearning)
	}
	if failed.Stability >= prevStability {
		t.Errorf("Stability = %v, want < %v", failed.Stability, prevStability)
	}
	if failed.Reps != 0 {
		t.Errorf("Reps = %d, want 0", failed.Reps)
	}
}

func TestSchedule_Pass_ResetsLapseStreak(t *testing.T) {
	m := newTestState()
	m.LapseStreak = 3

	next, err := Schedule(m, Hard, testNow)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if next.LapseStreak != 0 {
		t.Errorf("LapseStreak = %d, want 0", next.LapseStreak)
	}
}

func TestSchedule_StabilityNeverBelowMinimum(t *testing.T) {
	m := newTestState()
	now := testNow

	// Arbitrary mixed sequence heavy on failures.
	ratings := []Rating{Again, Again, Good, Again, Hard, Again, Again, Easy, Again, Again}
	for i, r := range ratings {
		var err error
		m, err = Schedule(m, r, now)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if m.Stability < MinStability {
			t.Fatalf("step %d: Stability %v below minimum %v", i, m.Stability, MinStability)
		}
		if m.Stability > MaxStability {
			t.Fatalf("step %d: Stability %v above maximum %v", i, m.Stability, MaxStability)
		}
		now = now.Add(time.Hour)
	}
}

func TestSchedule_RatingOrder_HardGoodEasy(t *testing.T) {
	base := newTestState()
	// Push past the early ladder so multiplicative growth applies.
	base.Reps = 10
	base.IntervalDays = 20
	base.Stage = StageReview

	intervals := make(map[Rating]float64)
	for _, r := range []Rating{Hard, Good, Easy} {
		next, err := Schedule(base, r, testNow)
		if err != nil {
			t.Fatalf("%v: %v", r, err)
		}
		intervals[r] = next.IntervalDays
	}

	if !(intervals[Hard] <= intervals[Good] && intervals[Good] <= intervals[Easy]) {
		t.Errorf("interval order violated: hard=%v good=%v easy=%v",
			intervals[Hard], intervals[Good], intervals[Easy])
	}
}

func TestSchedule_BurnsAtThreshold(t *testing.T) {
	m := newTestState()
	now := testNow

	for i := 0; i < 60 && m.Stage != StageBurned; i++ {
		var err error
		m, err = Schedule(m, Easy, now)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		now = m.DueAt
	}

	if m.Stage != StageBurned {
		t.Fatalf("never burned; final interval %v", m.IntervalDays)
	}
	if m.IntervalDays <= BurnThresholdDays {
		t.Errorf("burned with interval %v, want > %v", m.IntervalDays, BurnThresholdDays)
	}
}

func TestSchedule_BurnedIsTerminal(t *testing.T) {
	m := newTestState()
	m.Stage = StageBurned
	m.IntervalDays = 200
	m.DueAt = testNow.AddDate(1, 0, 0)

	for _, r := range []Rating{Again, Hard, Good, Easy} {
		next, err := Schedule(m, r, testNow)
		if err != nil {
			t.Fatalf("%v: %v", r, err)
		}
		if next != m {
			t.Errorf("%v: burned state changed: %+v", r, next)
		}
	}

	if m.IsDue(testNow.AddDate(2, 0, 0)) {
		t.Error("burned fact reported due")
	}
}

func TestSchedule_IntervalCeiling(t *testing.T) {
	m := newTestState()
	m.Reps = 50
	m.IntervalDays = 360
	m.Stage = StageReview
	next, err := Schedule(m, Easy, testNow)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if next.IntervalDays > MaxIntervalDays {
		t.Errorf("IntervalDays = %v, want <= %v", next.IntervalDays, MaxIntervalDays)
	}
}

func TestFromBinary(t *testing.T) {
	if got := FromBinary(true); got != Good {
		t.Errorf("FromBinary(true) = %v, want %v", got, Good)
	}
	if got := FromBinary(false); got != Again {
		t.Errorf("FromBinary(false) = %v, want %v", got, Again)
	}
}

func TestOverdueDays(t *testing.T) {
	m := newTestState()
	m.DueAt = testNow

	if d := m.OverdueDays(testNow.Add(-time.Hour)); d != 0 {
		t.Errorf("OverdueDays before due = %v, want 0", d)
	}
	if d := m.OverdueDays(testNow.Add(48 * time.Hour)); d != 2 {
		t.Errorf("OverdueDays = %v, want 2", d)
	}
}
