package session

import "errors"

// Sentinel errors for session lifecycle conditions. Expected conditions are
// returned, never panicked; check with errors.Is.
var (
	// ErrDailyLimitReached means the learner has used up today's lesson
	// batch allowance. The presentation layer shows a dedicated "rest"
	// message for this, so it must stay distinguishable from other
	// failures.
	ErrDailyLimitReached = errors.New("session: daily lesson limit reached")

	// ErrNoEligibleItems means nothing is due and nothing is new: no
	// session is needed. Benign; not a failure.
	ErrNoEligibleItems = errors.New("session: no eligible items")

	// ErrNotStarted means a session method was called before Start/Init.
	ErrNotStarted = errors.New("session: not started")

	// ErrSessionCompleted means the batch was already finalized and can
	// accept no further grades.
	ErrSessionCompleted = errors.New("session: batch already completed")

	// ErrLessonNotFinished means StartQuiz was called with lesson items
	// still unacknowledged.
	ErrLessonNotFinished = errors.New("session: lesson phase not finished")
)
