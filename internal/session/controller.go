package session

import (
	"context"
	"time"

	"github.com/kioku-app/kioku/internal/srs"
)

// Scope selects which units a session draws from.
type Scope struct {
	// Level restricts the session to one curriculum level. Zero means all
	// unlocked levels.
	Level int
	// ReviewsOnly skips new units entirely; no lesson batch is created.
	ReviewsOnly bool
}

// Batch is a persisted record of one session's worth of new units.
type Batch struct {
	ID        string
	Level     int
	UnitIDs   []string
	CreatedAt time.Time
}

// BatchSummary is recorded when a batch is finalized.
type BatchSummary struct {
	Completed int
	Total     int
	Mistakes  int
}

// ItemSource selects the items eligible for a session. Implementations
// return ErrDailyLimitReached when today's new-lesson allowance is spent and
// ErrNoEligibleItems when nothing is new or due.
type ItemSource interface {
	FetchEligibleItems(ctx context.Context, scope Scope) ([]Item, error)
}

// MemoryWriter persists a rescheduled memory state.
type MemoryWriter interface {
	WriteMemoryState(ctx context.Context, state srs.MemoryState) error
}

// BatchService records lesson batches and their outcomes.
type BatchService interface {
	CreateBatch(ctx context.Context, level int, unitIDs []string) (Batch, error)
	MarkBatchComplete(ctx context.Context, batchID string, summary BatchSummary) error
	MarkBatchAbandoned(ctx context.Context, batchID string) error
}

// EventSink receives an append-only record of every grade. Recording is
// best effort; a sink failure never blocks the session.
type EventSink interface {
	AppendReviewEvent(ctx context.Context, batchID string, res AnswerResult) error
}

// Phase is the controller's lifecycle position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLesson
	PhaseQuiz
	PhaseComplete
	PhaseAbandoned
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLesson:
		return "lesson"
	case PhaseQuiz:
		return "quiz"
	case PhaseComplete:
		return "complete"
	case PhaseAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Options configures a Controller.
type Options struct {
	Source  ItemSource
	Writer  MemoryWriter
	Batches BatchService
	Events  EventSink

	// Now overrides the clock, for tests.
	Now func() time.Time
	// Logf receives non-fatal persistence warnings. Nil disables it.
	Logf func(format string, args ...any)
}

// Controller owns one study session end to end: item selection, the lesson
// walk, the quiz loop with write-through persistence, and batch completion.
// It is not safe for concurrent use; drive it from a single goroutine.
type Controller struct {
	source  ItemSource
	writer  MemoryWriter
	batches BatchService
	events  EventSink
	now     func() time.Time
	logf    func(format string, args ...any)

	phase     Phase
	queue     *Queue
	batch     *Batch
	finalized bool
}

// NewController wires a controller from its collaborators.
func NewController(opts Options) *Controller {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Controller{
		source:  opts.Source,
		writer:  opts.Writer,
		batches: opts.Batches,
		events:  opts.Events,
		now:     now,
		logf:    logf,
		phase:   PhaseIdle,
	}
}

// Start fetches eligible items, records a lesson batch when the session
// introduces new units, and enters the lesson phase. ErrDailyLimitReached
// and ErrNoEligibleItems pass through from the source unchanged.
func (c *Controller) Start(ctx context.Context, scope Scope) error {
	items, err := c.source.FetchEligibleItems(ctx, scope)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrNoEligibleItems
	}
	return c.Init(ctx, scope, items)
}

// Init starts a session over an already-selected item set. Start is the
// common entry point; Init exists so callers with their own selection can
// reuse the lifecycle.
func (c *Controller) Init(ctx context.Context, scope Scope, items []Item) error {
	q := NewQueue(items, c.now)

	var batch *Batch
	if n := q.LessonCount(); n > 0 && c.batches != nil {
		newIDs := make([]string, 0, n)
		for _, it := range items {
			if it.New {
				newIDs = append(newIDs, it.Unit.ID)
			}
		}
		b, err := c.batches.CreateBatch(ctx, scope.Level, newIDs)
		if err != nil {
			return err
		}
		batch = &b
	}

	c.queue = q
	c.batch = batch
	c.finalized = false
	if q.LessonDone() {
		q.StartQuiz()
		c.phase = PhaseQuiz
	} else {
		c.phase = PhaseLesson
	}
	return nil
}

// Phase returns the controller's current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Queue exposes the underlying session queue. Nil before Start.
func (c *Controller) Queue() *Queue {
	return c.queue
}

// CurrentLessonItem returns the lesson card under the cursor.
func (c *Controller) CurrentLessonItem() (Item, bool) {
	if c.queue == nil {
		return Item{}, false
	}
	return c.queue.CurrentLessonItem()
}

// AdvanceLesson acknowledges the current lesson card. When the last card is
// acknowledged the controller moves into the quiz phase.
func (c *Controller) AdvanceLesson() error {
	if c.queue == nil {
		return ErrNotStarted
	}
	if c.phase != PhaseLesson {
		return ErrSessionCompleted
	}
	if !c.queue.AdvanceLesson() {
		c.queue.StartQuiz()
		c.phase = PhaseQuiz
	}
	return nil
}

// CurrentQuizItem returns the question at the front of the quiz queue.
func (c *Controller) CurrentQuizItem() (QuizItem, bool) {
	if c.queue == nil || c.phase != PhaseQuiz {
		return QuizItem{}, false
	}
	return c.queue.CurrentQuizItem()
}

// SubmitAnswer grades the current quiz item and writes the rescheduled
// memory state through to storage before returning. A write failure is
// retried once; if the retry also fails the session continues in memory and
// the failure is logged. When the last item retires the batch is finalized.
func (c *Controller) SubmitAnswer(ctx context.Context, rating srs.Rating) (AnswerResult, error) {
	if c.queue == nil {
		return AnswerResult{}, ErrNotStarted
	}
	if c.phase != PhaseQuiz {
		return AnswerResult{}, ErrSessionCompleted
	}
	res, err := c.queue.SubmitAnswer(rating)
	if err != nil {
		return AnswerResult{}, err
	}

	if c.writer != nil {
		if werr := c.writer.WriteMemoryState(ctx, res.NewState); werr != nil {
			if werr = c.writer.WriteMemoryState(ctx, res.NewState); werr != nil {
				c.logf("session: memory state write failed for %s: %v", res.Item.ID, werr)
			}
		}
	}
	if c.events != nil {
		batchID := ""
		if c.batch != nil {
			batchID = c.batch.ID
		}
		if eerr := c.events.AppendReviewEvent(ctx, batchID, res); eerr != nil {
			c.logf("session: review event append failed for %s: %v", res.Item.ID, eerr)
		}
	}

	if c.queue.Done() {
		if err := c.CompleteBatch(ctx); err != nil {
			c.logf("session: batch completion failed: %v", err)
		}
	}
	return res, nil
}

// Progress returns retired and total quiz counts.
func (c *Controller) Progress() (completed, total int) {
	if c.queue == nil {
		return 0, 0
	}
	return c.queue.Progress()
}

// Summary returns the session's outcome counters.
func (c *Controller) Summary() BatchSummary {
	if c.queue == nil {
		return BatchSummary{}
	}
	completed, total := c.queue.Progress()
	return BatchSummary{Completed: completed, Total: total, Mistakes: c.queue.Mistakes()}
}

// CompleteBatch finalizes the session's lesson batch. Calling it again after
// success is a no-op, so interrupted completions can be retried safely.
func (c *Controller) CompleteBatch(ctx context.Context) error {
	if c.queue == nil {
		return ErrNotStarted
	}
	if c.finalized {
		return nil
	}
	if c.batch != nil {
		if err := c.batches.MarkBatchComplete(ctx, c.batch.ID, c.Summary()); err != nil {
			return err
		}
	}
	c.finalized = true
	c.phase = PhaseComplete
	return nil
}

// Abandon discards the in-memory session. Memory states already written
// stay written; the unfinished batch is marked abandoned so its units are
// offered again next session.
func (c *Controller) Abandon(ctx context.Context) error {
	if c.queue == nil {
		return ErrNotStarted
	}
	if c.finalized {
		return nil
	}
	if c.batch != nil {
		if err := c.batches.MarkBatchAbandoned(ctx, c.batch.ID); err != nil {
			c.logf("session: batch abandon failed: %v", err)
		}
	}
	c.finalized = true
	c.phase = PhaseAbandoned
	return nil
}
