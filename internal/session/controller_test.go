package session

import (
	"context"
	"errors"
	"testing"

	"github.com/kioku-app/kioku/internal/srs"
)

type fakeSource struct {
	items []Item
	err   error
}

func (f *fakeSource) FetchEligibleItems(ctx context.Context, scope Scope) ([]Item, error) {
	return f.items, f.err
}

type fakeWriter struct {
	writes   []srs.MemoryState
	failures int
}

func (f *fakeWriter) WriteMemoryState(ctx context.Context, state srs.MemoryState) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("disk full")
	}
	f.writes = append(f.writes, state)
	return nil
}

type fakeBatches struct {
	created   []Batch
	completed map[string]BatchSummary
	abandoned []string
}

func newFakeBatches() *fakeBatches {
	return &fakeBatches{completed: make(map[string]BatchSummary)}
}

func (f *fakeBatches) CreateBatch(ctx context.Context, level int, unitIDs []string) (Batch, error) {
	b := Batch{ID: "batch-1", Level: level, UnitIDs: unitIDs, CreatedAt: queueTestNow}
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBatches) MarkBatchComplete(ctx context.Context, batchID string, summary BatchSummary) error {
	if _, dup := f.completed[batchID]; dup {
		return errors.New("batch already completed")
	}
	f.completed[batchID] = summary
	return nil
}

func (f *fakeBatches) MarkBatchAbandoned(ctx context.Context, batchID string) error {
	f.abandoned = append(f.abandoned, batchID)
	return nil
}

type fakeEvents struct {
	appended []AnswerResult
}

func (f *fakeEvents) AppendReviewEvent(ctx context.Context, batchID string, res AnswerResult) error {
	f.appended = append(f.appended, res)
	return nil
}

func newTestController(src ItemSource, w MemoryWriter, b BatchService, e EventSink) *Controller {
	return NewController(Options{
		Source:  src,
		Writer:  w,
		Batches: b,
		Events:  e,
		Now:     fixedNow,
	})
}

func drainSession(t *testing.T, c *Controller, rate func(QuizItem) srs.Rating) {
	t.Helper()
	for c.Phase() == PhaseLesson {
		if err := c.AdvanceLesson(); err != nil {
			t.Fatalf("AdvanceLesson: %v", err)
		}
	}
	for {
		item, ok := c.CurrentQuizItem()
		if !ok {
			return
		}
		if _, err := c.SubmitAnswer(context.Background(), rate(item)); err != nil {
			t.Fatalf("SubmitAnswer(%s): %v", item.ID, err)
		}
	}
}

func TestController_Start_NoEligibleItems(t *testing.T) {
	c := newTestController(&fakeSource{}, nil, nil, nil)
	err := c.Start(context.Background(), Scope{})
	if !errors.Is(err, ErrNoEligibleItems) {
		t.Fatalf("Start() = %v, want ErrNoEligibleItems", err)
	}
	if c.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want idle", c.Phase())
	}
}

func TestController_Start_DailyLimitPassesThrough(t *testing.T) {
	c := newTestController(&fakeSource{err: ErrDailyLimitReached}, nil, nil, nil)
	if err := c.Start(context.Background(), Scope{}); !errors.Is(err, ErrDailyLimitReached) {
		t.Fatalf("Start() = %v, want ErrDailyLimitReached", err)
	}
}

func TestController_BeforeStart(t *testing.T) {
	c := newTestController(&fakeSource{}, nil, nil, nil)
	if _, err := c.SubmitAnswer(context.Background(), srs.Good); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("SubmitAnswer = %v, want ErrNotStarted", err)
	}
	if err := c.CompleteBatch(context.Background()); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("CompleteBatch = %v, want ErrNotStarted", err)
	}
	if err := c.Abandon(context.Background()); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("Abandon = %v, want ErrNotStarted", err)
	}
}

func TestController_FullSession_AllPass(t *testing.T) {
	items := []Item{
		newItem(vocabUnit("v1", "one", "いち")),
		newItem(radicalUnit("r1", "ground")),
	}
	src := &fakeSource{items: items}
	w := &fakeWriter{}
	b := newFakeBatches()
	ev := &fakeEvents{}
	c := newTestController(src, w, b, ev)

	if err := c.Start(context.Background(), Scope{Level: 1}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if c.Phase() != PhaseLesson {
		t.Fatalf("phase after Start = %v, want lesson", c.Phase())
	}
	if len(b.created) != 1 {
		t.Fatalf("created %d batches, want 1", len(b.created))
	}
	if got := b.created[0].UnitIDs; len(got) != 2 {
		t.Fatalf("batch units = %v, want both new units", got)
	}

	drainSession(t, c, func(QuizItem) srs.Rating { return srs.Good })

	if c.Phase() != PhaseComplete {
		t.Fatalf("phase = %v, want complete", c.Phase())
	}
	// v1 has two facets, r1 one.
	if len(w.writes) != 3 {
		t.Fatalf("wrote %d memory states, want 3", len(w.writes))
	}
	if len(ev.appended) != 3 {
		t.Fatalf("appended %d review events, want 3", len(ev.appended))
	}
	sum, ok := b.completed["batch-1"]
	if !ok {
		t.Fatal("batch was not marked complete")
	}
	if sum.Completed != 3 || sum.Total != 3 || sum.Mistakes != 0 {
		t.Fatalf("summary = %+v, want 3/3 with no mistakes", sum)
	}
	for _, state := range w.writes {
		if state.Stage == srs.StageNew {
			t.Fatalf("state for %s/%s still new after a passing grade", state.UnitID, state.Facet)
		}
	}
}

func TestController_FailThenPass(t *testing.T) {
	src := &fakeSource{items: []Item{newItem(radicalUnit("r1", "ground"))}}
	w := &fakeWriter{}
	b := newFakeBatches()
	c := newTestController(src, w, b, nil)

	if err := c.Start(context.Background(), Scope{Level: 1}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	failedOnce := false
	drainSession(t, c, func(QuizItem) srs.Rating {
		if !failedOnce {
			failedOnce = true
			return srs.Again
		}
		return srs.Good
	})

	// Both the failing and the passing grade write through.
	if len(w.writes) != 2 {
		t.Fatalf("wrote %d memory states, want 2", len(w.writes))
	}
	if w.writes[0].Lapses != 1 {
		t.Fatalf("first write lapses = %d, want 1", w.writes[0].Lapses)
	}
	sum := b.completed["batch-1"]
	if sum.Completed != 1 || sum.Mistakes != 1 {
		t.Fatalf("summary = %+v, want 1 completed and 1 mistake", sum)
	}
}

func TestController_WriteFailureRetriesOnce(t *testing.T) {
	src := &fakeSource{items: []Item{newItem(radicalUnit("r1", "ground"))}}
	w := &fakeWriter{failures: 1}
	c := newTestController(src, w, newFakeBatches(), nil)

	if err := c.Start(context.Background(), Scope{}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	drainSession(t, c, func(QuizItem) srs.Rating { return srs.Good })

	if len(w.writes) != 1 {
		t.Fatalf("wrote %d states, want 1 via retry", len(w.writes))
	}
}

func TestController_WriteFailurePersistent_SessionContinues(t *testing.T) {
	src := &fakeSource{items: []Item{newItem(radicalUnit("r1", "ground"))}}
	w := &fakeWriter{failures: 10}
	var warnings int
	c := NewController(Options{
		Source:  src,
		Writer:  w,
		Batches: newFakeBatches(),
		Now:     fixedNow,
		Logf:    func(string, ...any) { warnings++ },
	})

	if err := c.Start(context.Background(), Scope{}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	drainSession(t, c, func(QuizItem) srs.Rating { return srs.Good })

	if c.Phase() != PhaseComplete {
		t.Fatalf("phase = %v, want complete despite write failures", c.Phase())
	}
	if warnings == 0 {
		t.Fatal("expected a logged warning for the failed write")
	}
}

func TestController_ReviewsOnly_NoBatchCreated(t *testing.T) {
	src := &fakeSource{items: []Item{reviewItem(vocabUnit("v1", "one", "いち"))}}
	b := newFakeBatches()
	c := newTestController(src, &fakeWriter{}, b, nil)

	if err := c.Start(context.Background(), Scope{ReviewsOnly: true}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if c.Phase() != PhaseQuiz {
		t.Fatalf("phase = %v, want quiz (no new items, no lesson)", c.Phase())
	}
	if len(b.created) != 0 {
		t.Fatalf("created %d batches, want 0 for a review session", len(b.created))
	}
	drainSession(t, c, func(QuizItem) srs.Rating { return srs.Good })
	if c.Phase() != PhaseComplete {
		t.Fatalf("phase = %v, want complete", c.Phase())
	}
}

func TestController_CompleteBatch_Idempotent(t *testing.T) {
	src := &fakeSource{items: []Item{newItem(radicalUnit("r1", "ground"))}}
	b := newFakeBatches()
	c := newTestController(src, &fakeWriter{}, b, nil)

	if err := c.Start(context.Background(), Scope{}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	drainSession(t, c, func(QuizItem) srs.Rating { return srs.Good })

	// The drain already finalized the batch; a second call must not error
	// even though the store rejects duplicate completions.
	if err := c.CompleteBatch(context.Background()); err != nil {
		t.Fatalf("second CompleteBatch: %v", err)
	}
	if len(b.completed) != 1 {
		t.Fatalf("batch completed %d times, want 1", len(b.completed))
	}
}

func TestController_Abandon(t *testing.T) {
	src := &fakeSource{items: []Item{newItem(radicalUnit("r1", "ground"))}}
	b := newFakeBatches()
	c := newTestController(src, &fakeWriter{}, b, nil)

	if err := c.Start(context.Background(), Scope{}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.Abandon(context.Background()); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if c.Phase() != PhaseAbandoned {
		t.Fatalf("phase = %v, want abandoned", c.Phase())
	}
	if len(b.abandoned) != 1 || b.abandoned[0] != "batch-1" {
		t.Fatalf("abandoned = %v, want [batch-1]", b.abandoned)
	}
	if len(b.completed) != 0 {
		t.Fatal("abandoned batch must not be marked complete")
	}
}
