package store

import (
	"context"
	"testing"
	"time"

	"github.com/kioku-app/kioku/internal/curriculum"
	"github.com/kioku-app/kioku/internal/session"
	"github.com/kioku-app/kioku/internal/srs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestMemoryStateUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.MemoryStates()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	// Unknown unit reads as absent, not as an error.
	_, ok, err := repo.Get(ctx, "rad-ichi", "meaning")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("expected no state before first upsert")
	}

	state := srs.NewMemoryState("rad-ichi", "meaning", now)
	if err := repo.Upsert(ctx, state); err != nil {
		t.Fatalf("upsert create: %v", err)
	}

	state.Stage = srs.StageLearning
	state.Reps = 1
	state.IntervalDays = 1
	state.DueAt = now.Add(24 * time.Hour)
	state.LastReviewedAt = now
	if err := repo.Upsert(ctx, state); err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	got, ok, err := repo.Get(ctx, "rad-ichi", "meaning")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Stage != srs.StageLearning || got.Reps != 1 {
		t.Errorf("state = %+v, want updated stage/reps", got)
	}
	if !got.DueAt.Equal(state.DueAt) {
		t.Errorf("due at = %v, want %v", got.DueAt, state.DueAt)
	}

	// The upsert must not have created a second row.
	count, err := s.Client().MemoryState.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestMemoryStateDueOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.MemoryStates()
	ctx := context.Background()
	now := time.Now().UTC()

	for _, tc := range []struct {
		unit string
		due  time.Time
	}{
		{"kanji-yama", now.Add(-48 * time.Hour)},
		{"rad-ichi", now.Add(-1 * time.Hour)},
		{"vocab-hito", now.Add(24 * time.Hour)}, // not due
	} {
		st := srs.NewMemoryState(tc.unit, "meaning", now)
		st.Stage = srs.StageLearning
		st.DueAt = tc.due
		if err := repo.Upsert(ctx, st); err != nil {
			t.Fatalf("upsert %s: %v", tc.unit, err)
		}
	}

	// Burned facets never come due.
	burned := srs.NewMemoryState("gram-wa", "cloze", now)
	burned.Stage = srs.StageBurned
	burned.DueAt = now.Add(-240 * time.Hour)
	if err := repo.Upsert(ctx, burned); err != nil {
		t.Fatalf("upsert burned: %v", err)
	}

	ids, err := repo.DueUnitIDs(ctx, now, 0)
	if err != nil {
		t.Fatalf("due unit ids: %v", err)
	}
	want := []string{"kanji-yama", "rad-ichi"}
	if len(ids) != len(want) {
		t.Fatalf("due units = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("due units = %v, want %v (most overdue first)", ids, want)
		}
	}
}

func TestBatchLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Batches()
	ctx := context.Background()

	rec, err := repo.Create(ctx, 1, []string{"rad-ichi", "rad-hito"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.BatchID == "" || rec.Status != BatchInProgress {
		t.Fatalf("record = %+v, want in-progress with id", rec)
	}

	if err := repo.MarkComplete(ctx, rec.BatchID, 3, 3, 1); err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	// Completing again is a no-op.
	if err := repo.MarkComplete(ctx, rec.BatchID, 3, 3, 1); err != nil {
		t.Fatalf("mark complete twice: %v", err)
	}

	recent, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("recent = %d batches, want 1", len(recent))
	}
	got := recent[0]
	if got.Status != BatchCompleted || got.Mistakes != 1 || got.CompletedCount != 3 {
		t.Errorf("batch = %+v, want completed 3/3 with 1 mistake", got)
	}
	if got.FinishedAt == nil {
		t.Error("finished at not set on completion")
	}
}

func TestBatchAbandonLeavesCompletedAlone(t *testing.T) {
	s := openTestStore(t)
	repo := s.Batches()
	ctx := context.Background()

	rec, err := repo.Create(ctx, 1, []string{"rad-ichi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.MarkComplete(ctx, rec.BatchID, 1, 1, 0); err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	if err := repo.MarkAbandoned(ctx, rec.BatchID); err != nil {
		t.Fatalf("mark abandoned: %v", err)
	}

	recent, err := repo.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if recent[0].Status != BatchCompleted {
		t.Errorf("status = %s, want completed batch untouched by abandon", recent[0].Status)
	}
}

func TestBatchCountCreatedSince(t *testing.T) {
	s := openTestStore(t)
	repo := s.Batches()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, 1, []string{"rad-ichi"}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	n, err := repo.CountCreatedSince(ctx, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	n, err = repo.CountCreatedSince(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("count future: %v", err)
	}
	if n != 0 {
		t.Errorf("count since future = %d, want 0", n)
	}
}

func TestReviewEventAppend(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	err := events.AppendReview(ctx, ReviewEventData{
		UnitID:       "rad-ichi",
		Facet:        "meaning",
		Rating:       "good",
		Passed:       true,
		StageBefore:  "new",
		StageAfter:   "learning",
		IntervalDays: 0.17,
		DueAt:        time.Now().Add(4 * time.Hour),
	})
	if err != nil {
		t.Fatalf("append review: %v", err)
	}

	n, err := events.CountReviews(ctx)
	if err != nil {
		t.Fatalf("count reviews: %v", err)
	}
	if n != 1 {
		t.Errorf("reviews = %d, want 1", n)
	}
}

func TestReviewAccuracy(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	grades := []bool{true, true, false, true}
	for _, pass := range grades {
		rating := "good"
		if !pass {
			rating = "again"
		}
		err := events.AppendReview(ctx, ReviewEventData{
			UnitID: "kanji-yama",
			Facet:  "reading",
			Rating: rating,
			Passed: pass,
			DueAt:  time.Now().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("append review: %v", err)
		}
	}

	passed, total, err := events.ReviewAccuracy(ctx)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if passed != 3 || total != 4 {
		t.Errorf("accuracy = %d/%d, want 3/4", passed, total)
	}
}

func TestLLMEventQueries(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := events.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "mnemonic",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
			RequestBody:  "prompt",
			ResponseBody: `{"mnemonic":"..."}`,
		})
		if err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	recs, err := events.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("events = %d, want 2", len(recs))
	}
	if recs[0].Sequence < recs[1].Sequence {
		t.Error("events not in newest-first order")
	}

	got, err := events.GetLLMEvent(ctx, recs[0].ID)
	if err != nil {
		t.Fatalf("get LLM event: %v", err)
	}
	if got == nil || got.RequestBody != "prompt" {
		t.Errorf("get LLM event = %+v, want request body captured", got)
	}

	stats, err := events.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 1 || stats[0].Purpose != "mnemonic" {
		t.Fatalf("usage stats = %+v, want one mnemonic row", stats)
	}
	if stats[0].Calls != 3 || stats[0].InputTokens != 300 || stats[0].OutputTokens != 150 {
		t.Errorf("usage totals = %+v", stats[0])
	}
	if stats[0].AvgLatencyMs != 20 {
		t.Errorf("avg latency = %d, want 20", stats[0].AvgLatencyMs)
	}

	byModel, err := events.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "mock-model" || byModel[0].Calls != 3 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestSessionBackend_NewUnitsFirstSession(t *testing.T) {
	s := openTestStore(t)
	backend := NewSessionBackend(s)
	ctx := context.Background()

	items, err := backend.FetchEligibleItems(ctx, session.Scope{Level: 1})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != LessonBatchSize {
		t.Fatalf("items = %d, want %d new units on a fresh database", len(items), LessonBatchSize)
	}
	for _, it := range items {
		if !it.New {
			t.Errorf("unit %s marked as review on a fresh database", it.Unit.ID)
		}
		if it.Unit.Level != 1 {
			t.Errorf("unit %s level = %d, want scope level 1", it.Unit.ID, it.Unit.Level)
		}
	}
}

func TestSessionBackend_DailyLimit(t *testing.T) {
	s := openTestStore(t)
	backend := NewSessionBackend(s)
	ctx := context.Background()

	// Exhaust today's allowance.
	for i := 0; i < DailyLessonLimit; i++ {
		if _, err := s.Batches().Create(ctx, 1, []string{"rad-ichi"}); err != nil {
			t.Fatalf("create batch %d: %v", i, err)
		}
	}

	_, err := backend.FetchEligibleItems(ctx, session.Scope{})
	if err != session.ErrDailyLimitReached {
		t.Fatalf("fetch = %v, want ErrDailyLimitReached", err)
	}

	// A due review still comes through despite the limit.
	due := srs.NewMemoryState("rad-ichi", curriculum.FacetMeaning, time.Now().Add(-time.Hour))
	due.Stage = srs.StageLearning
	if err := s.MemoryStates().Upsert(ctx, due); err != nil {
		t.Fatalf("upsert due state: %v", err)
	}
	items, err := backend.FetchEligibleItems(ctx, session.Scope{})
	if err != nil {
		t.Fatalf("fetch with due review: %v", err)
	}
	if len(items) != 1 || items[0].New {
		t.Fatalf("items = %+v, want the single due review", items)
	}
}

func TestSessionBackend_ReconcileUnfinished(t *testing.T) {
	s := openTestStore(t)
	backend := NewSessionBackend(s)
	ctx := context.Background()

	rec, err := s.Batches().Create(ctx, 1, []string{"rad-ichi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	n, err := backend.ReconcileUnfinished(ctx)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if n != 1 {
		t.Fatalf("reconciled = %d, want 1", n)
	}

	recent, err := s.Batches().Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if recent[0].BatchID != rec.BatchID || recent[0].Status != BatchAbandoned {
		t.Errorf("batch = %+v, want abandoned", recent[0])
	}
}
