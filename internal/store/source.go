package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kioku-app/kioku/internal/curriculum"
	"github.com/kioku-app/kioku/internal/session"
	"github.com/kioku-app/kioku/internal/srs"
)

// LessonBatchSize is how many new units one lesson batch introduces.
const LessonBatchSize = 5

// SessionBackend implements the session package's collaborator interfaces on
// top of the store's repositories. One backend serves a whole process.
type SessionBackend struct {
	mem     MemoryStateRepo
	batches BatchRepo
	events  EventRepo
	now     func() time.Time
}

// NewSessionBackend wires a backend from a store.
func NewSessionBackend(s *Store) *SessionBackend {
	return &SessionBackend{
		mem:     s.MemoryStates(),
		batches: s.Batches(),
		events:  s.Events(),
		now:     time.Now,
	}
}

// FetchEligibleItems selects the items for a session: every unit with a due
// facet, plus up to LessonBatchSize never-studied units when today's batch
// allowance permits. New units come first so the lesson phase runs before
// any reviews are quizzed.
func (b *SessionBackend) FetchEligibleItems(ctx context.Context, scope session.Scope) ([]session.Item, error) {
	now := b.now()

	dueIDs, err := b.mem.DueUnitIDs(ctx, now, 0)
	if err != nil {
		return nil, err
	}

	var newUnits []curriculum.Unit
	if !scope.ReviewsOnly {
		newUnits, err = b.selectNewUnits(ctx, scope.Level)
		if err != nil {
			return nil, err
		}
		if len(newUnits) > 0 {
			allowed, err := b.lessonAllowance(ctx, now)
			if err != nil {
				return nil, err
			}
			if !allowed {
				if len(dueIDs) == 0 {
					return nil, session.ErrDailyLimitReached
				}
				newUnits = nil
			}
		}
	}

	items := make([]session.Item, 0, len(newUnits)+len(dueIDs))
	for _, u := range newUnits {
		items = append(items, session.Item{Unit: u, New: true})
	}

	if len(dueIDs) > 0 {
		states, err := b.mem.ForUnits(ctx, dueIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range dueIDs {
			u, err := curriculum.Get(id)
			if err != nil {
				// Stale state for a unit removed from the curriculum.
				continue
			}
			items = append(items, session.Item{Unit: u, States: states[id]})
		}
	}

	if len(items) == 0 {
		return nil, session.ErrNoEligibleItems
	}
	return items, nil
}

// selectNewUnits picks the next units to introduce, in curriculum order.
func (b *SessionBackend) selectNewUnits(ctx context.Context, level int) ([]curriculum.Unit, error) {
	studied, err := b.mem.StudiedUnitIDs(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(studied))
	for _, id := range studied {
		seen[id] = true
	}

	var candidates []curriculum.Unit
	for _, u := range curriculum.All() {
		if seen[u.ID] {
			continue
		}
		if level > 0 && u.Level != level {
			continue
		}
		candidates = append(candidates, u)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Level < candidates[j].Level
	})
	if len(candidates) > LessonBatchSize {
		candidates = candidates[:LessonBatchSize]
	}
	return candidates, nil
}

// lessonAllowance reports whether another lesson batch may start today.
func (b *SessionBackend) lessonAllowance(ctx context.Context, now time.Time) (bool, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	n, err := b.batches.CountCreatedSince(ctx, midnight)
	if err != nil {
		return false, fmt.Errorf("count today's batches: %w", err)
	}
	return n < DailyLessonLimit, nil
}

// WriteMemoryState persists a rescheduled state.
func (b *SessionBackend) WriteMemoryState(ctx context.Context, state srs.MemoryState) error {
	return b.mem.Upsert(ctx, state)
}

// CreateBatch records a new lesson batch.
func (b *SessionBackend) CreateBatch(ctx context.Context, level int, unitIDs []string) (session.Batch, error) {
	rec, err := b.batches.Create(ctx, level, unitIDs)
	if err != nil {
		return session.Batch{}, err
	}
	return session.Batch{
		ID:        rec.BatchID,
		Level:     rec.Level,
		UnitIDs:   rec.UnitIDs,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// MarkBatchComplete finalizes a batch with its outcome counters.
func (b *SessionBackend) MarkBatchComplete(ctx context.Context, batchID string, summary session.BatchSummary) error {
	return b.batches.MarkComplete(ctx, batchID, summary.Completed, summary.Total, summary.Mistakes)
}

// MarkBatchAbandoned flags a batch the learner walked away from.
func (b *SessionBackend) MarkBatchAbandoned(ctx context.Context, batchID string) error {
	return b.batches.MarkAbandoned(ctx, batchID)
}

// AppendReviewEvent logs one grade to the append-only event log.
func (b *SessionBackend) AppendReviewEvent(ctx context.Context, batchID string, res session.AnswerResult) error {
	return b.events.AppendReview(ctx, ReviewEventData{
		UnitID:       res.Item.UnitID,
		Facet:        res.Item.Facet,
		BatchID:      batchID,
		Rating:       res.Rating.String(),
		Passed:       res.Passed,
		StageBefore:  res.Item.State.Stage.String(),
		StageAfter:   res.NewState.Stage.String(),
		IntervalDays: res.NewState.IntervalDays,
		DueAt:        res.NewState.DueAt,
	})
}

// ReconcileUnfinished marks stale in-progress batches abandoned. Called at
// startup so a crash mid-session does not leave batches dangling.
func (b *SessionBackend) ReconcileUnfinished(ctx context.Context) (int, error) {
	stale, err := b.batches.Unfinished(ctx)
	if err != nil {
		return 0, err
	}
	for _, rec := range stale {
		if err := b.batches.MarkAbandoned(ctx, rec.BatchID); err != nil {
			return 0, err
		}
	}
	return len(stale), nil
}

var (
	_ session.ItemSource   = (*SessionBackend)(nil)
	_ session.MemoryWriter = (*SessionBackend)(nil)
	_ session.BatchService = (*SessionBackend)(nil)
	_ session.EventSink    = (*SessionBackend)(nil)
)
