package store

import (
	"context"
	"fmt"

	"github.com/kioku-app/kioku/ent"
	"github.com/kioku-app/kioku/ent/reviewevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetUnitID(data.UnitID).
		SetFacet(data.Facet).
		SetBatchID(data.BatchID).
		SetRating(data.Rating).
		SetPassed(data.Passed).
		SetStageBefore(data.StageBefore).
		SetStageAfter(data.StageAfter).
		SetIntervalDays(data.IntervalDays).
		SetDueAt(data.DueAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountReviews(ctx context.Context) (int, error) {
	n, err := r.client.ReviewEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count review events: %w", err)
	}
	return n, nil
}

func (r *eventRepo) ReviewAccuracy(ctx context.Context) (passed, total int, err error) {
	total, err = r.client.ReviewEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count review events: %w", err)
	}
	passed, err = r.client.ReviewEvent.Query().
		Where(reviewevent.Passed(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count passing events: %w", err)
	}
	return passed, total, nil
}
