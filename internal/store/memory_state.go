package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kioku-app/kioku/ent"
	"github.com/kioku-app/kioku/ent/memorystate"
	"github.com/kioku-app/kioku/internal/srs"
)

// memoryStateRepo implements MemoryStateRepo using the ent client.
type memoryStateRepo struct {
	client *ent.Client
}

func (r *memoryStateRepo) Get(ctx context.Context, unitID, facet string) (srs.MemoryState, bool, error) {
	row, err := r.client.MemoryState.Query().
		Where(memorystate.UnitID(unitID), memorystate.Facet(facet)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return srs.MemoryState{}, false, nil
		}
		return srs.MemoryState{}, false, fmt.Errorf("query memory state: %w", err)
	}
	return entToMemoryState(row), true, nil
}

func (r *memoryStateRepo) ForUnits(ctx context.Context, unitIDs []string) (map[string]map[string]srs.MemoryState, error) {
	rows, err := r.client.MemoryState.Query().
		Where(memorystate.UnitIDIn(unitIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query memory states: %w", err)
	}
	out := make(map[string]map[string]srs.MemoryState)
	for _, row := range rows {
		if out[row.UnitID] == nil {
			out[row.UnitID] = make(map[string]srs.MemoryState)
		}
		out[row.UnitID][row.Facet] = entToMemoryState(row)
	}
	return out, nil
}

func (r *memoryStateRepo) Upsert(ctx context.Context, state srs.MemoryState) error {
	existing, err := r.client.MemoryState.Query().
		Where(memorystate.UnitID(state.UnitID), memorystate.Facet(state.Facet)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query memory state: %w", err)
	}

	if ent.IsNotFound(err) {
		create := r.client.MemoryState.Create().
			SetUnitID(state.UnitID).
			SetFacet(state.Facet).
			SetStage(state.Stage.String()).
			SetStability(state.Stability).
			SetIntervalDays(state.IntervalDays).
			SetDueAt(state.DueAt).
			SetReps(state.Reps).
			SetLapses(state.Lapses).
			SetLapseStreak(state.LapseStreak)
		if !state.LastReviewedAt.IsZero() {
			create.SetLastReviewedAt(state.LastReviewedAt)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create memory state: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetStage(state.Stage.String()).
		SetStability(state.Stability).
		SetIntervalDays(state.IntervalDays).
		SetDueAt(state.DueAt).
		SetReps(state.Reps).
		SetLapses(state.Lapses).
		SetLapseStreak(state.LapseStreak)
	if !state.LastReviewedAt.IsZero() {
		update.SetLastReviewedAt(state.LastReviewedAt)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update memory state: %w", err)
	}
	return nil
}

func (r *memoryStateRepo) DueUnitIDs(ctx context.Context, now time.Time, limit int) ([]string, error) {
	rows, err := r.client.MemoryState.Query().
		Where(
			memorystate.DueAtLTE(now),
			memorystate.StageNEQ(srs.StageBurned.String()),
		).
		Order(ent.Asc(memorystate.FieldDueAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due states: %w", err)
	}

	seen := make(map[string]bool)
	var ids []string
	for _, row := range rows {
		if seen[row.UnitID] {
			continue
		}
		seen[row.UnitID] = true
		ids = append(ids, row.UnitID)
		if limit > 0 && len(ids) >= limit {
			break
		}
	}
	return ids, nil
}

func (r *memoryStateRepo) CountByStage(ctx context.Context) (map[srs.Stage]int, error) {
	counts := make(map[srs.Stage]int)
	for _, stage := range []srs.Stage{srs.StageNew, srs.StageLearning, srs.StageReview, srs.StageBurned} {
		n, err := r.client.MemoryState.Query().
			Where(memorystate.Stage(stage.String())).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count stage %s: %w", stage, err)
		}
		counts[stage] = n
	}
	return counts, nil
}

func (r *memoryStateRepo) StudiedUnitIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.MemoryState.Query().
		Unique(true).
		Select(memorystate.FieldUnitID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query studied units: %w", err)
	}
	return ids, nil
}

func (r *memoryStateRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.MemoryState.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete memory states: %w", err)
	}
	return n, nil
}

// entToMemoryState converts an ent row to the scheduler's state type.
func entToMemoryState(row *ent.MemoryState) srs.MemoryState {
	m := srs.MemoryState{
		UnitID:       row.UnitID,
		Facet:        row.Facet,
		Stage:        srs.ParseStage(row.Stage),
		Stability:    row.Stability,
		IntervalDays: row.IntervalDays,
		DueAt:        row.DueAt,
		Reps:         row.Reps,
		Lapses:       row.Lapses,
		LapseStreak:  row.LapseStreak,
	}
	if row.LastReviewedAt != nil {
		m.LastReviewedAt = *row.LastReviewedAt
	}
	return m
}
