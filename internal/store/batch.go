package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kioku-app/kioku/ent"
	"github.com/kioku-app/kioku/ent/lessonbatch"
)

// batchRepo implements BatchRepo using the ent client.
type batchRepo struct {
	client *ent.Client
}

func (r *batchRepo) Create(ctx context.Context, level int, unitIDs []string) (BatchRecord, error) {
	id := uuid.NewString()
	row, err := r.client.LessonBatch.Create().
		SetBatchID(id).
		SetLevel(level).
		SetUnitIds(unitIDs).
		SetStatus(BatchInProgress).
		Save(ctx)
	if err != nil {
		return BatchRecord{}, fmt.Errorf("create lesson batch: %w", err)
	}
	return entToBatchRecord(row), nil
}

func (r *batchRepo) MarkComplete(ctx context.Context, batchID string, completed, total, mistakes int) error {
	row, err := r.client.LessonBatch.Query().
		Where(lessonbatch.BatchID(batchID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("query lesson batch: %w", err)
	}
	if row.Status == BatchCompleted {
		return nil
	}
	_, err = row.Update().
		SetStatus(BatchCompleted).
		SetCompletedCount(completed).
		SetTotalCount(total).
		SetMistakes(mistakes).
		SetFinishedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete lesson batch: %w", err)
	}
	return nil
}

func (r *batchRepo) MarkAbandoned(ctx context.Context, batchID string) error {
	n, err := r.client.LessonBatch.Update().
		Where(
			lessonbatch.BatchID(batchID),
			lessonbatch.Status(BatchInProgress),
		).
		SetStatus(BatchAbandoned).
		SetFinishedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("abandon lesson batch: %w", err)
	}
	if n == 0 {
		// Already finished; nothing to abandon.
		return nil
	}
	return nil
}

func (r *batchRepo) CountCreatedSince(ctx context.Context, t time.Time) (int, error) {
	n, err := r.client.LessonBatch.Query().
		Where(lessonbatch.CreatedAtGTE(t)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count lesson batches: %w", err)
	}
	return n, nil
}

func (r *batchRepo) Unfinished(ctx context.Context) ([]BatchRecord, error) {
	rows, err := r.client.LessonBatch.Query().
		Where(lessonbatch.Status(BatchInProgress)).
		Order(ent.Asc(lessonbatch.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unfinished batches: %w", err)
	}
	return entToBatchRecords(rows), nil
}

func (r *batchRepo) Recent(ctx context.Context, limit int) ([]BatchRecord, error) {
	q := r.client.LessonBatch.Query().
		Order(ent.Desc(lessonbatch.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent batches: %w", err)
	}
	return entToBatchRecords(rows), nil
}

func entToBatchRecord(row *ent.LessonBatch) BatchRecord {
	return BatchRecord{
		BatchID:        row.BatchID,
		Level:          row.Level,
		UnitIDs:        row.UnitIds,
		Status:         row.Status,
		CompletedCount: row.CompletedCount,
		TotalCount:     row.TotalCount,
		Mistakes:       row.Mistakes,
		CreatedAt:      row.CreatedAt,
		FinishedAt:     row.FinishedAt,
	}
}

func entToBatchRecords(rows []*ent.LessonBatch) []BatchRecord {
	out := make([]BatchRecord, len(rows))
	for i, row := range rows {
		out[i] = entToBatchRecord(row)
	}
	return out
}
