package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonBatch records one session's worth of newly introduced units. The
// daily lesson limit counts batches created since local midnight, so rows
// are never deleted.
type LessonBatch struct {
	ent.Schema
}

func (LessonBatch) Fields() []ent.Field {
	return []ent.Field{
		field.String("batch_id").
			Unique().
			NotEmpty().
			Comment("UUID assigned at creation"),
		field.Int("level").
			Default(0).
			Comment("Curriculum level the batch was drawn from"),
		field.JSON("unit_ids", []string{}).
			Comment("Units introduced by this batch"),
		field.String("status").
			Default("in_progress").
			Comment("in_progress, completed, or abandoned"),
		field.Int("completed_count").
			Default(0).
			Comment("Facets retired when the batch finished"),
		field.Int("total_count").
			Default(0).
			Comment("Facets quizzed when the batch finished"),
		field.Int("mistakes").
			Default(0).
			Comment("Failing grades recorded during the batch"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("Set when the batch completes or is abandoned"),
	}
}

func (LessonBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
