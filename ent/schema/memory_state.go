package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryState is the per-facet scheduling record for a study unit. One row
// per (unit_id, facet); rows are upserted on every grade.
type MemoryState struct {
	ent.Schema
}

func (MemoryState) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_id").
			NotEmpty().
			Comment("Curriculum unit this state belongs to"),
		field.String("facet").
			NotEmpty().
			Comment("meaning, reading, or cloze"),
		field.String("stage").
			Default("new").
			Comment("new, learning, review, or burned"),
		field.Float("stability").
			Comment("Ease multiplier driving interval growth"),
		field.Float("interval_days").
			Default(0).
			Comment("Current scheduling interval in days"),
		field.Time("due_at").
			Comment("When the facet next becomes eligible for review"),
		field.Time("last_reviewed_at").
			Optional().
			Nillable().
			Comment("UTC time of the most recent grade"),
		field.Int("reps").
			Default(0).
			Comment("Consecutive passing grades since last lapse"),
		field.Int("lapses").
			Default(0).
			Comment("Lifetime failing grades"),
		field.Int("lapse_streak").
			Default(0).
			Comment("Consecutive failing grades"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MemoryState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id", "facet").
			Unique(),
		index.Fields("due_at"),
		index.Fields("stage"),
	}
}
