package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent is the append-only record of a single grade. The scheduler's
// state can be rebuilt from this log if memory_states is ever lost.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_id").
			NotEmpty(),
		field.String("facet").
			NotEmpty(),
		field.String("batch_id").
			Default("").
			Comment("Lesson batch the grade occurred in; empty for pure review sessions"),
		field.String("rating").
			NotEmpty().
			Comment("again, hard, good, or easy"),
		field.Bool("passed"),
		field.String("stage_before").
			Comment("Stage the facet held when graded"),
		field.String("stage_after").
			Comment("Stage produced by the grade"),
		field.Float("interval_days").
			Comment("Interval assigned by the grade"),
		field.Time("due_at").
			Comment("Due time assigned by the grade"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id", "facet"),
		index.Fields("batch_id"),
		index.Fields("passed"),
	}
}
