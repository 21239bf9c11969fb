package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a per-axis mastery grade change for an event.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			NotEmpty().
			Comment("Catalog event whose mastery changed"),
		field.String("axis").
			NotEmpty().
			Comment("location, date, what, or description"),
		field.String("grade").
			NotEmpty().
			Comment("New grade on the axis"),
		field.Int("overall").
			Comment("Recomputed overall mastery, 0 to 12"),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id"),
		index.Fields("axis"),
	}
}
