package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records lesson session lifecycle events (start/end/abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson being played"),
		field.String("action").
			NotEmpty().
			Comment("start, end, or abandon"),
		field.Int("questions_answered").
			Default(0).
			Comment("Total questions (on end only)"),
		field.Int("xp_earned").
			Default(0).
			Comment("XP awarded (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("action"),
	}
}
