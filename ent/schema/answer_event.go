package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered quiz question within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("event_id").
			NotEmpty().
			Comment("Catalog event this question was about"),
		field.String("question_type").
			NotEmpty().
			Comment("location, date, what, or description"),
		field.String("first_grade").
			NotEmpty().
			Comment("green, yellow, or red on the first attempt"),
		field.String("retry_grade").
			Optional().
			Comment("Grade of the retry, empty when no retry happened"),
		field.Bool("free_text").
			Default(false).
			Comment("Whether the answer was typed rather than picked"),
		field.Int("difficulty").
			Comment("Catalog difficulty of the event, 1 to 3"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("event_id"),
		index.Fields("first_grade"),
	}
}
