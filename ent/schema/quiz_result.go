package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// QuizResult records one quiz submission. Append-only; aggregate fields on
// TopicProgress are derived from these at write time, and the perfect-score
// count for achievements is a query over this table.
type QuizResult struct {
	ent.Schema
}

func (QuizResult) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("topic_id").
			NotEmpty().
			Immutable(),
		field.Int("score").
			Range(0, 100).
			Immutable(),
		field.Int("total_questions").
			Default(0).
			Immutable(),
		field.Int("correct_answers").
			Default(0).
			Immutable(),
	}
}

func (QuizResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id"),
		index.Fields("user_id", "score"),
	}
}
