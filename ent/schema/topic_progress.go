package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TopicProgress is the durable per-(user, topic) completion and scoring
// record. One row per pair, created on first interaction, never deleted.
type TopicProgress struct {
	ent.Schema
}

func (TopicProgress) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("topic_id").
			NotEmpty().
			Immutable(),
		field.Bool("explanation_completed").
			Default(false),
		field.Bool("flashcard_completed").
			Default(false),
		field.Bool("quiz_completed").
			Default(false),
		field.Time("explanation_completed_at").
			Optional().
			Nillable(),
		field.Time("flashcard_completed_at").
			Optional().
			Nillable(),
		field.Time("quiz_completed_at").
			Optional().
			Nillable(),
		field.Int("latest_score").
			Default(0),
		field.Int("best_score").
			Default(0),
		field.Float("average_score").
			Default(0),
		field.Int("total_tests_taken").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (TopicProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").Unique(),
		index.Fields("user_id"),
	}
}
