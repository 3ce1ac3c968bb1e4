package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// FlashcardReview records a single flashcard review. Rows are append-only;
// the most recent row per (user, flashcard) is authoritative for scheduling.
type FlashcardReview struct {
	ent.Schema
}

func (FlashcardReview) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FlashcardReview) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("topic_id").
			NotEmpty().
			Immutable(),
		field.String("flashcard_id").
			NotEmpty().
			Immutable(),
		field.Int("confidence_level").
			Range(1, 4).
			Immutable(),
		field.Float("easiness_factor").
			Immutable(),
		field.Int("interval_days").
			Immutable(),
		field.Time("next_review_date").
			Immutable(),
	}
}

func (FlashcardReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "flashcard_id"),
		index.Fields("user_id", "topic_id"),
	}
}
