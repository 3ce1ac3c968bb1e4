package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// StudySession records one study sitting. The session_date column holds the
// local calendar day (YYYY-MM-DD) so streak queries can group by day without
// timezone math at read time.
type StudySession struct {
	ent.Schema
}

func (StudySession) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.UUID("session_id", uuid.UUID{}).
			Immutable(),
		field.String("session_date").
			NotEmpty().
			Immutable(),
		field.Int("duration_seconds").
			Default(0).
			Immutable(),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "session_date"),
	}
}
