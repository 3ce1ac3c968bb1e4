package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// UserAchievement marks an earned badge. Set membership is the sole earned
// state: rows are created exactly once per key and never updated or deleted.
// The unique (user_id, achievement_key) index is what makes the award
// operation safe against near-simultaneous triggers.
type UserAchievement struct {
	ent.Schema
}

func (UserAchievement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("achievement_key").
			NotEmpty().
			Immutable(),
		field.Time("earned_at").
			Default(time.Now).
			Immutable(),
	}
}

func (UserAchievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "achievement_key").Unique(),
		index.Fields("user_id"),
	}
}
