package store

import (
	"context"
	"fmt"

	"github.com/abhisek/benkyo/ent"
	"github.com/abhisek/benkyo/ent/userachievement"
	"github.com/abhisek/benkyo/internal/achievements"
	"github.com/google/uuid"
)

// AwardStore implements achievements.AwardStore. The unique
// (user_id, achievement_key) index makes Award idempotent: a losing
// concurrent insert hits the constraint and is reported as "not awarded"
// rather than an error.
type AwardStore struct {
	client *ent.Client
}

func (r *AwardStore) EarnedKeys(ctx context.Context, userID uuid.UUID) (map[string]bool, error) {
	keys, err := r.client.UserAchievement.Query().
		Where(userachievement.UserID(userID)).
		Select(userachievement.FieldAchievementKey).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query earned keys: %w", err)
	}
	earned := make(map[string]bool, len(keys))
	for _, k := range keys {
		earned[k] = true
	}
	return earned, nil
}

func (r *AwardStore) Award(ctx context.Context, userID uuid.UUID, key string) (bool, error) {
	_, err := r.client.UserAchievement.Create().
		SetUserID(userID).
		SetAchievementKey(key).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil // already earned; silent no-op
		}
		return false, fmt.Errorf("award achievement: %w", err)
	}
	return true, nil
}

// ListEarned returns all earned achievements for a user, newest first.
func (r *AwardStore) ListEarned(ctx context.Context, userID uuid.UUID) ([]achievements.Earned, error) {
	rows, err := r.client.UserAchievement.Query().
		Where(userachievement.UserID(userID)).
		Order(ent.Desc(userachievement.FieldEarnedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list earned: %w", err)
	}
	earned := make([]achievements.Earned, len(rows))
	for i, row := range rows {
		earned[i] = achievements.Earned{
			UserID:   row.UserID,
			Key:      row.AchievementKey,
			EarnedAt: row.EarnedAt,
		}
	}
	return earned, nil
}
