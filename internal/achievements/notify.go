package achievements

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogNotifier is a Notifier that writes each award to the log. Serves as the
// default sink when no outbound notification transport is wired in.
type LogNotifier struct {
	Log *zap.SugaredLogger
}

func (n *LogNotifier) AchievementEarned(userID uuid.UUID, key, name string) {
	n.Log.Infow("achievement notification", "user_id", userID, "key", key, "name", name)
}

// StaticFriendSource returns a fixed friend count. The friend graph belongs
// to an external collaborator; this stands in where none is wired.
type StaticFriendSource struct {
	Count int
}

func (s *StaticFriendSource) FriendCount(_ context.Context, _ uuid.UUID) (int, error) {
	return s.Count, nil
}
