package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/benkyo/internal/achievements"
	"github.com/abhisek/benkyo/internal/logger"
	"github.com/abhisek/benkyo/internal/progress"
	"github.com/abhisek/benkyo/internal/spacedrep"
	"github.com/abhisek/benkyo/internal/stats"
	"github.com/abhisek/benkyo/internal/store"
	"github.com/abhisek/benkyo/internal/syllabus"
	"github.com/google/uuid"
)

// testDeps builds the same service graph openDeps does, over a store in a
// temp directory.
func testDeps(t *testing.T) *deps {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "benkyo.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })

	log := logger.Nop()
	cache := progress.NewCache(st.ProgressRepo())
	statsSvc := stats.NewService(st.StatsRepo(), st.StatsRepo())
	engine := achievements.NewEngine(
		achievements.DefaultCatalog(),
		st.AwardStore(),
		&achievements.LogNotifier{Log: log},
		log,
	)

	return &deps{
		Store:     st,
		UserID:    uuid.New(),
		Log:       log,
		Progress:  progress.NewService(cache, st.StatsRepo(), cache, log),
		Scheduler: spacedrep.NewScheduler(st.ReviewLog()),
		Stats:     statsSvc,
		Trigger:   achievements.NewTrigger(engine, statsSvc, &achievements.StaticFriendSource{}, log),
	}
}

func TestRunMark_LastFlagCompletesTopicAndAwards(t *testing.T) {
	d := testDeps(t)
	ctx := context.Background()

	topic, err := syllabus.GetTopic("geo-earth-overview")
	if err != nil {
		t.Fatal(err)
	}

	// Quiz passed and flashcards done; the lesson is the last missing piece.
	if _, err := d.Progress.SubmitQuiz(ctx, d.UserID, topic.ID, 85, 10, 8); err != nil {
		t.Fatal(err)
	}
	if err := runMark(ctx, d, topic, "flashcards"); err != nil {
		t.Fatal(err)
	}

	earned, err := d.Store.AwardStore().EarnedKeys(ctx, d.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if earned["first_topic"] {
		t.Fatal("first_topic awarded before the topic was complete")
	}

	if err := runMark(ctx, d, topic, "lesson"); err != nil {
		t.Fatal(err)
	}

	p, err := d.Store.ProgressRepo().Get(ctx, d.UserID, topic.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Completed() {
		t.Fatalf("topic not completed after all parts: %+v", p)
	}

	earned, err = d.Store.AwardStore().EarnedKeys(ctx, d.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if !earned["first_topic"] {
		t.Error("completing a topic via mark did not award first_topic")
	}
}

func TestRunMark_UnknownPart(t *testing.T) {
	d := testDeps(t)

	topic, err := syllabus.GetTopic("geo-earth-overview")
	if err != nil {
		t.Fatal(err)
	}
	if err := runMark(context.Background(), d, topic, "notes"); err == nil {
		t.Fatal("unknown part accepted")
	}
}
