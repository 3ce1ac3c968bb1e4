package cmd

import (
	"fmt"

	"github.com/abhisek/benkyo/internal/achievements"
	"github.com/abhisek/benkyo/internal/logger"
	"github.com/abhisek/benkyo/internal/progress"
	"github.com/abhisek/benkyo/internal/spacedrep"
	"github.com/abhisek/benkyo/internal/stats"
	"github.com/abhisek/benkyo/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deps bundles the store and the services every subcommand wires the same
// way. Close must be called when the command is done.
type deps struct {
	Store     *store.Store
	UserID    uuid.UUID
	Log       *zap.SugaredLogger
	Progress  *progress.Service
	Scheduler *spacedrep.Scheduler
	Stats     *stats.Service
	Trigger   *achievements.Trigger
}

// openDeps opens the store at the resolved DB path and builds the service
// graph on top of it.
func openDeps(cmd *cobra.Command) (*deps, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	mode, _ := cmd.Flags().GetString("log")
	log := logger.Nop()
	if mode != "" && mode != "off" {
		log, err = logger.New(mode)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	userID, err := store.LocalUserID(dbPath)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("resolve user: %w", err)
	}

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
		UserID:    userID,
		Log:       log,
		Progress:  progress.NewService(cache, st.StatsRepo(), cache, log),
		Scheduler: spacedrep.NewScheduler(st.ReviewLog()),
		Stats:     statsSvc,
		Trigger:   achievements.NewTrigger(engine, statsSvc, &achievements.StaticFriendSource{}, log),
	}, nil
}

func (d *deps) Close() {
	_ = d.Log.Sync()
	_ = d.Store.Close()
}
