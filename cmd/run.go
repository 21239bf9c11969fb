package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/edonnat/chronos/internal/app"
	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/notify"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/store"
	"github.com/spf13/cobra"
)

// snapshotKeep bounds the progress history retained in the database.
const snapshotKeep = 20

// openStore resolves the DB path and opens the backing store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadProgress builds the in-memory progress store from the latest
// snapshot and wires persistence: every dispatch writes a new snapshot,
// best effort, and prunes old ones.
func loadProgress(st *store.Store) (*progress.Store, error) {
	repo := st.ProgressRepo()

	initial := progress.DefaultState()
	snap, err := repo.Latest(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if snap != nil {
		initial = snap.State
	}

	persist := func(s progress.State) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := repo.Save(ctx, &store.ProgressSnapshot{Timestamp: time.Now(), State: s})
		if err != nil {
			fmt.Fprintln(os.Stderr, "save progress:", err)
			return
		}
		if err := repo.Prune(ctx, snapshotKeep); err != nil {
			fmt.Fprintln(os.Stderr, "prune snapshots:", err)
		}
	}

	return progress.NewStore(initial, persist), nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, startLesson *catalog.Lesson) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	prog, err := loadProgress(st)
	if err != nil {
		return err
	}

	return launch(st, prog, startLesson)
}

// launch starts the TUI over an already-opened store.
func launch(st *store.Store, prog *progress.Store, startLesson *catalog.Lesson) error {
	return app.Run(app.Options{
		Progress:    prog,
		Events:      st.EventRepo(),
		Notifier:    notify.Unsupported{},
		StartLesson: startLesson,
	})
}
