package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	run, err := store.SaveRun(Run{Player: "alice", Score: 420, Level: 0, Ticks: 420})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if run.ID == 0 {
		t.Error("Expected database ID to be set")
	}
	if _, err := uuid.Parse(run.RunID); err != nil {
		t.Errorf("Expected a UUID run ID, got %q", run.RunID)
	}

	got, err := store.RunByID(run.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected saved run to be found")
	}
	if got.Player != "alice" || got.Score != 420 || got.Ticks != 420 {
		t.Errorf("Unexpected run %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreSaveRunDefaultsPlayer(t *testing.T) {
	store := openTestStore(t)

	run, err := store.SaveRun(Run{Score: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if run.Player != "anonymous" {
		t.Errorf("Expected anonymous player, got %q", run.Player)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("does-not-exist")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for a missing run, got %+v", got)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 300, 200, 400} {
		if _, err := store.SaveRun(Run{Player: "bob", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Request only top 3
	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "alice", Score: 10})
	store.SaveRun(Run{Player: "bob", Score: 20})
	store.SaveRun(Run{Player: "alice", Score: 30})

	runs, err := store.PlayerRuns("alice", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for alice, got %d", len(runs))
	}
	// Most recent first
	if runs[0].Score != 30 || runs[1].Score != 10 {
		t.Errorf("Unexpected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 300})
	store.SaveRun(Run{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(Run{Score: 100, Level: 0, Ticks: 100})
	store.SaveRun(Run{Score: 1200, Level: 2, Ticks: 1200})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.HighScore != 1200 || stats.MaxLevel != 2 {
		t.Errorf("Expected high 1200 and level 2, got %d/%d", stats.HighScore, stats.MaxLevel)
	}
	if stats.AvgScore != 650 {
		t.Errorf("Expected average 650, got %v", stats.AvgScore)
	}
	if stats.TotalTicks != 1300 {
		t.Errorf("Expected 1300 ticks, got %d", stats.TotalTicks)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// First session: save a run
	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveRun(Run{Player: "carol", Score: 999})
	store1.Close()

	// Second session: verify it persisted
	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	runs, err := store2.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 999 {
		t.Errorf("Expected persisted run with score 999, got %v", runs)
	}
}
