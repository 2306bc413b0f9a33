package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct {
		score    int
		duration float64
	}{
		{12, 12.4}, {47, 47.9}, {3, 3.1}, {47, 47.2},
	} {
		if _, err := store.SaveRun(run.score, run.duration); err != nil {
			t.Fatalf("SaveRun(%d) failed: %v", run.score, err)
		}
	}

	top, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopScores returned %d entries, expected 3", len(top))
	}
	if top[0].Score != 47 || top[1].Score != 47 || top[2].Score != 12 {
		t.Errorf("TopScores order = %d, %d, %d, expected 47, 47, 12",
			top[0].Score, top[1].Score, top[2].Score)
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 47 {
		t.Errorf("HighScore = %d, expected 47", high)
	}

	count, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount failed: %v", err)
	}
	if count != 4 {
		t.Errorf("RunCount = %d, expected 4", count)
	}
}

func TestHighScoreOnEmptyStore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore on empty store = %d, expected 0", high)
	}

	top, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("TopScores on empty store returned %d entries", len(top))
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(10, 10.5); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	count, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount failed: %v", err)
	}
	if count != 0 {
		t.Errorf("RunCount after clear = %d, expected 0", count)
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open should create parent directories, got: %v", err)
	}
	store.Close()
}
