package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("catcher", 42, 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("catcher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("HighScore() = %d, want 42", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		game         string
		score, level int
	}{
		{"catcher", 100, 2},
		{"catcher", 50, 1},
		{"catcher", 200, 4},
		{"catcher_all", 500, 1},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.score, s.level); err != nil {
			t.Fatalf("SaveScore(%s, %d) failed: %v", s.game, s.score, err)
		}
	}

	scores, err := store.TopScores("catcher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}

	want := []struct{ score, level int }{{200, 4}, {100, 2}, {50, 1}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Level != w.level {
			t.Errorf("scores[%d] = (%d, L%d), want (%d, L%d)",
				i, scores[i].Score, scores[i].Level, w.score, w.level)
		}
		if scores[i].GameID != "catcher" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.SaveScore("catcher", i*10, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("catcher", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("got %d scores, want 5", len(scores))
	}
	if scores[0].Score != 150 {
		t.Errorf("top score = %d, want 150", scores[0].Score)
	}

	// Non-positive limit falls back to 10.
	scores, err = store.TopScores("catcher", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("got %d scores with default limit, want 10", len(scores))
	}

	all, err := store.AllScores("catcher")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 15 {
		t.Errorf("AllScores() returned %d, want 15", len(all))
	}
}

func TestStoreLevelFloor(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("catcher", 10, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, err := store.TopScores("catcher", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Level != 1 {
		t.Errorf("Level = %d, want 1", scores[0].Level)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("catcher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, want 0", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("catcher", 100, 1)
	store.SaveScore("catcher_all", 200, 1)

	if err := store.ClearScores("catcher"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("catcher", 10)
	if len(scores) != 0 {
		t.Errorf("got %d catcher scores after clear, want 0", len(scores))
	}
	scores, _ = store.TopScores("catcher_all", 10)
	if len(scores) != 1 {
		t.Errorf("got %d catcher_all scores, want 1", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("catcher", 100, 2)
	store.SaveScore("catcher", 300, 5)

	stats, err := store.GetGameStats("catcher")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.BestLevel != 5 {
		t.Errorf("BestLevel = %d, want 5", stats.BestLevel)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}
}
