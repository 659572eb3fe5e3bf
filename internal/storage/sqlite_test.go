package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("nomad", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("nomad", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("nomad", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("nomad_calm", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for nomad
	scores, err := store.TopScores("nomad", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for the calm variant
	calmScores, err := store.TopScores("nomad_calm", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(calmScores) != 1 {
		t.Errorf("Expected 1 calm score, got %d", len(calmScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("nomad")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("nomad", 100)
	store.SaveScore("nomad", 300)
	store.SaveScore("nomad", 200)

	high, err = store.HighScore("nomad")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("nomad", 100)
	store.SaveScore("nomad", 200)
	store.SaveScore("nomad_calm", 300)

	// Clear only nomad scores
	err = store.ClearScores("nomad")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Nomad should be empty
	nomadScores, _ := store.TopScores("nomad", 10)
	if len(nomadScores) != 0 {
		t.Errorf("Expected 0 nomad scores after clear, got %d", len(nomadScores))
	}

	// The calm variant should still have scores
	calmScores, _ := store.TopScores("nomad_calm", 10)
	if len(calmScores) != 1 {
		t.Errorf("Calm scores should not be affected by clearing nomad")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.nomad/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".nomad", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreRunIDs(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveScore("nomad", 120)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	second, err := store.SaveScore("nomad", 120)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if first == "" || first == second {
		t.Errorf("Run IDs should be unique, got %q and %q", first, second)
	}

	entry, err := store.ScoreByRun(first)
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if entry == nil || entry.RunID != first || entry.Score != 120 {
		t.Errorf("ScoreByRun() = %+v, want run %s", entry, first)
	}

	missing, err := store.ScoreByRun("no-such-run")
	if err != nil || missing != nil {
		t.Errorf("ScoreByRun(missing) = %v, %v; want nil, nil", missing, err)
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Setting("missing"); err != nil || ok {
		t.Errorf("Setting(missing) ok=%v err=%v", ok, err)
	}

	if err := store.SetSetting("volume", "0.5"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := store.SetSetting("volume", "0.8"); err != nil {
		t.Fatalf("SetSetting() overwrite failed: %v", err)
	}
	v, ok, err := store.Setting("volume")
	if err != nil || !ok || v != "0.8" {
		t.Errorf("Setting(volume) = %q, %v, %v; want 0.8", v, ok, err)
	}

	if _, err := store.IntSetting("volume"); err == nil {
		t.Error("IntSetting on a non-integer should fail")
	}
}

func TestGameRecords(t *testing.T) {
	store := openTestStore(t)
	rec := store.Records("nomad")

	best, err := rec.HighScore()
	if err != nil || best != 0 {
		t.Fatalf("HighScore() on empty store = %d, %v", best, err)
	}

	if err := rec.SaveHighScore(900); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if best, _ := rec.HighScore(); best != 900 {
		t.Errorf("HighScore() = %d, want 900", best)
	}

	// A higher recorded run wins over the stored best
	store.SaveScore("nomad", 1500)
	if best, _ := rec.HighScore(); best != 1500 {
		t.Errorf("HighScore() = %d, want 1500", best)
	}

	// Variants keep separate bests
	if best, _ := store.Records("nomad_calm").HighScore(); best != 0 {
		t.Errorf("Calm HighScore() = %d, want 0", best)
	}
}

func TestGameRecordsTutorial(t *testing.T) {
	store := openTestStore(t)

	done, err := store.Records("nomad").TutorialComplete()
	if err != nil || done {
		t.Fatalf("TutorialComplete() on empty store = %v, %v", done, err)
	}

	if err := store.Records("nomad").MarkTutorialComplete(); err != nil {
		t.Fatalf("MarkTutorialComplete() failed: %v", err)
	}

	// The flag belongs to the player, not the variant
	done, err = store.Records("nomad_calm").TutorialComplete()
	if err != nil || !done {
		t.Errorf("TutorialComplete() = %v, %v; want true", done, err)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("nomad")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", stats)
	}

	store.SaveScore("nomad", 100)
	store.SaveScore("nomad", 300)
	store.SaveScore("nomad_calm", 50)

	stats, err = store.GetGameStats("nomad")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Stats = %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["nomad_calm"].HighScore != 50 {
		t.Errorf("All stats = %v", all)
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
