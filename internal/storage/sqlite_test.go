package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

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

func TestRecordAndRetrieveMatches(t *testing.T) {
	store := openTestStore(t)

	entries := []MatchEntry{
		{GameID: "tictac", Mode: "vs Computer", Winner: WinnerX, Moves: 7, Duration: 12},
		{GameID: "tictac", Mode: "vs Computer", Winner: WinnerO, Moves: 8, Duration: 20},
		{GameID: "tictac", Mode: "vs Computer", Winner: WinnerDraw, Moves: 9, Duration: 25},
		{GameID: "tictac_2p", Mode: "2 Players", Winner: WinnerX, Moves: 5, Duration: 30},
	}
	for _, e := range entries {
		if _, err := store.RecordMatch(e); err != nil {
			t.Fatalf("RecordMatch() failed: %v", err)
		}
	}

	matches, err := store.MatchesByGame("tictac", 10)
	if err != nil {
		t.Fatalf("MatchesByGame() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("MatchesByGame() returned %d matches, expected 3", len(matches))
	}
	// Most recent first
	if matches[0].Winner != WinnerDraw {
		t.Errorf("Most recent winner = %q, expected draw", matches[0].Winner)
	}

	all, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("RecentMatches() returned %d matches, expected 4", len(all))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []MatchEntry{
		{GameID: "tictac", Mode: "vs Computer", Winner: WinnerX, Moves: 5},
		{GameID: "tictac", Mode: "vs Computer", Winner: WinnerX, Moves: 7},
		{GameID: "tictac", Mode: "vs Computer", Winner: WinnerO, Moves: 8},
		{GameID: "tictac", Mode: "vs Computer", Winner: WinnerDraw, Moves: 9},
	} {
		if _, err := store.RecordMatch(e); err != nil {
			t.Fatalf("RecordMatch() failed: %v", err)
		}
	}

	stats, err := store.Stats("tictac")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Played != 4 {
		t.Errorf("Played = %d, expected 4", stats.Played)
	}
	if stats.XWins != 2 {
		t.Errorf("XWins = %d, expected 2", stats.XWins)
	}
	if stats.OWins != 1 {
		t.Errorf("OWins = %d, expected 1", stats.OWins)
	}
	if stats.Draws != 1 {
		t.Errorf("Draws = %d, expected 1", stats.Draws)
	}
	want := (5 + 7 + 8 + 9) / 4.0
	if stats.AvgMoves != want {
		t.Errorf("AvgMoves = %v, expected %v", stats.AvgMoves, want)
	}
}

func TestStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("tictac")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 0 {
		t.Errorf("Played = %d on empty store, expected 0", stats.Played)
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordMatch(MatchEntry{GameID: "tictac", Mode: "vs Computer", Winner: WinnerX, Moves: 5}); err != nil {
		t.Fatalf("RecordMatch() failed: %v", err)
	}
	if _, err := store.RecordMatch(MatchEntry{GameID: "tictac_2p", Mode: "2 Players", Winner: WinnerO, Moves: 6}); err != nil {
		t.Fatalf("RecordMatch() failed: %v", err)
	}

	if err := store.ClearMatches("tictac"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	matches, err := store.MatchesByGame("tictac", 10)
	if err != nil {
		t.Fatalf("MatchesByGame() failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Matches remain after clear: %d", len(matches))
	}

	// Other variants untouched
	other, err := store.MatchesByGame("tictac_2p", 10)
	if err != nil {
		t.Fatalf("MatchesByGame() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Other variant affected by clear: %d matches", len(other))
	}
}
