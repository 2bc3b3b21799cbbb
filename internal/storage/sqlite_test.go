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

	entries := []JournalEntry{
		{ShipName: "Vanguard", Callsign: "Pilot", Choice: "boost", Chapter: 2, PowerCellsLeft: 2, PacketsSent: 1},
		{ShipName: "Vanguard", Callsign: "Pilot", Choice: "manual", Chapter: 3, PowerCellsLeft: 2, PacketsSent: 1},
		{ShipName: "Dauntless", Callsign: "Ace", Choice: "boost", Chapter: 4, PowerCellsLeft: 1, PacketsSent: 2},
	}
	for _, e := range entries {
		if _, err := store.SaveEntry(e); err != nil {
			t.Fatalf("SaveEntry() failed: %v", err)
		}
	}

	got, err := store.RecentEntries(10)
	if err != nil {
		t.Fatalf("RecentEntries() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(got))
	}

	// Newest first
	if got[0].ShipName != "Dauntless" || got[0].Choice != "boost" {
		t.Errorf("Expected newest entry first, got %+v", got[0])
	}
	if got[2].Chapter != 2 {
		t.Errorf("Expected oldest entry last, got %+v", got[2])
	}
}

func TestStoreRecentEntriesLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveEntry(JournalEntry{ShipName: "Vanguard", Callsign: "Pilot", Choice: "boost", Chapter: i + 2})
	}

	got, err := store.RecentEntries(3)
	if err != nil {
		t.Fatalf("RecentEntries() failed: %v", err)
	}

	if len(got) != 3 {
		t.Errorf("Expected 3 entries with limit, got %d", len(got))
	}
	if got[0].Chapter != 6 {
		t.Errorf("Expected most recent chapter 6 first, got %d", got[0].Chapter)
	}
}

func TestStoreCountAndClear(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveEntry(JournalEntry{ShipName: "Vanguard", Callsign: "Pilot", Choice: "boost", Chapter: 2})
	store.SaveEntry(JournalEntry{ShipName: "Vanguard", Callsign: "Pilot", Choice: "manual", Chapter: 3})

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	got, _ := store.RecentEntries(10)
	if len(got) != 0 {
		t.Errorf("Expected 0 entries after clear, got %d", len(got))
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
