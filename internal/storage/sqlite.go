// Package storage provides SQLite-based persistence for the voyage
// journal. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Persistence is best-effort throughout; the game runs
// fully without a store.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// JournalEntry records the outcome of one completed mission.
type JournalEntry struct {
	ID             int64
	ShipName       string
	Callsign       string
	Choice         string
	Chapter        int
	PowerCellsLeft int
	PacketsSent    int
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ship_name TEXT NOT NULL,
			callsign TEXT NOT NULL,
			choice TEXT NOT NULL,
			chapter INTEGER NOT NULL,
			power_cells_left INTEGER NOT NULL,
			packets_sent INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_journal_created ON journal(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveEntry appends a mission outcome to the journal.
// Returns the ID of the inserted record.
func (s *Store) SaveEntry(e JournalEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO journal (ship_name, callsign, choice, chapter, power_cells_left, packets_sent)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ShipName, e.Callsign, e.Choice, e.Chapter, e.PowerCellsLeft, e.PacketsSent,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save journal entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentEntries retrieves the most recent journal entries, newest first.
func (s *Store) RecentEntries(limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, ship_name, callsign, choice, chapter, power_cells_left, packets_sent, created_at
		 FROM journal
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ShipName, &e.Callsign, &e.Choice,
			&e.Chapter, &e.PowerCellsLeft, &e.PacketsSent, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Count returns the number of journal entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM journal").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count journal entries: %w", err)
	}
	return n, nil
}

// Clear deletes all journal entries.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM journal")
	if err != nil {
		return fmt.Errorf("storage: cannot clear journal: %w", err)
	}
	return nil
}
