package players

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteSource implements Source backed by a SQLite database. Records are
// stored as one JSON document per wallet.
type SQLiteSource struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS players (
	wallet     TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// NewSQLiteSource opens (creating if needed) the database at path
func NewSQLiteSource(path string) (*SQLiteSource, error) {
	if path == "" {
		return nil, fmt.Errorf("empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// modernc sqlite is happiest with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteSource{db: db}, nil
}

// LoadPlayer implements Source
func (s *SQLiteSource) LoadPlayer(wallet string) (*Player, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM players WHERE wallet = ?`, wallet).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	var p Player
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decoding player record: %w", err)
	}
	return &p, nil
}

// SavePlayer implements Source
func (s *SQLiteSource) SavePlayer(p *Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding player record: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO players (wallet, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(wallet) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		p.Wallet, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving player: %w", err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
