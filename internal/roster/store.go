package roster

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/coppermind/quill/mention"
)

const schemaSQL = `
-- Mentionable members known to this host
CREATE TABLE IF NOT EXISTS roster_members (
  address TEXT PRIMARY KEY,                -- stable identifier, e.g. "0xAB"
  label TEXT NOT NULL,                     -- display name shown in suggestions
  avatar TEXT NOT NULL DEFAULT '',         -- optional short avatar glyph
  added_at INTEGER NOT NULL,               -- unix ms
  last_seen INTEGER NOT NULL DEFAULT 0     -- unix ms, bumped when they send
);

CREATE INDEX IF NOT EXISTS idx_roster_members_seen ON roster_members(last_seen DESC);
`

// Member is one mentionable entry in the host's roster.
type Member struct {
	Address  string `json:"address"`
	Label    string `json:"label"`
	Avatar   string `json:"avatar,omitempty"`
	AddedAt  int64  `json:"added_at,omitempty"`
	LastSeen int64  `json:"last_seen,omitempty"`
}

// Store is the SQLite-backed roster directory.
type Store struct {
	db *sql.DB
}

// Open opens or creates the roster database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err := conn.Exec(schemaSQL); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Store{db: conn}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert adds or refreshes a member. Label and avatar follow the newest
// import; last_seen is preserved across updates.
func (s *Store) Upsert(m Member) error {
	if m.Address == "" || m.Label == "" {
		return fmt.Errorf("roster member needs address and label")
	}

	_, err := s.db.Exec(`
		INSERT INTO roster_members (address, label, avatar, added_at, last_seen)
		VALUES (?, ?, ?, ?, 0)
		ON CONFLICT(address) DO UPDATE SET label = excluded.label, avatar = excluded.avatar
	`, m.Address, m.Label, m.Avatar, time.Now().UnixMilli())
	return err
}

// Touch records that a member was just seen sending a message.
func (s *Store) Touch(address string, seen time.Time) error {
	_, err := s.db.Exec(`
		UPDATE roster_members SET last_seen = ? WHERE address = ?
	`, seen.UnixMilli(), address)
	return err
}

// Members returns the roster ordered most recently seen first, then by
// label. That order feeds the unfiltered suggestion list.
func (s *Store) Members() ([]Member, error) {
	rows, err := s.db.Query(`
		SELECT address, label, avatar, added_at, last_seen
		FROM roster_members
		ORDER BY last_seen DESC, label COLLATE NOCASE ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.Address, &m.Label, &m.Avatar, &m.AddedAt, &m.LastSeen); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

// Candidates returns the roster as suggestion candidates.
func (s *Store) Candidates() ([]mention.Candidate, error) {
	members, err := s.Members()
	if err != nil {
		return nil, err
	}

	candidates := make([]mention.Candidate, 0, len(members))
	for _, m := range members {
		candidates = append(candidates, mention.Candidate{
			Entity: mention.Entity{Label: m.Label, ID: m.Address},
			Avatar: m.Avatar,
		})
	}
	return candidates, nil
}
