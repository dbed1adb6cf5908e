package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"

	"hoarder/internal/domain"
	"hoarder/internal/ports"
)

const (
	schemaVersion = "1"

	// similaritiesKey is the single key the whole cache is stored under
	similaritiesKey = "similarities"
)

// Store implements ports.SimilarityStore on a SQLite key/value table
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements SimilarityStore
var _ ports.SimilarityStore = (*Store)(nil)

// Open opens (creating if needed) the store at dbPath. An empty path
// selects the default location under the XDG data directory.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultPath()
	}
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "getting home directory")
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, errors.Wrap(err, "creating cache directory")
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "opening cache database")
	}
	// one writer; the traversal is sequential anyway
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "setting up cache database")
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "updating cache metadata")
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// DefaultPath returns $XDG_DATA_HOME/hoarder/cache.db
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "hoarder", "cache.db")
}

// Path returns the database file location
func (s *Store) Path() string {
	return s.dbPath
}

// Load reads the cached entries. A missing key yields an empty slice.
func (s *Store) Load(ctx context.Context) ([]domain.CacheEntry, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, similaritiesKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading similarity cache")
	}

	var entries []domain.CacheEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, errors.Wrap(err, "decoding similarity cache")
	}
	return entries, nil
}

// Save replaces the stored entries
func (s *Store) Save(ctx context.Context, entries []domain.CacheEntry) error {
	if entries == nil {
		entries = []domain.CacheEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "encoding similarity cache")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`,
		similaritiesKey, string(payload))
	if err != nil {
		return errors.Wrap(err, "writing similarity cache")
	}
	return nil
}

// SchemaVersion returns the version recorded in the meta table
func (s *Store) SchemaVersion(ctx context.Context) (string, error) {
	var version string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	if err != nil {
		return "", errors.Wrap(err, "reading schema version")
	}
	return version, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
