// Package badger keeps the similarity cache in an embedded BadgerDB.
package badger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"hoarder/internal/domain"
	"hoarder/internal/ports"
)

var similaritiesKey = []byte("similarities")

// Config holds configuration for the Badger store
type Config struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string
	// InMemory keeps everything in RAM, for tests.
	InMemory bool
	// SyncWrites fsyncs every write.
	SyncWrites bool
	// Logger receives Badger's internal logging; nil silences it.
	Logger *zap.SugaredLogger
}

// DefaultConfig returns the on-disk configuration for path
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration that never touches disk
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// DefaultPath returns $XDG_DATA_HOME/hoarder/badger
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "hoarder", "badger")
}

// zapLogger adapts a zap logger to Badger's Logger interface
type zapLogger struct {
	logger *zap.SugaredLogger
}

func (l *zapLogger) Errorf(format string, args ...interface{})   { l.logger.Errorf(format, args...) }
func (l *zapLogger) Warningf(format string, args ...interface{}) { l.logger.Warnf(format, args...) }
func (l *zapLogger) Infof(format string, args ...interface{})    { l.logger.Debugf(format, args...) }
func (l *zapLogger) Debugf(format string, args ...interface{})   { l.logger.Debugf(format, args...) }

// Store implements ports.SimilarityStore on a single Badger key
type Store struct {
	db *badger.DB
}

// Ensure Store implements SimilarityStore
var _ ports.SimilarityStore = (*Store)(nil)

// Open opens the Badger database described by cfg
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			cfg.Path = DefaultPath()
		}
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, errors.Wrapf(err, "creating badger directory %s", cfg.Path)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&zapLogger{logger: cfg.Logger.Named("badger")})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening badger database")
	}
	return &Store{db: db}, nil
}

// Load reads the cached entries. A missing key yields an empty slice.
func (s *Store) Load(ctx context.Context) ([]domain.CacheEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var payload []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(similaritiesKey)
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading similarity cache")
	}

	var entries []domain.CacheEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, errors.Wrap(err, "decoding similarity cache")
	}
	return entries, nil
}

// Save replaces the stored entries
func (s *Store) Save(ctx context.Context, entries []domain.CacheEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.CacheEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "encoding similarity cache")
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(similaritiesKey, payload)
	})
	if err != nil {
		return errors.Wrap(err, "writing similarity cache")
	}
	return nil
}

// Close closes the database and releases its directory lock
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
