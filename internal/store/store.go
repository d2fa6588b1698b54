// Package store persists UI client settings as a flat key to JSON value
// mapping in an embedded bolt database. Values round-trip byte-exact: the
// store never re-encodes what the client handed it.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

const (
	// DBFileName is the settings database file inside the data directory.
	DBFileName = "settings.db"

	// SettingsBucket holds the flat key/value settings mapping.
	SettingsBucket = "settings"

	openTimeout = 10 * time.Second
)

// Store wraps bolt database operations for the settings file. The database is
// opened lazily on first use so that an unopenable store surfaces as a
// per-command failure rather than a startup failure.
type Store struct {
	dataDir string
	logger  *zap.SugaredLogger

	openOnce sync.Once
	db       *bbolt.DB
	openErr  error
}

// New creates a settings store rooted at dataDir. The database file is not
// touched until the first Get or Set.
func New(dataDir string, logger *zap.SugaredLogger) *Store {
	return &Store{
		dataDir: dataDir,
		logger:  logger,
	}
}

// ensureOpen opens the database and creates the settings bucket. Concurrent
// callers share one open attempt; its error is sticky for the process
// lifetime, matching the "store cannot be opened" failure mode.
func (s *Store) ensureOpen() (*bbolt.DB, error) {
	s.openOnce.Do(func() {
		if err := os.MkdirAll(s.dataDir, 0755); err != nil {
			s.openErr = fmt.Errorf("failed to create data directory: %w", err)
			return
		}

		dbPath := filepath.Join(s.dataDir, DBFileName)

		db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{
			Timeout: openTimeout,
		})
		if err != nil {
			s.openErr = fmt.Errorf("failed to open settings store: %w", err)
			s.logger.Warnw("Settings store unavailable", "path", dbPath, "error", err)
			return
		}

		err = db.Update(func(tx *bbolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists([]byte(SettingsBucket))
			return err
		})
		if err != nil {
			db.Close()
			s.openErr = fmt.Errorf("failed to initialize settings bucket: %w", err)
			return
		}

		s.db = db
		s.logger.Debugw("Settings store opened", "path", dbPath)
	})

	return s.db, s.openErr
}

// Get returns the stored JSON value for key, or nil if the key was never set.
func (s *Store) Get(key string) (json.RawMessage, error) {
	db, err := s.ensureOpen()
	if err != nil {
		return nil, err
	}

	var value json.RawMessage
	err = db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(SettingsBucket)).Get([]byte(key))
		if data != nil {
			// Copy out: bolt pages are only valid inside the transaction.
			value = append(json.RawMessage(nil), data...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read settings key %q: %w", key, err)
	}

	return value, nil
}

// Set stores a JSON value under key. Concurrent writers are serialized by
// bolt's single update transaction; last write wins per key.
func (s *Store) Set(key string, value json.RawMessage) error {
	db, err := s.ensureOpen()
	if err != nil {
		return err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(SettingsBucket)).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to save settings key %q: %w", key, err)
	}

	return nil
}

// Close closes the database if it was ever opened.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
