// Package store persists the application's collections in a Badger
// key-value database.
//
// The record layout is fixed: three string keys, each holding one JSON
// record. The layout predates this implementation and must round-trip with
// data written by earlier versions, so the keys and field names never change.
package store

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Store keys. One record per key; collections are serialized whole.
const (
	// KeyUsers holds the serialized array of user records.
	KeyUsers = "musicUsers"
	// KeySession holds the serialized record of the logged-in user, or is absent.
	KeySession = "currentUser"
	// KeySongs holds the serialized array of song records.
	KeySongs = "musicSongs"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New opens the database at path and returns a Store.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("database opened", "path", path)
	}

	return &Store{
		db:     db,
		logger: logger,
	}, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing database")
	}
	return s.db.Close()
}

// Helper methods for raw record access.

// get retrieves the raw value stored under key. If the key is absent,
// ok is false and err is nil.
func (s *Store) get(key string) (val []byte, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, true, nil
}

// set stores a raw value under key. Last write wins.
func (s *Store) set(key string, val []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// delete removes a key. Deleting an absent key is not an error.
func (s *Store) delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
