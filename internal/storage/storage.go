package storage

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/WiebeCnossen/draughts/internal/search"
)

// Storage keys
const (
	keyTable    = "transposition_table"
	keySettings = "engine_settings"
)

// JudgeKind names one of the evaluator families a caller can select.
type JudgeKind int

const (
	JudgeRandAap JudgeKind = iota
	JudgeSlonenok
	JudgeSherlock
)

// Settings stores the engine configuration a caller last chose, so a
// restarted process resumes at the same strength and worker count.
type Settings struct {
	Judge        JudgeKind `json:"judge"`
	MaxNodes     int       `json:"max_nodes"`
	Workers      int       `json:"workers"`
	UsePersisted bool      `json:"use_persisted_table"`
}

// DefaultSettings returns a reasonable starting configuration.
func DefaultSettings() *Settings {
	return &Settings{Judge: JudgeSlonenok, MaxNodes: 2_000_000, Workers: 4, UsePersisted: true}
}

// Storage wraps BadgerDB for persisting transposition-table snapshots and
// engine settings between runs.
type Storage struct {
	db *badger.DB
}

// Open opens (creating if absent) the on-disk database under
// GetDatabaseDir.
func Open() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolve database directory")
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger database")
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveSettings persists the engine configuration.
func (s *Storage) SaveSettings(settings *Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "marshal engine settings")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySettings), data)
	})
}

// LoadSettings loads the engine configuration, returning defaults if none
// was ever saved.
func (s *Storage) LoadSettings() (*Settings, error) {
	settings := DefaultSettings()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySettings))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, settings)
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "load engine settings")
	}

	return settings, nil
}

// SaveTable persists every record of t, overwriting whatever snapshot was
// previously stored. Intended as a checkpoint between analysis sessions,
// not a per-move write: callers take t.Snapshot() at a point no search is
// in flight.
func (s *Storage) SaveTable(t *search.Table) error {
	data, err := json.Marshal(t.Snapshot())
	if err != nil {
		return errors.Wrap(err, "marshal transposition table")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyTable), data)
	})
}

// LoadTable returns a fresh Table restored from the last snapshot saved by
// SaveTable, or an empty Table if none exists yet.
func (s *Storage) LoadTable() (*search.Table, error) {
	table := search.NewTable()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyTable))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var records []search.Record
			if err := json.Unmarshal(val, &records); err != nil {
				return err
			}
			table.Restore(records)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "load transposition table")
	}

	return table, nil
}
