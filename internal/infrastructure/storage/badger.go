package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	badger "github.com/dgraph-io/badger/v4"

	"svw.info/brainbreak/internal/domain"
)

// keyPrefix namespaces puzzle records inside the key space.
const keyPrefix = "puzzle/"

// ErrNotFound is returned when no puzzle exists under the requested ID.
var ErrNotFound = errors.New("puzzle not found")

// Badger archives generated puzzle instances as JSON values in an embedded
// BadgerDB. Only generator output is stored; player grids never touch disk.
type Badger struct {
	db *badger.DB
}

// NewBadger opens (or creates) an archive under dir.
func NewBadger(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening puzzle archive: %w", err)
	}
	return &Badger{db: db}, nil
}

// NewInMemory opens a non-persistent archive, for tests.
func NewInMemory() (*Badger, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening in-memory archive: %w", err)
	}
	return &Badger{db: db}, nil
}

func (s *Badger) Close() error { return s.db.Close() }

func keyFor(id string) []byte {
	return []byte(keyPrefix + strings.TrimSpace(id))
}

func (s *Badger) Save(ctx context.Context, p *domain.PuzzleInstance) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding puzzle %s: %w", p.ID, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyFor(p.ID), val)
	})
}

func (s *Badger) Load(ctx context.Context, id string) (*domain.PuzzleInstance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var p domain.PuzzleInstance
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyFor(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Badger) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	metas := make([]domain.PuzzleMeta, 0, 16)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var p domain.PuzzleInstance
				if err := json.Unmarshal(val, &p); err != nil {
					return err
				}
				metas = append(metas, p.Meta())
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Newest first for the listing.
	sort.Slice(metas, func(i, j int) bool { return metas[i].CreatedAt > metas[j].CreatedAt })
	return metas, nil
}
