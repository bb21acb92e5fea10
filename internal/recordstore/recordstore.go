package recordstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"bidding-marketplace/internal/markerrors"
)

// Record is any entity persisted by a Store.
type Record interface {
	RecordID() int64
}

// Store is a concurrency-safe, ordered record set persisted as one JSON
// array on disk. Records keep their insertion order, which is the iteration
// order callers observe. Every write rewrites the whole file through a temp
// file and rename, so a failed write leaves the previous contents intact.
type Store[T Record] struct {
	mu      sync.RWMutex
	path    string
	records []T
}

// Open loads the store at path, creating an empty one if the file does not
// exist yet.
func Open[T Record](path string) (*Store[T], error) {
	s := &Store[T]{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("open store %s: %w: %v", path, markerrors.ErrStore, err)
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return nil, fmt.Errorf("open store %s: %w: %v", path, markerrors.ErrStore, err)
	}
	return s, nil
}

// List returns a copy of all records in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.records...)
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("get record %d: %w", id, markerrors.ErrNotFound)
}

// Append adds a record at the end and persists the set.
func (s *Store[T]) Append(rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(append([]T(nil), s.records...), rec)
	if err := s.persist(next); err != nil {
		return err
	}
	s.records = next
	return nil
}

// Replace overwrites the record with rec's id, keeping its position.
func (s *Store[T]) Replace(rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, r := range s.records {
		if r.RecordID() == rec.RecordID() {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("replace record %d: %w", rec.RecordID(), markerrors.ErrNotFound)
	}

	next := append([]T(nil), s.records...)
	next[idx] = rec
	if err := s.persist(next); err != nil {
		return err
	}
	s.records = next
	return nil
}

// Delete removes the record with the given id and returns it.
func (s *Store[T]) Delete(id int64) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	idx := -1
	for i, r := range s.records {
		if r.RecordID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return zero, fmt.Errorf("delete record %d: %w", id, markerrors.ErrNotFound)
	}

	deleted := s.records[idx]
	next := append(append([]T(nil), s.records[:idx]...), s.records[idx+1:]...)
	if err := s.persist(next); err != nil {
		return zero, err
	}
	s.records = next
	return deleted, nil
}

// Update runs fn on the current record set and atomically installs the set
// it returns. The read-compute-write cycle holds the store lock throughout,
// so no other writer can interleave. An error from fn aborts the update
// without touching disk.
func (s *Store[T]) Update(fn func([]T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(append([]T(nil), s.records...))
	if err != nil {
		return err
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.records = next
	return nil
}

// MaxID returns the highest record id in the store, or 0 when empty.
func (s *Store[T]) MaxID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var max int64
	for _, r := range s.records {
		if r.RecordID() > max {
			max = r.RecordID()
		}
	}
	return max
}

// persist writes records to a temp file in the store's directory and renames
// it over the target. Callers must hold the write lock.
func (s *Store[T]) persist(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("persist %s: %w: %v", s.path, markerrors.ErrStore, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("persist %s: %w: %v", s.path, markerrors.ErrStore, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("persist %s: %w: %v", s.path, markerrors.ErrStore, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("persist %s: %w: %v", s.path, markerrors.ErrStore, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("persist %s: %w: %v", s.path, markerrors.ErrStore, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("persist %s: %w: %v", s.path, markerrors.ErrStore, err)
	}
	return nil
}
