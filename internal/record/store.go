package record

import "errors"

// ErrNotFound indicates no record carries the requested id.
var ErrNotFound = errors.New("record not found")

// ErrIndexOutOfRange indicates a positional lookup outside the store.
var ErrIndexOutOfRange = errors.New("record index out of range")

// ID identifies a record within its store.
type ID int64

// Record is implemented by every entity kept in a Store.
type Record interface {
	RecordID() ID
}

// Store is an ordered list of records. It is not safe for concurrent use;
// Manager serialises access.
type Store[T Record] struct {
	items []T
}

// NewStore returns an empty store.
func NewStore[T Record]() *Store[T] {
	return &Store[T]{}
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Append adds r at the tail.
func (s *Store[T]) Append(r T) {
	s.items = append(s.items, r)
}

// At returns the record at index i.
func (s *Store[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(s.items) {
		return zero, ErrIndexOutOfRange
	}
	return s.items[i], nil
}

// Replace swaps the record at index i and returns the previous one.
func (s *Store[T]) Replace(i int, r T) (T, error) {
	old, err := s.At(i)
	if err != nil {
		return old, err
	}
	s.items[i] = r
	return old, nil
}

// RemoveAt deletes the record at index i, preserving order.
func (s *Store[T]) RemoveAt(i int) (T, error) {
	old, err := s.At(i)
	if err != nil {
		return old, err
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return old, nil
}

// IndexOf returns the position of id, or -1.
func (s *Store[T]) IndexOf(id ID) int {
	for i, r := range s.items {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// Get returns the record with id.
func (s *Store[T]) Get(id ID) (T, error) {
	var zero T
	i := s.IndexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	return s.items[i], nil
}

// Remove deletes the record with id.
func (s *Store[T]) Remove(id ID) (T, error) {
	i := s.IndexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	return s.RemoveAt(i)
}

// All returns a copy of the records in order.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
