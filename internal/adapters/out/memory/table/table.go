// Package table provides the ordered row containers backing the in-memory store.
// Rows are plain values; callers store DTO copies, never domain aggregates, so
// nothing outside the store can alias stored state.
package table

import "errors"

var (
	// ErrKeyExists is returned by Append and Prepend for a key already stored.
	ErrKeyExists = errors.New("key already exists")
	// ErrKeyNotFound is returned by Replace for an unknown key.
	ErrKeyNotFound = errors.New("key not found")
)

// Table is an insertion-ordered map of rows. It is not safe for concurrent use;
// the store serialises access.
type Table[V any] struct {
	keys []string
	rows map[string]V
}

func New[V any]() *Table[V] {
	return &Table[V]{rows: make(map[string]V)}
}

// Append adds a row at the end.
func (t *Table[V]) Append(key string, row V) error {
	if _, ok := t.rows[key]; ok {
		return ErrKeyExists
	}
	t.keys = append(t.keys, key)
	t.rows[key] = row
	return nil
}

// Prepend adds a row at the front.
func (t *Table[V]) Prepend(key string, row V) error {
	if _, ok := t.rows[key]; ok {
		return ErrKeyExists
	}
	t.keys = append([]string{key}, t.keys...)
	t.rows[key] = row
	return nil
}

// Replace overwrites an existing row in place.
func (t *Table[V]) Replace(key string, row V) error {
	if _, ok := t.rows[key]; !ok {
		return ErrKeyNotFound
	}
	t.rows[key] = row
	return nil
}

func (t *Table[V]) Get(key string) (V, bool) {
	row, ok := t.rows[key]
	return row, ok
}

// All returns the rows in table order.
func (t *Table[V]) All() []V {
	rows := make([]V, 0, len(t.keys))
	for _, key := range t.keys {
		rows = append(rows, t.rows[key])
	}
	return rows
}

// Find returns the first row, in table order, matching the predicate.
func (t *Table[V]) Find(match func(V) bool) (V, bool) {
	for _, key := range t.keys {
		if row := t.rows[key]; match(row) {
			return row, true
		}
	}
	var zero V
	return zero, false
}

func (t *Table[V]) Len() int {
	return len(t.keys)
}

// Clone returns a copy that shares no containers with t.
// Rows are copied by value.
func (t *Table[V]) Clone() *Table[V] {
	clone := &Table[V]{
		keys: make([]string, len(t.keys)),
		rows: make(map[string]V, len(t.rows)),
	}
	copy(clone.keys, t.keys)
	for key, row := range t.rows {
		clone.rows[key] = row
	}
	return clone
}

// Slot holds at most one row.
type Slot[V any] struct {
	row    V
	filled bool
}

func NewSlot[V any]() *Slot[V] {
	return &Slot[V]{}
}

func (s *Slot[V]) Get() (V, bool) {
	return s.row, s.filled
}

func (s *Slot[V]) Set(row V) {
	s.row = row
	s.filled = true
}

func (s *Slot[V]) Clear() {
	var zero V
	s.row = zero
	s.filled = false
}

func (s *Slot[V]) Clone() *Slot[V] {
	clone := *s
	return &clone
}
