package record

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Tally is a running aggregate kept in step with the store. Add and Remove
// are always called under the manager lock together with the list mutation.
type Tally[T Record] interface {
	Add(r T)
	Remove(r T)
}

// EventKind classifies a committed mutation.
type EventKind string

const (
	Created EventKind = "created"
	Updated EventKind = "updated"
	Deleted EventKind = "deleted"
)

// Event describes a committed mutation. Previous is set for updates.
type Event[T Record] struct {
	Kind     EventKind
	Record   T
	Previous *T
}

// Option configures a Manager.
type Option[T Record] func(*Manager[T])

// WithTally attaches a running aggregate.
func WithTally[T Record](t Tally[T]) Option[T] {
	return func(m *Manager[T]) { m.tallies = append(m.tallies, t) }
}

// WithLogger sets the manager logger.
func WithLogger[T Record](logger *zap.Logger) Option[T] {
	return func(m *Manager[T]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Manager owns one entity store and its form. All methods are safe for
// concurrent use; mutations are serialised.
type Manager[T Record] struct {
	mu          sync.RWMutex
	schema      Schema[T]
	store       *Store[T]
	lastID      ID
	tallies     []Tally[T]
	form        formState
	subscribers []func(Event[T])
	logger      *zap.Logger
}

// NewManager builds a manager for schema.
func NewManager[T Record](schema Schema[T], opts ...Option[T]) *Manager[T] {
	m := &Manager[T]{
		schema: schema,
		store:  NewStore[T](),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.form = newFormState(schema)
	return m
}

// Schema returns the entity schema.
func (m *Manager[T]) Schema() Schema[T] {
	return m.schema
}

// Subscribe registers fn for commit events. Events are delivered after the
// manager lock is released, in commit order per goroutine.
func (m *Manager[T]) Subscribe(fn func(Event[T])) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Validate runs the schema rules against d without touching the store.
func (m *Manager[T]) Validate(d Draft, editing bool) error {
	return m.schema.Validate(d.Trimmed(), editing).Err()
}

// Create validates d and appends a new record.
func (m *Manager[T]) Create(d Draft) (T, error) {
	m.mu.Lock()
	r, ev, err := m.create(d)
	subs := m.subscribers
	m.mu.Unlock()

	if err != nil {
		return r, err
	}
	notify(subs, ev)
	return r, nil
}

// Update validates d and replaces the record at index.
func (m *Manager[T]) Update(index int, d Draft) (T, error) {
	m.mu.Lock()
	r, ev, err := m.update(index, d)
	subs := m.subscribers
	m.mu.Unlock()

	if err != nil {
		return r, err
	}
	notify(subs, ev)
	return r, nil
}

// UpdateByID validates d and replaces the record carrying id.
func (m *Manager[T]) UpdateByID(id ID, d Draft) (T, error) {
	m.mu.Lock()
	var (
		r   T
		ev  Event[T]
		err error
	)
	if i := m.store.IndexOf(id); i < 0 {
		err = ErrNotFound
	} else {
		r, ev, err = m.update(i, d)
	}
	subs := m.subscribers
	m.mu.Unlock()

	if err != nil {
		return r, err
	}
	notify(subs, ev)
	return r, nil
}

// Delete removes the record with id. Callers confirm the destructive action
// before calling. A form editing the removed record is reset.
func (m *Manager[T]) Delete(id ID) (T, error) {
	m.mu.Lock()
	removed, err := m.store.Remove(id)
	if err == nil {
		for _, t := range m.tallies {
			t.Remove(removed)
		}
		if m.form.editID == id {
			m.form.reset(m.schema)
		}
	}
	subs := m.subscribers
	m.mu.Unlock()

	if err != nil {
		return removed, err
	}
	m.logger.Info("record deleted", zap.String("entity", m.schema.Entity), zap.Int64("id", int64(id)))
	notify(subs, Event[T]{Kind: Deleted, Record: removed})
	return removed, nil
}

// DeleteAt removes the record at index.
func (m *Manager[T]) DeleteAt(index int) (T, error) {
	m.mu.RLock()
	r, err := m.store.At(index)
	m.mu.RUnlock()
	if err != nil {
		return r, err
	}
	return m.Delete(r.RecordID())
}

// Len returns the record count.
func (m *Manager[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Len()
}

// List returns a snapshot of all records in order.
func (m *Manager[T]) List() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.All()
}

// Get returns the record with id.
func (m *Manager[T]) Get(id ID) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Get(id)
}

// At returns the record at index.
func (m *Manager[T]) At(index int) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.At(index)
}

// IndexOf returns the position of id, or -1.
func (m *Manager[T]) IndexOf(id ID) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.IndexOf(id)
}

// Search returns records whose search fields contain query, ignoring case.
// An empty query returns every record.
func (m *Manager[T]) Search(query string) []T {
	all := m.List()
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" || m.schema.Search == nil {
		return all
	}

	out := make([]T, 0, len(all))
	for _, r := range all {
		for _, v := range m.schema.Search(r) {
			if strings.Contains(strings.ToUpper(v), query) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Read runs fn with a copy of the current records while holding the read
// lock, so tally state read inside fn matches the list.
func (m *Manager[T]) Read(fn func(records []T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(m.store.All())
}

func (m *Manager[T]) create(d Draft) (T, Event[T], error) {
	var zero T
	clean := d.Trimmed()
	if errs := m.schema.Validate(clean, false); len(errs) > 0 {
		m.logger.Debug("draft rejected", zap.String("entity", m.schema.Entity), zap.Any("errors", errs))
		return zero, Event[T]{}, errs
	}

	m.lastID++
	r := m.schema.Build(m.lastID, clean, nil)
	m.store.Append(r)
	for _, t := range m.tallies {
		t.Add(r)
	}

	m.logger.Debug("record created", zap.String("entity", m.schema.Entity), zap.Int64("id", int64(r.RecordID())))
	return r, Event[T]{Kind: Created, Record: r}, nil
}

func (m *Manager[T]) update(index int, d Draft) (T, Event[T], error) {
	var zero T
	prev, err := m.store.At(index)
	if err != nil {
		return zero, Event[T]{}, err
	}

	clean := d.Trimmed()
	if errs := m.schema.Validate(clean, true); len(errs) > 0 {
		m.logger.Debug("draft rejected", zap.String("entity", m.schema.Entity), zap.Any("errors", errs))
		return zero, Event[T]{}, errs
	}

	r := m.schema.Build(prev.RecordID(), clean, &prev)
	if _, err := m.store.Replace(index, r); err != nil {
		return zero, Event[T]{}, err
	}
	for _, t := range m.tallies {
		t.Remove(prev)
		t.Add(r)
	}

	m.logger.Debug("record updated", zap.String("entity", m.schema.Entity), zap.Int64("id", int64(r.RecordID())))
	return r, Event[T]{Kind: Updated, Record: r, Previous: &prev}, nil
}

func notify[T Record](subs []func(Event[T]), ev Event[T]) {
	for _, fn := range subs {
		fn(ev)
	}
}
