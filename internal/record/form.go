package record

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

// ErrUnknownField indicates SetField was called with a name the schema does not declare.
var ErrUnknownField = errors.New("unknown form field")

type formState struct {
	draft  Draft
	editID ID
	errors validation.Errors
}

func newFormState[T Record](schema Schema[T]) formState {
	return formState{draft: schema.EmptyDraft()}
}

func (f *formState) reset(schema interface{ EmptyDraft() Draft }) {
	f.draft = schema.EmptyDraft()
	f.editID = 0
	f.errors = nil
}

// FormState is a snapshot of the form for presentation. Secret fields are
// never echoed back.
type FormState struct {
	Draft Draft `json:"draft"`
	// EditIndex is the position being edited, nil for a new record.
	EditIndex *int              `json:"editIndex"`
	Errors    validation.Errors `json:"errors,omitempty"`
}

// Form returns the current form snapshot.
func (m *Manager[T]) Form() FormState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.formSnapshot()
}

// SetField stores value for name after applying the field normalizer.
func (m *Manager[T]) SetField(name, value string) (FormState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.schema.hasField(name) {
		return m.formSnapshot(), fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if fn, ok := m.schema.Normalize[name]; ok && fn != nil {
		value = fn(value)
	}
	m.form.draft[name] = value
	return m.formSnapshot(), nil
}

// StartEdit loads the record at index into the form, blanking secret fields.
func (m *Manager[T]) StartEdit(index int) (FormState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.store.At(index)
	if err != nil {
		return m.formSnapshot(), err
	}

	draft := m.schema.EmptyDraft()
	for k, v := range m.schema.Draft(r) {
		draft[k] = v
	}
	for _, secret := range m.schema.Secret {
		draft[secret] = ""
	}

	m.form.draft = draft
	m.form.editID = r.RecordID()
	m.form.errors = nil
	return m.formSnapshot(), nil
}

// Submit validates the draft and commits it as a new record or as the
// replacement of the record being edited. On validation failure the draft is
// kept and the returned error is validation.Errors.
func (m *Manager[T]) Submit() (T, error) {
	m.mu.Lock()

	var (
		r   T
		ev  Event[T]
		err error
	)
	if m.form.editID == 0 {
		r, ev, err = m.create(m.form.draft)
	} else if i := m.store.IndexOf(m.form.editID); i < 0 {
		m.form.reset(m.schema)
		err = ErrNotFound
	} else {
		r, ev, err = m.update(i, m.form.draft)
	}

	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		m.form.errors = verrs
	case err == nil:
		m.form.reset(m.schema)
	}
	subs := m.subscribers
	m.mu.Unlock()

	if err != nil {
		return r, err
	}
	m.logger.Debug("form submitted", zap.String("entity", m.schema.Entity), zap.String("kind", string(ev.Kind)))
	notify(subs, ev)
	return r, nil
}

// Cancel discards the draft and leaves edit mode. It is idempotent.
func (m *Manager[T]) Cancel() FormState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form.reset(m.schema)
	return m.formSnapshot()
}

func (m *Manager[T]) formSnapshot() FormState {
	fs := FormState{Draft: m.form.draft.Clone()}
	for _, secret := range m.schema.Secret {
		if fs.Draft[secret] != "" {
			fs.Draft[secret] = ""
		}
	}
	if m.form.editID != 0 {
		if i := m.store.IndexOf(m.form.editID); i >= 0 {
			fs.EditIndex = &i
		}
	}
	if len(m.form.errors) > 0 {
		errs := make(validation.Errors, len(m.form.errors))
		for k, v := range m.form.errors {
			errs[k] = v
		}
		fs.Errors = errs
	}
	return fs
}
