package editor

import (
	"errors"
	"sync"
	"time"

	"chefpay/internal/menu"

	"github.com/google/uuid"
)

var (
	ErrNoEditor         = errors.New("no menu editor is open for this canteen")
	ErrSubmitInProgress = errors.New("menu submit already in progress")
)

// Editor is one user's open weekly menu. All access to the assignment goes
// through the editor's lock; mutations are refused while a submit is in flight.
type Editor struct {
	ID        uuid.UUID
	UserID    string
	CanteenID int
	OpenedAt  time.Time

	mu         sync.Mutex
	assignment *menu.Assignment
	submitting bool
	loadErr    error
}

func newEditor(userID string, a *menu.Assignment, loadErr error) *Editor {
	return &Editor{
		ID:         uuid.New(),
		UserID:     userID,
		CanteenID:  a.TenantID(),
		OpenedAt:   time.Now().UTC(),
		assignment: a,
		loadErr:    loadErr,
	}
}

// State is what the dashboard renders for an open editor.
type State struct {
	SessionID  uuid.UUID             `json:"session_id"`
	OpenedAt   time.Time             `json:"opened_at"`
	Assignment menu.Snapshot         `json:"assignment"`
	Submitting bool                  `json:"submitting"`
	Validation menu.ValidationErrors `json:"validation,omitempty"`
	LoadError  string                `json:"load_error,omitempty"`
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := State{
		SessionID:  e.ID,
		OpenedAt:   e.OpenedAt,
		Assignment: e.assignment.Snapshot(),
		Submitting: e.submitting,
		Validation: e.assignment.Validate(),
	}
	if e.loadErr != nil {
		st.LoadError = e.loadErr.Error()
	}
	return st
}

// Assignment returns a copy of the current assignment.
func (e *Editor) Assignment() *menu.Assignment {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.assignment.Clone()
}

func (e *Editor) mutate(fn func(a *menu.Assignment) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.submitting {
		return ErrSubmitInProgress
	}
	return fn(e.assignment)
}

func (e *Editor) SetMode(mode menu.Mode) error {
	return e.mutate(func(a *menu.Assignment) error { return a.SetMode(mode) })
}

func (e *Editor) SetName(name string) error {
	return e.mutate(func(a *menu.Assignment) error {
		a.SetName(name)
		return nil
	})
}

func (e *Editor) ToggleWeekday(day menu.Weekday, included bool) error {
	return e.mutate(func(a *menu.Assignment) error { return a.ToggleWeekday(day, included) })
}

func (e *Editor) RemoveDay(day menu.Weekday) error {
	return e.mutate(func(a *menu.Assignment) error { return a.RemoveDay(day) })
}

func (e *Editor) ToggleItem(itemID int, included bool, day *menu.Weekday) error {
	return e.mutate(func(a *menu.Assignment) error { return a.ToggleItem(itemID, included, day) })
}

// beginSubmit validates and marks the editor as submitting. The returned copy
// is what gets sent; the live assignment stays locked against edits until
// finishSubmit.
func (e *Editor) beginSubmit() (*menu.Assignment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.submitting {
		return nil, ErrSubmitInProgress
	}
	if errs := e.assignment.Validate(); len(errs) > 0 {
		return nil, errs
	}

	e.submitting = true
	return e.assignment.Clone(), nil
}

func (e *Editor) finishSubmit(saved bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.submitting = false
	if saved {
		e.assignment.Reset()
	}
}

func (e *Editor) reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.assignment.Reset()
}
