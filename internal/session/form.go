package session

import (
	"context"

	"moneymgr/internal/core"
)

// Transaction form state machine: closed -> open-for-create (add),
// closed/open-for-create -> open-for-edit (edit a row), any open state ->
// closed (cancel or successful submit). Destructive actions never skip
// the confirmation step; that is enforced in the delete operations.

func (s *Session) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bumpLocked()
	s.edit = nil
	s.form = FormCreate
}

// BeginEdit loads a row into the form as the edit target. The row usually
// comes from the current list; a transaction that is no longer in it
// (e.g. filtered out) is fetched by id instead.
func (s *Session) BeginEdit(ctx context.Context, id int64) error {
	s.mu.Lock()
	var target *core.Transaction
	for i := range s.list {
		if s.list[i].ID == id {
			tx := s.list[i]
			target = &tx
			break
		}
	}
	s.mu.Unlock()

	if target == nil {
		tx, err := s.txns.GetByID(ctx, id)
		if err != nil {
			return err
		}
		target = &tx
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bumpLocked()
	s.edit = target
	s.form = FormEdit
	return nil
}

func (s *Session) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bumpLocked()
	s.edit = nil
	s.form = FormClosed
}

// Theme returns the current process-wide theme flag.
func (s *Session) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme is the only writer of the theme flag after startup.
func (s *Session) ToggleTheme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	return s.theme
}
