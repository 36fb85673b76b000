package ipcr

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore keeps form snapshots in process memory. Snapshots are cloned
// on the way in and out, so the editing session stays the sole owner of the
// form it is mutating.
type MemoryStore struct {
	mu    sync.RWMutex
	forms map[string]Form
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{forms: make(map[string]Form)}
}

func (s *MemoryStore) Save(ctx context.Context, form Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[form.ID] = form.Clone()
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, formID string) (Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	form, ok := s.forms[formID]
	if !ok {
		return Form{}, fmt.Errorf("%w: %s", ErrFormNotFound, formID)
	}
	return form.Clone(), nil
}

func (s *MemoryStore) ListByOwner(ctx context.Context, ownerID string) ([]Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Form, 0, len(s.forms))
	for _, form := range s.forms {
		if form.OwnerID == ownerID {
			out = append(out, form.Clone())
		}
	}
	sortForms(out)
	return out, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Form, 0, len(s.forms))
	for _, form := range s.forms {
		out = append(out, form.Clone())
	}
	sortForms(out)
	return out, nil
}

func sortForms(forms []Form) {
	sort.Slice(forms, func(i, j int) bool {
		if forms[i].CreatedAt.Equal(forms[j].CreatedAt) {
			return forms[i].ID < forms[j].ID
		}
		return forms[i].CreatedAt.Before(forms[j].CreatedAt)
	})
}
