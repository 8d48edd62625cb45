package service

import (
	"context"
	"time"

	"github.com/nost-not/nost/internal/notestore"
)

type noteService struct {
	store    *notestore.Store
	language string
	now      func() time.Time
}

// NewNoteService returns a NoteService writing notes through the given
// store, with date headers rendered in the given language ("en" or "fr").
func NewNoteService(store *notestore.Store, language string) NoteService {
	return &noteService{store: store, language: language, now: time.Now}
}

func (s *noteService) Create(ctx context.Context, title string) (string, error) {
	return s.store.Create(title, s.language, s.now())
}

func (s *noteService) GetOrCreate(ctx context.Context) (string, error) {
	return s.store.Create("", s.language, s.now())
}
