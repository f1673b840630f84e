package memory

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"review_analyzer/internal/domain"
)

var ErrDuplicateID = errors.New("memory: duplicate review id")

// Store is an append-only, insertion-ordered review collection.
// Reads run concurrently; Append excludes readers for its duration.
type Store struct {
	mu    sync.RWMutex
	items []domain.Review
	ids   map[string]struct{}
}

// New seeds the store with initial in order. Later rows reusing an id are
// dropped with a warning; the first occurrence is kept.
func New(initial []domain.Review) *Store {
	s := &Store{
		items: make([]domain.Review, 0, len(initial)),
		ids:   make(map[string]struct{}, len(initial)),
	}
	for _, r := range initial {
		if err := s.Append(r); err != nil {
			log.Warn().Err(err).Str("review_id", r.ReviewID).Msg("seed review dropped")
		}
	}
	return s
}

func (s *Store) Snapshot() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Append(r domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.ids[r.ReviewID]; dup {
		return ErrDuplicateID
	}
	s.ids[r.ReviewID] = struct{}{}
	s.items = append(s.items, r)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
