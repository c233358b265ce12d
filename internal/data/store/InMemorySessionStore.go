package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"manualqa/internal/domain/sessionModel"
)

// InMemorySessionStore is the fallback session log when redis is
// unreachable.
type InMemorySessionStore struct {
	mu      sync.Mutex
	records []sessionModel.SessionRecord
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{}
}

func (s *InMemorySessionStore) Append(ctx context.Context, record sessionModel.SessionRecord) (string, error) {
	if record.Id == "" {
		record.Id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return record.Id, nil
}

// Records returns a copy of everything logged so far.
func (s *InMemorySessionStore) Records() []sessionModel.SessionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sessionModel.SessionRecord, len(s.records))
	copy(out, s.records)
	return out
}
