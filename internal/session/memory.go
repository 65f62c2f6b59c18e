package session

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is the storage fallback used when no database is
// configured. Data lives for the process lifetime only, the same contract
// the product's browser-local storage mode offers.
type MemoryRepository struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	participants map[string]*Participant
}

// NewMemoryRepository creates an empty in-memory session repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions:     make(map[string]*Session),
		participants: make(map[string]*Participant),
	}
}

func (r *MemoryRepository) CreateSession(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.CreatedAt = time.Now().UTC()
	clone := *s
	r.sessions[s.ID] = &clone
	return nil
}

func (r *MemoryRepository) GetSessionByID(_ context.Context, id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *MemoryRepository) GetSessionByCode(_ context.Context, code string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.Code == code {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) UpdateSessionName(_ context.Context, id, name string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	s.Name = name
	clone := *s
	return &clone, nil
}

func (r *MemoryRepository) DeleteSession(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	for pid, p := range r.participants {
		if p.SessionID == id {
			delete(r.participants, pid)
		}
	}
	return nil
}

func (r *MemoryRepository) AddParticipant(_ context.Context, p *Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.CreatedAt = time.Now().UTC()
	clone := *p
	r.participants[p.ID] = &clone
	return nil
}

func (r *MemoryRepository) GetParticipant(_ context.Context, id string) (*Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.participants[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *MemoryRepository) ListParticipants(_ context.Context, sessionID string) ([]*Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var participants []*Participant
	for _, p := range r.participants {
		if p.SessionID == sessionID {
			clone := *p
			participants = append(participants, &clone)
		}
	}
	sort.Slice(participants, func(i, j int) bool {
		if participants[i].CreatedAt.Equal(participants[j].CreatedAt) {
			return participants[i].ID < participants[j].ID
		}
		return participants[i].CreatedAt.Before(participants[j].CreatedAt)
	})
	return participants, nil
}

func (r *MemoryRepository) RemoveParticipant(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.participants, id)
	return nil
}
