package payment

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is the storage fallback used when no database is
// configured.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewMemoryRepository creates an empty in-memory payment repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[string]*Profile)}
}

func (r *MemoryRepository) Upsert(_ context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.profiles {
		if existing.ParticipantID == p.ParticipantID && existing.Method == p.Method {
			existing.Handle = p.Handle
			*p = *existing
			return nil
		}
	}

	p.CreatedAt = time.Now().UTC()
	clone := *p
	r.profiles[p.ID] = &clone
	return nil
}

func (r *MemoryRepository) ListBySession(_ context.Context, sessionID string) ([]*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var profiles []*Profile
	for _, p := range r.profiles {
		if p.SessionID == sessionID {
			clone := *p
			profiles = append(profiles, &clone)
		}
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].CreatedAt.Equal(profiles[j].CreatedAt) {
			return profiles[i].ID < profiles[j].ID
		}
		return profiles[i].CreatedAt.Before(profiles[j].CreatedAt)
	})
	return profiles, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.profiles[id]
	delete(r.profiles, id)
	return ok, nil
}
