package settlement

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is the storage fallback used when no database is
// configured.
type MemoryRepository struct {
	mu          sync.RWMutex
	settlements map[string]*Settlement
}

// NewMemoryRepository creates an empty in-memory settlement repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{settlements: make(map[string]*Settlement)}
}

func (r *MemoryRepository) Create(_ context.Context, s *Settlement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.CreatedAt = time.Now().UTC()
	clone := *s
	r.settlements[s.ID] = &clone
	return nil
}

func (r *MemoryRepository) ListBySession(_ context.Context, sessionID string) ([]*Settlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var settlements []*Settlement
	for _, s := range r.settlements {
		if s.SessionID == sessionID {
			clone := *s
			settlements = append(settlements, &clone)
		}
	}
	sort.Slice(settlements, func(i, j int) bool {
		if settlements[i].CreatedAt.Equal(settlements[j].CreatedAt) {
			return settlements[i].ID < settlements[j].ID
		}
		return settlements[i].CreatedAt.After(settlements[j].CreatedAt)
	})
	return settlements, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.settlements[id]
	delete(r.settlements, id)
	return ok, nil
}
