package bill

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is the storage fallback used when no database is
// configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Item
}

// NewMemoryRepository creates an empty in-memory bill repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*Item)}
}

func (r *MemoryRepository) CreateItem(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.CreatedAt = time.Now().UTC()
	r.items[item.ID] = cloneItem(item)
	return nil
}

func (r *MemoryRepository) GetItemByID(_ context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneItem(item), nil
}

func (r *MemoryRepository) ListItemsBySession(_ context.Context, sessionID string) ([]*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*Item
	for _, item := range r.items {
		if item.SessionID == sessionID {
			items = append(items, cloneItem(item))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *MemoryRepository) UpdateItem(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return nil
	}
	item.CreatedAt = existing.CreatedAt
	r.items[item.ID] = cloneItem(item)
	return nil
}

func (r *MemoryRepository) DeleteItem(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func cloneItem(item *Item) *Item {
	clone := *item
	clone.SharedBy = append([]string(nil), item.SharedBy...)
	return &clone
}
