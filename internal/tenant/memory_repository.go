package tenant

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	tenants map[string]Tenant
}

// NewMemoryRepository builds an in-memory tenant store for tests and
// database-less development mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{tenants: make(map[string]Tenant)}
}

func (r *memoryRepository) Create(_ context.Context, t Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tenants[t.ID] = t
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
