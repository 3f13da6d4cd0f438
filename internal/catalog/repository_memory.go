package catalog

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu         sync.RWMutex
	items      map[int][]MenuItem
	categories []Category
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[int][]MenuItem)}
}

func (r *InMemoryRepository) SetItems(canteenID int, items []MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[canteenID] = items
}

func (r *InMemoryRepository) SetCategories(categories []Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = categories
}

func (r *InMemoryRepository) ListItems(ctx context.Context, canteenID int) ([]MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]MenuItem(nil), r.items[canteenID]...), nil
}

func (r *InMemoryRepository) ListCategories(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Category(nil), r.categories...), nil
}
