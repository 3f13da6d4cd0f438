package audit

import (
	"context"
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu          sync.RWMutex
	submissions []Submission
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Insert(ctx context.Context, s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, s)
	return nil
}

func (r *InMemoryRepository) ListByCanteen(ctx context.Context, canteenID, limit int) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Submission
	for _, s := range r.submissions {
		if s.CanteenID == canteenID {
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
