package catalog

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Items returns the full item collection for a canteen.
func (s *Service) Items(ctx context.Context, canteenID int) ([]MenuItem, error) {
	items, err := s.repo.ListItems(ctx, canteenID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Browse fetches items and categories and derives the visible page.
// Nothing is cached; every call reflects the remote collections.
func (s *Service) Browse(ctx context.Context, canteenID int, f Filter) (*Page, error) {
	items, err := s.Items(ctx, canteenID)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return &Page{
		CanteenID:  canteenID,
		Total:      len(items),
		Categories: BuildCategoryIndex(items, categories),
		Items:      FilterItems(items, f),
	}, nil
}
