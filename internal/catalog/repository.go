package catalog

import "context"

// Repository reads the item and category collections.
type Repository interface {
	ListItems(ctx context.Context, canteenID int) ([]MenuItem, error)
	ListCategories(ctx context.Context) ([]Category, error)
}
