package catalog

import (
	"context"
	"fmt"

	"chefpay/internal/remote"
)

type RemoteRepository struct {
	client *remote.Client
}

func NewRemoteRepository(client *remote.Client) *RemoteRepository {
	return &RemoteRepository{client: client}
}

func (r *RemoteRepository) ListItems(ctx context.Context, canteenID int) ([]MenuItem, error) {
	var items []MenuItem
	path := fmt.Sprintf("/menu-items/getMenuItemsByCanteenID/%d", canteenID)
	if err := r.client.GetJSON(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RemoteRepository) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.client.GetJSON(ctx, "/categories/getAllCategories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
