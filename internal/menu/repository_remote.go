package menu

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"chefpay/internal/remote"
)

type RemoteRepository struct {
	client *remote.Client
}

func NewRemoteRepository(client *remote.Client) *RemoteRepository {
	return &RemoteRepository{client: client}
}

// FetchByCanteen treats a 404 as a canteen that has no menu yet.
func (r *RemoteRepository) FetchByCanteen(ctx context.Context, canteenID int) ([]Record, error) {
	var records []Record
	path := fmt.Sprintf("/menus/getMenuByCanteenID/%d", canteenID)

	err := r.client.GetJSON(ctx, path, &records)
	if err != nil {
		var remoteErr *remote.Error
		if errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return records, nil
}

func (r *RemoteRepository) Update(ctx context.Context, menuID int, req UpdateMenuRequest) error {
	path := fmt.Sprintf("/menus/updateMenu/%d", menuID)
	_, err := r.client.PutJSON(ctx, path, req)
	return err
}
