package menu

import "context"

// Record is one per-day menu row as the canteen API returns it.
type Record struct {
	MenuID    int          `json:"menuId"`
	DayOfWeek string       `json:"dayOfWeek"`
	MenuType  string       `json:"menuType"`
	Items     []RecordItem `json:"items"`
}

type RecordItem struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// UpdateMenuRequest is the body of the menu update call.
type UpdateMenuRequest struct {
	MenuType  Mode       `json:"menuType"`
	CanteenID int        `json:"canteenId"`
	Data      []DayEntry `json:"data"`
}

// DayEntry carries one day's items as a comma separated id list.
type DayEntry struct {
	Day     string `json:"day"`
	ItemIDs string `json:"itemIds"`
}

type Repository interface {
	FetchByCanteen(ctx context.Context, canteenID int) ([]Record, error)
	Update(ctx context.Context, menuID int, req UpdateMenuRequest) error
}
