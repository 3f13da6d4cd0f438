package catalog

import "time"

type DietType string

const (
	Veg    DietType = "veg"
	NonVeg DietType = "non-veg"
)

// MenuItem is authored elsewhere. The menu editor only references item ids.
type MenuItem struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	CategoryID   int       `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Type         DietType  `json:"type"`
	Image        string    `json:"image,omitempty"`
	CanteenID    int       `json:"canteenId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Category struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ItemCount *int   `json:"itemCount,omitempty"`
}

// CategoryCount is one entry of the category index shown next to the item grid.
type CategoryCount struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Page is what the catalog endpoint returns for one canteen.
type Page struct {
	CanteenID  int             `json:"canteen_id"`
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories"`
	Items      []MenuItem      `json:"items"`
}

// ByID indexes items for id lookups.
func ByID(items []MenuItem) map[int]MenuItem {
	out := make(map[int]MenuItem, len(items))
	for _, it := range items {
		out[it.ID] = it
	}
	return out
}
