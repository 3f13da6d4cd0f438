package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleItems() []MenuItem {
	return []MenuItem{
		{ID: 1, Name: "Masala Dosa", Description: "Rice crepe with potato", CategoryName: "Breakfast", Type: Veg},
		{ID: 2, Name: "Chicken Biryani", Description: "Dum cooked", CategoryName: "Mains", Type: NonVeg},
		{ID: 3, Name: "Paneer Tikka", Description: "Grilled cottage cheese", CategoryName: "mains", Type: Veg},
		{ID: 4, Name: "Filter Coffee", CategoryName: "Beverages", Type: Veg},
	}
}

func TestBuildCategoryIndex(t *testing.T) {
	categories := []Category{
		{ID: 10, Name: "Breakfast"},
		{ID: 11, Name: "MAINS"},
		{ID: 12, Name: "Desserts"},
	}

	index := BuildCategoryIndex(sampleItems(), categories)

	assert.Equal(t, []CategoryCount{
		{Name: AllCategory, Count: 4},
		{ID: 10, Name: "Breakfast", Count: 1},
		{ID: 11, Name: "MAINS", Count: 2},
		{ID: 12, Name: "Desserts", Count: 0},
	}, index)
}

func TestBuildCategoryIndex_Empty(t *testing.T) {
	index := BuildCategoryIndex(nil, nil)
	assert.Equal(t, []CategoryCount{{Name: AllCategory, Count: 0}}, index)
}

func ids(items []MenuItem) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilterItems(t *testing.T) {
	items := sampleItems()

	cases := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"no filter", Filter{}, []int{1, 2, 3, 4}},
		{"all category", Filter{Category: "all"}, []int{1, 2, 3, 4}},
		{"category case-insensitive", Filter{Category: "MAINS"}, []int{2, 3}},
		{"search name", Filter{Search: "coffee"}, []int{4}},
		{"search description", Filter{Search: "CHEESE"}, []int{3}},
		{"category and search", Filter{Category: "Mains", Search: "dum"}, []int{2}},
		{"no match", Filter{Category: "Desserts"}, []int{}},
		{"blank search", Filter{Search: "   "}, []int{1, 2, 3, 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(FilterItems(items, tc.filter)))
		})
	}
}
