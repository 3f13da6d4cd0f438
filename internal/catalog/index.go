package catalog

import "strings"

// AllCategory is the synthetic category that matches every item.
const AllCategory = "All"

// BuildCategoryIndex counts items per category. The first entry is always
// AllCategory with the size of the whole collection; named categories match
// on the item's category name, case-insensitively.
func BuildCategoryIndex(items []MenuItem, categories []Category) []CategoryCount {
	index := make([]CategoryCount, 0, len(categories)+1)
	index = append(index, CategoryCount{Name: AllCategory, Count: len(items)})

	for _, cat := range categories {
		count := 0
		for _, it := range items {
			if strings.EqualFold(it.CategoryName, cat.Name) {
				count++
			}
		}
		index = append(index, CategoryCount{ID: cat.ID, Name: cat.Name, Count: count})
	}

	return index
}

type Filter struct {
	Category string
	Search   string
}

// FilterItems keeps items in the active category whose name or description
// contains the search text. Both checks ignore case; input order is kept.
func FilterItems(items []MenuItem, f Filter) []MenuItem {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	allCategories := f.Category == "" || strings.EqualFold(f.Category, AllCategory)

	visible := make([]MenuItem, 0, len(items))
	for _, it := range items {
		if !allCategories && !strings.EqualFold(it.CategoryName, f.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Name), search) &&
			!strings.Contains(strings.ToLower(it.Description), search) {
			continue
		}
		visible = append(visible, it)
	}

	return visible
}
