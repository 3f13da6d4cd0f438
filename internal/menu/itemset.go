package menu

import (
	"sort"
	"strconv"
	"strings"
)

// ItemSet is a set of menu item ids.
type ItemSet map[int]struct{}

func NewItemSet(ids ...int) ItemSet {
	s := make(ItemSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s ItemSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order.
func (s ItemSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s ItemSet) Clone() ItemSet {
	out := make(ItemSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Join renders the ids as the comma separated string the menu API expects.
func (s ItemSet) Join() string {
	ids := s.Sorted()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
