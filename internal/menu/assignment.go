package menu

import (
	"errors"
	"fmt"
	"strings"
)

type Mode string

const (
	ModeDaily       Mode = "daily"
	ModeDaySpecific Mode = "day-specific"
)

var (
	ErrInvalidMode    = errors.New("invalid menu mode")
	ErrInvalidTenant  = errors.New("canteen id must be positive")
	ErrNotDaySpecific = errors.New("weekday selection requires day-specific mode")
	ErrInvalidWeekday = errors.New("invalid weekday")
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDaily:
		return ModeDaily, nil
	case ModeDaySpecific:
		return ModeDaySpecific, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Assignment is the weekly menu being edited for one canteen.
//
// In daily mode only the daily set is active. In day-specific mode the
// per-day sets and the selected weekdays are active. Inactive sets are kept
// so switching modes back and forth does not lose work. Selected weekdays and
// per-day keys are independent: emptying a day's items leaves it selected.
type Assignment struct {
	tenantID     int
	name         string
	mode         Mode
	daily        ItemSet
	perDay       map[Weekday]ItemSet
	selected     map[Weekday]struct{}
	remoteMenuID *int
}

// NewAssignment returns an empty daily assignment for the canteen.
func NewAssignment(tenantID int) (*Assignment, error) {
	if tenantID <= 0 {
		return nil, ErrInvalidTenant
	}
	return &Assignment{
		tenantID: tenantID,
		mode:     ModeDaily,
		daily:    NewItemSet(),
		perDay:   make(map[Weekday]ItemSet),
		selected: make(map[Weekday]struct{}),
	}, nil
}

func (a *Assignment) TenantID() int { return a.tenantID }
func (a *Assignment) Mode() Mode    { return a.mode }
func (a *Assignment) Name() string  { return a.name }

func (a *Assignment) SetName(name string) {
	a.name = strings.TrimSpace(name)
}

// RemoteMenuID reports the server-side menu id, if the menu was loaded from one.
func (a *Assignment) RemoteMenuID() (int, bool) {
	if a.remoteMenuID == nil {
		return 0, false
	}
	return *a.remoteMenuID, true
}

// SetMode switches the active mode. Switching to daily clears the selected
// weekdays; neither switch touches any item set.
func (a *Assignment) SetMode(mode Mode) error {
	switch mode {
	case ModeDaily:
		a.mode = ModeDaily
		a.selected = make(map[Weekday]struct{})
	case ModeDaySpecific:
		a.mode = ModeDaySpecific
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return nil
}

// ToggleWeekday adds or removes a day from the selection. The day's item set
// is left alone either way.
func (a *Assignment) ToggleWeekday(day Weekday, included bool) error {
	if !day.Valid() {
		return ErrInvalidWeekday
	}
	if a.mode != ModeDaySpecific {
		return ErrNotDaySpecific
	}

	if included {
		a.selected[day] = struct{}{}
	} else {
		delete(a.selected, day)
	}
	return nil
}

// RemoveDay deselects a day.
func (a *Assignment) RemoveDay(day Weekday) error {
	return a.ToggleWeekday(day, false)
}

// ToggleItem adds or removes an item. With a day in day-specific mode it
// targets that day's set, otherwise the daily set. Unknown ids are accepted.
func (a *Assignment) ToggleItem(itemID int, included bool, day *Weekday) error {
	target := a.daily
	if a.mode == ModeDaySpecific && day != nil {
		if !day.Valid() {
			return ErrInvalidWeekday
		}
		set, ok := a.perDay[*day]
		if !ok {
			set = NewItemSet()
			a.perDay[*day] = set
		}
		target = set
	}

	if included {
		target[itemID] = struct{}{}
	} else {
		delete(target, itemID)
	}
	return nil
}

// TotalSelectedCount counts the active selections. In day-specific mode an
// item assigned to several days counts once per day.
func (a *Assignment) TotalSelectedCount() int {
	if a.mode == ModeDaily {
		return len(a.daily)
	}

	total := 0
	for _, set := range a.perDay {
		total += len(set)
	}
	return total
}

// Reset returns the assignment to an empty daily menu for the same canteen.
func (a *Assignment) Reset() {
	a.name = ""
	a.mode = ModeDaily
	a.daily = NewItemSet()
	a.perDay = make(map[Weekday]ItemSet)
	a.selected = make(map[Weekday]struct{})
	a.remoteMenuID = nil
}

// SelectedDays returns the selected weekdays in calendar order.
func (a *Assignment) SelectedDays() []Weekday {
	days := make([]Weekday, 0, len(a.selected))
	for _, d := range AllWeekdays {
		if _, ok := a.selected[d]; ok {
			days = append(days, d)
		}
	}
	return days
}

func (a *Assignment) IsSelected(day Weekday) bool {
	_, ok := a.selected[day]
	return ok
}

func (a *Assignment) ItemsFor(day Weekday) []int {
	return a.perDay[day].Sorted()
}

func (a *Assignment) DailyItems() []int {
	return a.daily.Sorted()
}

// Clone returns a deep copy.
func (a *Assignment) Clone() *Assignment {
	out := &Assignment{
		tenantID: a.tenantID,
		name:     a.name,
		mode:     a.mode,
		daily:    a.daily.Clone(),
		perDay:   make(map[Weekday]ItemSet, len(a.perDay)),
		selected: make(map[Weekday]struct{}, len(a.selected)),
	}
	for d, set := range a.perDay {
		out.perDay[d] = set.Clone()
	}
	for d := range a.selected {
		out.selected[d] = struct{}{}
	}
	if a.remoteMenuID != nil {
		id := *a.remoteMenuID
		out.remoteMenuID = &id
	}
	return out
}

// Snapshot is the JSON view of an assignment.
type Snapshot struct {
	CanteenID        int               `json:"canteen_id"`
	Name             string            `json:"name,omitempty"`
	Mode             Mode              `json:"mode"`
	DailyItemIDs     []int             `json:"daily_item_ids"`
	PerDayItemIDs    map[Weekday][]int `json:"per_day_item_ids"`
	SelectedWeekdays []Weekday         `json:"selected_weekdays"`
	RemoteMenuID     *int              `json:"remote_menu_id"`
	TotalSelected    int               `json:"total_selected"`
}

func (a *Assignment) Snapshot() Snapshot {
	perDay := make(map[Weekday][]int, len(a.perDay))
	for d, set := range a.perDay {
		if len(set) > 0 {
			perDay[d] = set.Sorted()
		}
	}

	var remoteID *int
	if a.remoteMenuID != nil {
		id := *a.remoteMenuID
		remoteID = &id
	}

	return Snapshot{
		CanteenID:        a.tenantID,
		Name:             a.name,
		Mode:             a.mode,
		DailyItemIDs:     a.daily.Sorted(),
		PerDayItemIDs:    perDay,
		SelectedWeekdays: a.SelectedDays(),
		RemoteMenuID:     remoteID,
		TotalSelected:    a.TotalSelectedCount(),
	}
}
