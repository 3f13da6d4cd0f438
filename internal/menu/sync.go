package menu

import (
	"context"
	"errors"
	"fmt"

	"chefpay/internal/logging"

	"github.com/rs/zerolog"
)

var (
	ErrMixedMenuTypes = errors.New("menu records disagree on menu type")
	ErrMalformedMenu  = errors.New("malformed menu record")
	ErrNoRemoteMenu   = errors.New("canteen has no menu to update")
)

// Syncer moves assignments between the editor and the canteen API.
type Syncer struct {
	repo   Repository
	logger zerolog.Logger
}

func NewSyncer(repo Repository) *Syncer {
	return &Syncer{
		repo:   repo,
		logger: logging.Component("sync"),
	}
}

// Load fetches the canteen's per-day records and folds them into an assignment.
// A canteen without records yields an empty daily assignment.
func (s *Syncer) Load(ctx context.Context, canteenID int) (*Assignment, error) {
	if canteenID <= 0 {
		return nil, ErrInvalidTenant
	}

	records, err := s.repo.FetchByCanteen(ctx, canteenID)
	if err != nil {
		return nil, fmt.Errorf("fetch menu for canteen %d: %w", canteenID, err)
	}

	a, err := FromRecords(canteenID, records)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("canteen_id", canteenID).
		Int("records", len(records)).
		Str("mode", string(a.Mode())).
		Msg("menu loaded")

	return a, nil
}

// FromRecords builds an assignment from the API's per-day records. The mode and
// remote id come from the first record; every record must share that mode.
func FromRecords(canteenID int, records []Record) (*Assignment, error) {
	a, err := NewAssignment(canteenID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return a, nil
	}

	mode, err := ParseMode(records[0].MenuType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMenu, err)
	}

	for _, rec := range records {
		recMode, err := ParseMode(rec.MenuType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMenu, err)
		}
		if recMode != mode {
			return nil, fmt.Errorf("%w: %s and %s", ErrMixedMenuTypes, mode, recMode)
		}

		day, err := ParseWeekday(rec.DayOfWeek)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMenu, err)
		}

		set, ok := a.perDay[day]
		if !ok {
			set = NewItemSet()
			a.perDay[day] = set
		}
		for _, item := range rec.Items {
			set[item.ID] = struct{}{}
		}
	}

	a.mode = mode
	switch mode {
	case ModeDaySpecific:
		for day := range a.perDay {
			a.selected[day] = struct{}{}
		}
	case ModeDaily:
		for _, set := range a.perDay {
			for id := range set {
				a.daily[id] = struct{}{}
			}
		}
	}

	id := records[0].MenuID
	a.remoteMenuID = &id
	return a, nil
}

// BuildUpdatePayload serialises the assignment for the update call. Daily
// menus repeat the same ids on all seven days; day-specific menus send one
// entry per selected day.
func BuildUpdatePayload(a *Assignment) UpdateMenuRequest {
	req := UpdateMenuRequest{
		MenuType:  a.mode,
		CanteenID: a.tenantID,
	}

	if a.mode == ModeDaily {
		ids := a.daily.Join()
		req.Data = make([]DayEntry, 0, len(AllWeekdays))
		for _, day := range AllWeekdays {
			req.Data = append(req.Data, DayEntry{Day: day.Code(), ItemIDs: ids})
		}
		return req
	}

	days := a.SelectedDays()
	req.Data = make([]DayEntry, 0, len(days))
	for _, day := range days {
		req.Data = append(req.Data, DayEntry{Day: day.Code(), ItemIDs: a.perDay[day].Join()})
	}
	return req
}

// Save sends the assignment to the canteen API as a single update. Only menus
// that already exist remotely can be saved.
func (s *Syncer) Save(ctx context.Context, a *Assignment) error {
	menuID, ok := a.RemoteMenuID()
	if !ok {
		return ErrNoRemoteMenu
	}

	req := BuildUpdatePayload(a)
	if err := s.repo.Update(ctx, menuID, req); err != nil {
		s.logger.Debug().Err(err).
			Int("canteen_id", a.tenantID).
			Int("menu_id", menuID).
			Msg("menu update failed")
		return fmt.Errorf("update menu %d: %w", menuID, err)
	}

	s.logger.Info().
		Int("canteen_id", a.tenantID).
		Int("menu_id", menuID).
		Str("mode", string(a.mode)).
		Int("days", len(req.Data)).
		Msg("menu updated")
	return nil
}
