package menu

import (
	"context"
	"strconv"
	"strings"
	"sync"
)

// InMemoryRepository stores per-day records keyed by canteen. Updates rewrite
// the stored records so a later fetch sees the submitted menu.
type InMemoryRepository struct {
	mu      sync.Mutex
	records map[int][]Record
	updates []UpdateMenuRequest

	FetchErr  error
	UpdateErr error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[int][]Record)}
}

func (r *InMemoryRepository) SetRecords(canteenID int, records []Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[canteenID] = records
}

// Updates returns every update request received, oldest first.
func (r *InMemoryRepository) Updates() []UpdateMenuRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]UpdateMenuRequest(nil), r.updates...)
}

func (r *InMemoryRepository) FetchByCanteen(ctx context.Context, canteenID int) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FetchErr != nil {
		return nil, r.FetchErr
	}
	return append([]Record(nil), r.records[canteenID]...), nil
}

func (r *InMemoryRepository) Update(ctx context.Context, menuID int, req UpdateMenuRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.updates = append(r.updates, req)

	records := make([]Record, 0, len(req.Data))
	for _, entry := range req.Data {
		day, err := ParseWeekday(entry.Day)
		if err != nil {
			return err
		}
		rec := Record{
			MenuID:    menuID,
			DayOfWeek: day.String(),
			MenuType:  string(req.MenuType),
		}
		for _, part := range strings.Split(entry.ItemIDs, ",") {
			if id, err := strconv.Atoi(part); err == nil {
				rec.Items = append(rec.Items, RecordItem{ID: id})
			}
		}
		records = append(records, rec)
	}
	r.records[req.CanteenID] = records
	return nil
}
