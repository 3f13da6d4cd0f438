package export

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"chefpay/internal/catalog"
	"chefpay/internal/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var catalogItems = []catalog.MenuItem{
	{ID: 1, Name: "Idli", CategoryName: "Breakfast", Type: catalog.Veg, Price: 30},
	{ID: 2, Name: "Chicken Biryani", CategoryName: "Mains", Type: catalog.NonVeg, Price: 120},
	{ID: 3, Name: "Masala Chai", CategoryName: "Beverages", Type: catalog.Veg, Price: 15},
}

var generated = time.Date(2026, 5, 4, 8, 30, 0, 0, time.UTC)

func daySpecific(t *testing.T) *menu.Assignment {
	t.Helper()
	a, err := menu.NewAssignment(7)
	require.NoError(t, err)
	require.NoError(t, a.SetMode(menu.ModeDaySpecific))

	wed, mon := menu.Wednesday, menu.Monday
	require.NoError(t, a.ToggleWeekday(menu.Wednesday, true))
	require.NoError(t, a.ToggleWeekday(menu.Monday, true))
	require.NoError(t, a.ToggleItem(3, true, &wed))
	require.NoError(t, a.ToggleItem(1, true, &mon))
	// stale id with no catalog entry
	require.NoError(t, a.ToggleItem(99, true, &mon))
	// item on a day that is not selected
	fri := menu.Friday
	require.NoError(t, a.ToggleItem(2, true, &fri))
	return a
}

func TestRowsDaySpecific(t *testing.T) {
	rows := Rows(daySpecific(t), catalogItems)

	require.Len(t, rows, 2)
	assert.Equal(t, menu.Monday, rows[0].Day)
	assert.Equal(t, "Idli", rows[0].Item.Name)
	assert.Equal(t, menu.Wednesday, rows[1].Day)
	assert.Equal(t, "Masala Chai", rows[1].Item.Name)
}

func TestRowsDailyRepeatsEveryDay(t *testing.T) {
	a, err := menu.NewAssignment(7)
	require.NoError(t, err)
	require.NoError(t, a.ToggleItem(2, true, nil))

	rows := Rows(a, catalogItems)
	require.Len(t, rows, 7)
	for i, row := range rows {
		assert.Equal(t, menu.AllWeekdays[i], row.Day)
		assert.Equal(t, 2, row.Item.ID)
	}
}

func TestRender(t *testing.T) {
	a := daySpecific(t)
	a.SetName("Exam week")

	body, err := Render(a, catalogItems, generated)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(MenuSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Exam week", title)

	mode, err := f.GetCellValue(MenuSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "day-specific", mode)

	header, err := f.GetCellValue(MenuSheet, "C5")
	require.NoError(t, err)
	assert.Equal(t, "Item", header)

	first, err := f.GetCellValue(MenuSheet, "C6")
	require.NoError(t, err)
	assert.Equal(t, "Idli", first)

	day, err := f.GetCellValue(MenuSheet, "A7")
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", day)

	monCount, err := f.GetCellValue(SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", monCount)

	friCount, err := f.GetCellValue(SummarySheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "0", friCount)

	// the total matches the rows, not the assignment count
	assert.Equal(t, 4, a.TotalSelectedCount())
	total, err := f.GetCellValue(SummarySheet, "B9")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "menu-canteen-7-20260504-083000.xlsx", Filename(7, generated))
}

type fakeUploader struct {
	key         string
	contentType string
	size        int
	err         error
}

func (u *fakeUploader) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.key, u.contentType, u.size = key, contentType, len(body)
	return "https://cdn.example.com/" + key, nil
}

func TestPublish(t *testing.T) {
	up := &fakeUploader{}
	p := NewPublisher(up)
	p.now = func() time.Time { return generated }

	pub, err := p.Publish(context.Background(), daySpecific(t), catalogItems)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(pub.Key, "menu-exports/7/"))
	assert.True(t, strings.HasSuffix(pub.Key, "menu-canteen-7-20260504-083000.xlsx"))
	assert.Equal(t, "https://cdn.example.com/"+pub.Key, pub.URL)
	assert.Equal(t, ContentType, up.contentType)
	assert.Positive(t, up.size)

	up.err = errors.New("bucket unavailable")
	_, err = p.Publish(context.Background(), daySpecific(t), catalogItems)
	assert.ErrorIs(t, err, up.err)
}
