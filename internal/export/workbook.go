package export

import (
	"bytes"
	"fmt"
	"time"

	"chefpay/internal/catalog"
	"chefpay/internal/menu"

	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	MenuSheet    = "Weekly Menu"
	SummarySheet = "Summary"
)

var menuHeader = []string{"Day", "Item ID", "Item", "Category", "Type", "Price"}

// Row is one (day, item) line of the exported menu.
type Row struct {
	Day  menu.Weekday
	Item catalog.MenuItem
}

// Rows expands the assignment into calendar ordered rows. Daily menus repeat
// their items on every day. Ids missing from items are left out.
func Rows(a *menu.Assignment, items []catalog.MenuItem) []Row {
	byID := catalog.ByID(items)

	var days []menu.Weekday
	if a.Mode() == menu.ModeDaily {
		days = menu.AllWeekdays
	} else {
		days = a.SelectedDays()
	}

	var rows []Row
	for _, day := range days {
		ids := a.DailyItems()
		if a.Mode() == menu.ModeDaySpecific {
			ids = a.ItemsFor(day)
		}
		for _, id := range ids {
			if it, ok := byID[id]; ok {
				rows = append(rows, Row{Day: day, Item: it})
			}
		}
	}
	return rows
}

// Build lays the assignment out as a workbook with a line per (day, item)
// and a per-day summary. The summary total counts the exported rows only.
func Build(a *menu.Assignment, items []catalog.MenuItem, generatedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", MenuSheet); err != nil {
		f.Close()
		return nil, err
	}

	title := a.Name()
	if title == "" {
		title = fmt.Sprintf("Canteen %d weekly menu", a.TenantID())
	}

	f.SetCellValue(MenuSheet, "A1", title)
	f.SetCellValue(MenuSheet, "A2", "Mode")
	f.SetCellValue(MenuSheet, "B2", string(a.Mode()))
	f.SetCellValue(MenuSheet, "A3", "Generated")
	f.SetCellValue(MenuSheet, "B3", generatedAt.UTC().Format(time.RFC3339))

	const headerRow = 5
	for i, h := range menuHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(MenuSheet, cell, h)
	}

	rows := Rows(a, items)
	perDay := make(map[menu.Weekday]int)

	for i, row := range rows {
		r := headerRow + 1 + i
		f.SetCellValue(MenuSheet, fmt.Sprintf("A%d", r), row.Day.String())
		f.SetCellValue(MenuSheet, fmt.Sprintf("B%d", r), row.Item.ID)
		f.SetCellValue(MenuSheet, fmt.Sprintf("C%d", r), row.Item.Name)
		f.SetCellValue(MenuSheet, fmt.Sprintf("D%d", r), row.Item.CategoryName)
		f.SetCellValue(MenuSheet, fmt.Sprintf("E%d", r), string(row.Item.Type))
		f.SetCellValue(MenuSheet, fmt.Sprintf("F%d", r), row.Item.Price)
		perDay[row.Day]++
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	f.SetCellValue(SummarySheet, "A1", "Day")
	f.SetCellValue(SummarySheet, "B1", "Items")
	for i, day := range menu.AllWeekdays {
		f.SetCellValue(SummarySheet, fmt.Sprintf("A%d", i+2), day.String())
		f.SetCellValue(SummarySheet, fmt.Sprintf("B%d", i+2), perDay[day])
	}
	f.SetCellValue(SummarySheet, "A9", "Total")
	f.SetCellValue(SummarySheet, "B9", len(rows))

	return f, nil
}

// Render builds the workbook and returns its bytes.
func Render(a *menu.Assignment, items []catalog.MenuItem, generatedAt time.Time) ([]byte, error) {
	f, err := Build(a, items, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func Filename(canteenID int, at time.Time) string {
	return fmt.Sprintf("menu-canteen-%d-%s.xlsx", canteenID, at.UTC().Format("20060102-150405"))
}
