package trip

import (
	"sort"
	"strings"
	"time"

	"github.com/jyang/tripdeck/internal/sheet"
)

// Data is everything the sheet holds, grouped into the domain model.
type Data struct {
	Itinerary []DaySchedule
	Spots     []Spot
	Food      []Restaurant
}

// CleanCell strips the leading apostrophe used to stop the sheet from
// reinterpreting text as a number or date.
func CleanCell(value string) string {
	return strings.TrimPrefix(value, "'")
}

// keepText re-prefixes a text cell for the save direction.
func keepText(value string) string {
	if value == "" {
		return ""
	}
	return "'" + value
}

// timestampLayouts are the shapes the sheet produces when a time cell got
// coerced into a full date value.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
}

// NormalizeTime reduces a full timestamp string to HH:MM. Anything that is
// not a timestamp passes through unchanged (after cell cleaning).
func NormalizeTime(value string) string {
	cleaned := CleanCell(value)
	if cleaned == "" || !strings.Contains(cleaned, "T") {
		return cleaned
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return parsed.Format("15:04")
		}
	}
	return cleaned
}

// FromRows groups flat sheet rows into the domain model. Rows with a day
// number become schedule items; rows typed spot/food without a day feed the
// read-only reference lists. Malformed cells degrade per-field and never
// abort the load.
func FromRows(rows []sheet.Row) Data {
	grouped := make(map[int]*DaySchedule)

	var data Data
	for _, row := range rows {
		if !row.Day.IsEmpty() {
			day, ok := row.Day.Int()
			if !ok {
				continue
			}
			group := grouped[day]
			if group == nil {
				group = &DaySchedule{Day: day}
				grouped[day] = group
			}
			if group.Date == "" {
				group.Date = CleanCell(row.Date.String())
			}
			if group.Title == "" {
				group.Title = CleanCell(row.DayTitle.String())
			}
			group.Items = append(group.Items, itemFromRow(row))
			continue
		}
		switch row.Type.String() {
		case "spot":
			data.Spots = append(data.Spots, spotFromRow(row))
		case "food":
			data.Food = append(data.Food, restaurantFromRow(row))
		}
	}

	days := make([]int, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Ints(days)

	for _, day := range days {
		group := grouped[day]
		if group.Title == "" {
			group.Title = DefaultDayTitles[day]
		}
		if hasExplicitOrder(group.Items) {
			sort.SliceStable(group.Items, func(i, j int) bool {
				return group.Items[i].Order < group.Items[j].Order
			})
		}
		data.Itinerary = append(data.Itinerary, *group)
	}
	return data
}

func hasExplicitOrder(items []ScheduleItem) bool {
	for _, item := range items {
		if item.Order > 0 {
			return true
		}
	}
	return false
}

func itemFromRow(row sheet.Row) ScheduleItem {
	item := ScheduleItem{
		ID:           row.ID.String(),
		Time:         NormalizeTime(row.Time.String()),
		Title:        CleanCell(row.Title.String()),
		Description:  CleanCell(row.Description.String()),
		Type:         TypeOther,
		NaverPlaceID: row.NaverPlaceID.String(),
		Coords:       coordsFromRow(row),
	}
	if t := row.Type.String(); t != "" {
		item.Type = ItemType(t)
	}
	if order, ok := row.Order.Int(); ok {
		item.Order = order
	}
	return item
}

// coordsFromRow returns coordinates only when at least one cell is present;
// a cell that fails to parse degrades to 0 rather than dropping the pair.
func coordsFromRow(row sheet.Row) *Coords {
	if row.Lat.IsEmpty() && row.Lng.IsEmpty() {
		return nil
	}
	lat, _ := row.Lat.Float()
	lng, _ := row.Lng.Float()
	return &Coords{Lat: lat, Lng: lng}
}

func spotFromRow(row sheet.Row) Spot {
	lat, _ := row.Lat.Float()
	lng, _ := row.Lng.Float()
	return Spot{
		ID:           row.ID.String(),
		Name:         CleanCell(row.Title.String()),
		Description:  CleanCell(row.Description.String()),
		Category:     CleanCell(row.Category.String()),
		ImageURL:     row.ImageURL.String(),
		Tags:         splitTags(row.Tags.String()),
		Lat:          lat,
		Lng:          lng,
		NaverPlaceID: row.NaverPlaceID.String(),
	}
}

func restaurantFromRow(row sheet.Row) Restaurant {
	lat, _ := row.Lat.Float()
	lng, _ := row.Lng.Float()
	category := row.Category.String()
	if category == "" {
		category = "other"
	}
	return Restaurant{
		ID:           row.ID.String(),
		Name:         CleanCell(row.Title.String()),
		Description:  CleanCell(row.Description.String()),
		Category:     category,
		ImageURL:     row.ImageURL.String(),
		Lat:          lat,
		Lng:          lng,
		NaverPlaceID: row.NaverPlaceID.String(),
	}
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// RowForItem produces the wire row for one schedule item. Date and time
// cells are re-prefixed so the sheet keeps them as text; absent coordinates
// become empty cells.
func RowForItem(day DaySchedule, item ScheduleItem) sheet.Row {
	row := sheet.Row{
		ID:           sheet.Cell(item.ID),
		Day:          sheet.IntCell(day.Day),
		Order:        sheet.IntCell(item.Order),
		Date:         sheet.Cell(keepText(day.Date)),
		Time:         sheet.Cell(keepText(item.Time)),
		Title:        sheet.Cell(item.Title),
		Description:  sheet.Cell(item.Description),
		Type:         sheet.Cell(item.Type),
		NaverPlaceID: sheet.Cell(item.NaverPlaceID),
		DayTitle:     sheet.Cell(keepText(day.Title)),
	}
	if item.Coords != nil {
		row.Lat = sheet.FloatCell(item.Coords.Lat)
		row.Lng = sheet.FloatCell(item.Coords.Lng)
	}
	return row
}
