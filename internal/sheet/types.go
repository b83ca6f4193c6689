package sheet

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Cell is one spreadsheet cell value. The Apps Script endpoint serializes
// cells as strings or numbers depending on how the sheet interpreted them,
// so Cell accepts either on decode and normalizes to its string form.
type Cell string

// UnmarshalJSON accepts strings, numbers, booleans, and null.
func (c *Cell) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*c = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Cell(s)
		return nil
	}
	*c = Cell(trimmed)
	return nil
}

// String returns the cell's text.
func (c Cell) String() string {
	return string(c)
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Int parses the cell as an integer. ok is false when the cell is empty or
// not numeric.
func (c Cell) Int() (int, bool) {
	trimmed := strings.TrimSpace(string(c))
	if trimmed == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n, true
	}
	// Sheets can widen integers to floats ("2.0").
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// Float parses the cell as a float. ok is false when the cell is empty or
// not numeric.
func (c Cell) Float() (float64, bool) {
	trimmed := strings.TrimSpace(string(c))
	if trimmed == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FloatCell renders a numeric value as a Cell.
func FloatCell(v float64) Cell {
	return Cell(strconv.FormatFloat(v, 'f', -1, 64))
}

// IntCell renders an integer value as a Cell.
func IntCell(v int) Cell {
	return Cell(strconv.Itoa(v))
}

// Row mirrors one record of the sheet. Schedule items carry a day number;
// reference entries (spots, restaurants) carry a type but no day. Every
// column is optional on the wire.
type Row struct {
	ID           Cell `json:"id"`
	Day          Cell `json:"day"`
	Order        Cell `json:"order"`
	Date         Cell `json:"date"`
	Time         Cell `json:"time"`
	Title        Cell `json:"title"`
	Description  Cell `json:"description"`
	Type         Cell `json:"type"`
	NaverPlaceID Cell `json:"naverPlaceId"`
	Lat          Cell `json:"lat"`
	Lng          Cell `json:"lng"`
	Tags         Cell `json:"tags"`
	ImageURL     Cell `json:"imageUrl"`
	Category     Cell `json:"category"`
	DayTitle     Cell `json:"dayTitle"`
}

// listResponse mirrors the GET payload.
type listResponse struct {
	Data []Row `json:"data"`
}
