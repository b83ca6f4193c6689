package trip

import (
	"fmt"
	"strconv"
)

// MapLink builds a Naver Map deep link for a place. A place id wins over
// coordinates; with neither there is nothing to link to and a placeholder
// is returned.
func MapLink(placeID string, coords *Coords) string {
	if placeID != "" {
		return "https://map.naver.com/p/entry/place/" + placeID
	}
	if coords != nil {
		return fmt.Sprintf("https://map.naver.com/v5/search/%s,%s",
			strconv.FormatFloat(coords.Lat, 'f', -1, 64),
			strconv.FormatFloat(coords.Lng, 'f', -1, 64))
	}
	return "#"
}
