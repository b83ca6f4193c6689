package trip

// ItemType categorizes a schedule item.
type ItemType string

const (
	TypeFlight    ItemType = "flight"
	TypeSpot      ItemType = "spot"
	TypeFood      ItemType = "food"
	TypeTransport ItemType = "transport"
	TypeHotel     ItemType = "hotel"
	TypeOther     ItemType = "other"
)

// Coords is a latitude/longitude pair.
type Coords struct {
	Lat float64
	Lng float64
}

// ScheduleItem is one itinerary entry. ID is assigned on first persist
// ("day<N>-item<K>") and Order is the 1-based position within the day;
// both are zero-valued until a save assigns them.
type ScheduleItem struct {
	ID           string
	Order        int
	Time         string
	Title        string
	Description  string
	Type         ItemType
	NaverPlaceID string
	Coords       *Coords
}

// OnMap reports whether the item can be placed on a map.
func (s ScheduleItem) OnMap() bool {
	return s.Coords != nil || s.NaverPlaceID != ""
}

// DaySchedule is one calendar day of the trip.
type DaySchedule struct {
	Day   int
	Date  string
	Title string
	Items []ScheduleItem
}

// Spot is a read-only point of interest loaded from the sheet.
type Spot struct {
	ID           string
	Name         string
	Description  string
	Category     string
	ImageURL     string
	Tags         []string
	Lat          float64
	Lng          float64
	NaverPlaceID string
}

// Restaurant is a read-only food recommendation loaded from the sheet.
// Category is one of: bbq, gukbap, seafood, market, cafe, bread, other.
type Restaurant struct {
	ID           string
	Name         string
	Description  string
	Category     string
	ImageURL     string
	Lat          float64
	Lng          float64
	NaverPlaceID string
}

// Flight is one static flight leg.
type Flight struct {
	Kind             string // departure or return
	Airline          string
	FlightNumber     string
	Aircraft         string
	DepartureTime    string
	ArrivalTime      string
	DepartureAirport string
	ArrivalAirport   string
	Duration         string
	Cabin            string
}

// Member is one traveler.
type Member struct {
	Name   string
	Role   string
	Avatar string
}

// InfoCard is one block of travel tips for the info tab.
type InfoCard struct {
	Title string
	Items []string
}
