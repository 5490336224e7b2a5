package models

type BusStop struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	LineIDs []int    `json:"lineIds"`
}

func NewBusStop(id int, name string, lineIDs []int) BusStop {
	if lineIDs == nil {
		lineIDs = []int{}
	}
	return BusStop{
		ID:      id,
		Name:    name,
		LineIDs: lineIDs,
	}
}

// WithLocation returns a copy of the stop placed at lat/lon.
func (s BusStop) WithLocation(lat, lon float64) BusStop {
	s.Lat = &lat
	s.Lon = &lon
	return s
}

// TrainLine lists the stations in both directions of travel.
type TrainLine struct {
	StationCount int   `json:"stationCount"`
	Forward      []int `json:"forward"`
	Backward     []int `json:"backward"`
}

type TrainQuote struct {
	From        int    `json:"from"`
	To          int    `json:"to"`
	Direction   string `json:"direction"`
	Stops       int    `json:"stops"`
	TimeMinutes int    `json:"timeMinutes"`
	Fare        int    `json:"fare"`
	ETAMinutes  int    `json:"etaMinutes"`
}
