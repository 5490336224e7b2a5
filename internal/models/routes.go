package models

type BusLine struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	StopIDs []int  `json:"stopIds"`
}

func NewBusLine(id int, name string, stopIDs []int) BusLine {
	return BusLine{
		ID:      id,
		Name:    name,
		StopIDs: stopIDs,
	}
}

// BusRoute is one simple path between two stops. LineIDs[i] is the line ridden
// from StopIDs[i] to StopIDs[i+1]. Polyline is empty unless every stop has a location.
type BusRoute struct {
	StopIDs     []int   `json:"stopIds"`
	LineIDs     []int   `json:"lineIds"`
	DistanceKm  float64 `json:"distanceKm"`
	Transfers   int     `json:"transfers"`
	TimeMinutes float64 `json:"timeMinutes"`
	Fare        float64 `json:"fare"`
	Polyline    string  `json:"polyline,omitempty"`
}

// BusRoutesEntry is the entry of a bus-routes response.
type BusRoutesEntry struct {
	From     int        `json:"from"`
	To       int        `json:"to"`
	Routes   []BusRoute `json:"routes"`
	Shortest *BusRoute  `json:"shortest"`
	Fastest  *BusRoute  `json:"fastest"`
}
