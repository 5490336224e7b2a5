package train

import (
	"github.com/DvijDesai0102/CSC210-Project/internal/utils"
)

const (
	// DefaultStationCount is the number of stations on the line.
	DefaultStationCount = 8

	// MinutesPerStop is the running time between adjacent stations.
	MinutesPerStop = 4

	// HeadwayMinutes is the interval between trains, quoted as the wait for the next one.
	HeadwayMinutes = 9
)

// StationID identifies a station, numbered from 1 at one end of the line.
type StationID int

// Direction of travel along the line.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
	Stay     Direction = "none"
)

// FareTier charges Fare for journeys of at most MaxStops stops.
type FareTier struct {
	MaxStops int
	Fare     int
}

// DefaultFareTiers is the three step tariff: up to 3 stops, up to 5, and beyond.
var DefaultFareTiers = []FareTier{
	{MaxStops: 3, Fare: 15},
	{MaxStops: 5, Fare: 20},
	{MaxStops: DefaultStationCount, Fare: 25},
}

// Quote is the answer to a train query.
type Quote struct {
	From        StationID
	To          StationID
	Direction   Direction
	Stops       int
	TimeMinutes int
	Fare        int
	ETAMinutes  int
}

// Line is a straight sequence of stations with no branches.
type Line struct {
	stations []StationID
}

// NewLine creates a line of stationCount stations numbered 1..stationCount.
// A stationCount below one gives an empty line on which every quote fails.
func NewLine(stationCount int) *Line {
	stations := make([]StationID, max(stationCount, 0))
	for i := range stations {
		stations[i] = StationID(i + 1)
	}
	return &Line{stations: stations}
}

// StationCount is the number of stations on the line.
func (l *Line) StationCount() int {
	return len(l.stations)
}

// Forward lists the stations from the first to the last.
func (l *Line) Forward() []StationID {
	out := make([]StationID, len(l.stations))
	copy(out, l.stations)
	return out
}

// Backward lists the stations from the last to the first.
func (l *Line) Backward() []StationID {
	out := make([]StationID, len(l.stations))
	for i, station := range l.stations {
		out[len(l.stations)-1-i] = station
	}
	return out
}

// Quote computes stops, running time, fare and the wait for the next train.
// Stations outside the line fail with utils.ErrInputRange.
func (l *Line) Quote(from, to StationID) (Quote, error) {
	count := len(l.stations)
	if err := utils.ValidateRange("from", int(from), 1, count); err != nil {
		return Quote{}, err
	}
	if err := utils.ValidateRange("to", int(to), 1, count); err != nil {
		return Quote{}, err
	}

	stops := int(to - from)
	direction := Forward
	switch {
	case stops < 0:
		stops = -stops
		direction = Backward
	case stops == 0:
		direction = Stay
	}

	return Quote{
		From:        from,
		To:          to,
		Direction:   direction,
		Stops:       stops,
		TimeMinutes: stops * MinutesPerStop,
		Fare:        FareForStops(stops),
		ETAMinutes:  HeadwayMinutes,
	}, nil
}

// FareForStops looks the stop count up in DefaultFareTiers. Counts past the
// last tier pay the last tier's fare.
func FareForStops(stops int) int {
	for _, tier := range DefaultFareTiers {
		if stops <= tier.MaxStops {
			return tier.Fare
		}
	}
	return DefaultFareTiers[len(DefaultFareTiers)-1].Fare
}

// MaxStationCount bounds the line length Query accepts.
const MaxStationCount = 1000

// Query answers one train question on a line of stationCount stations.
// A stationCount outside [1, MaxStationCount] fails with utils.ErrInputRange.
func Query(from, to, stationCount int) (Quote, error) {
	if err := utils.ValidateRange("stationCount", stationCount, 1, MaxStationCount); err != nil {
		return Quote{}, err
	}
	return NewLine(stationCount).Quote(StationID(from), StationID(to))
}
