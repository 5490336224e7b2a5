package gtfs

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/DvijDesai0102/CSC210-Project/internal/utils"
	"github.com/jamespfennell/gtfs"
)

// BuildDefinition turns a static feed into a network definition. Each route becomes one
// line following the stop pattern of its longest trip. Stops keep their GTFS id when every
// id is a distinct positive integer; otherwise they are numbered 1..n in id order. Distances between
// consecutive stops come from their coordinates. Feeds serving more than stopLimit stops
// fail with network.ErrNetworkTooLarge; a stopLimit of zero disables the check.
func BuildDefinition(staticData *gtfs.Static, stopLimit int) (network.Definition, map[string]int, error) {
	patterns := routePatterns(staticData)
	if len(patterns) == 0 {
		return network.Definition{}, nil, fmt.Errorf("GTFS feed has no route with at least two stops")
	}

	var stopIDs []string
	stopsByID := make(map[string]*gtfs.Stop)
	for _, pattern := range patterns {
		for _, stop := range pattern.stops {
			if _, seen := stopsByID[stop.Id]; !seen {
				stopsByID[stop.Id] = stop
				stopIDs = append(stopIDs, stop.Id)
			}
		}
	}
	if stopLimit > 0 && len(stopIDs) > stopLimit {
		return network.Definition{}, nil, fmt.Errorf("GTFS feed: %d stops, limit %d: %w", len(stopIDs), stopLimit, network.ErrNetworkTooLarge)
	}
	sort.Strings(stopIDs)
	index := numberStops(stopIDs)

	def := network.Definition{}
	for _, gtfsID := range stopIDs {
		stop := stopsByID[gtfsID]
		spec := network.StopSpec{
			ID:   index[gtfsID],
			Name: stop.Name,
			Lat:  stop.Latitude,
			Lon:  stop.Longitude,
		}
		def.Stops = append(def.Stops, spec)
		if spec.ID > def.MaxStop {
			def.MaxStop = spec.ID
		}
	}

	for i, pattern := range patterns {
		line := network.LineSpec{ID: i + 1, Name: routeName(pattern.route)}
		for j, stop := range pattern.stops {
			line.Stops = append(line.Stops, index[stop.Id])
			if j == 0 {
				continue
			}
			prev := pattern.stops[j-1]
			if km, ok := stopDistance(prev, stop); ok {
				def.Distances = append(def.Distances, network.DistanceSpec{
					From: index[prev.Id],
					To:   index[stop.Id],
					Km:   km,
				})
			}
		}
		def.Lines = append(def.Lines, line)
	}

	if err := def.Validate(); err != nil {
		return network.Definition{}, nil, err
	}
	return def, index, nil
}

type routePattern struct {
	route *gtfs.Route
	stops []*gtfs.Stop
}

func routePatterns(staticData *gtfs.Static) []routePattern {
	longest := make(map[string]*gtfs.ScheduledTrip)
	for i := range staticData.Trips {
		trip := &staticData.Trips[i]
		if trip.Route == nil {
			continue
		}
		best, ok := longest[trip.Route.Id]
		if !ok || len(trip.StopTimes) > len(best.StopTimes) ||
			(len(trip.StopTimes) == len(best.StopTimes) && trip.ID < best.ID) {
			longest[trip.Route.Id] = trip
		}
	}

	routeIDs := make([]string, 0, len(longest))
	for id := range longest {
		routeIDs = append(routeIDs, id)
	}
	sort.Strings(routeIDs)

	var patterns []routePattern
	for _, id := range routeIDs {
		trip := longest[id]
		stopTimes := make([]gtfs.ScheduledStopTime, len(trip.StopTimes))
		copy(stopTimes, trip.StopTimes)
		sort.SliceStable(stopTimes, func(a, b int) bool {
			return stopTimes[a].StopSequence < stopTimes[b].StopSequence
		})

		var stops []*gtfs.Stop
		for _, st := range stopTimes {
			if st.Stop == nil {
				continue
			}
			// a stop listed twice in a row is one visit
			if len(stops) > 0 && stops[len(stops)-1].Id == st.Stop.Id {
				continue
			}
			stops = append(stops, st.Stop)
		}
		if len(stops) < 2 {
			continue
		}
		patterns = append(patterns, routePattern{route: trip.Route, stops: stops})
	}
	return patterns
}

func numberStops(sortedIDs []string) map[string]int {
	index := make(map[string]int, len(sortedIDs))
	taken := make(map[int]bool, len(sortedIDs))
	numeric := true
	for _, id := range sortedIDs {
		n, err := strconv.Atoi(id)
		// "1" and "01" would share a number
		if err != nil || n <= 0 || taken[n] {
			numeric = false
			break
		}
		taken[n] = true
		index[id] = n
	}
	if numeric {
		return index
	}

	for i, id := range sortedIDs {
		index[id] = i + 1
	}
	return index
}

func stopDistance(a, b *gtfs.Stop) (float64, bool) {
	if a.Latitude == nil || a.Longitude == nil || b.Latitude == nil || b.Longitude == nil {
		return 0, false
	}
	return utils.Haversine(*a.Latitude, *a.Longitude, *b.Latitude, *b.Longitude), true
}

func routeName(route *gtfs.Route) string {
	switch {
	case route.ShortName != "" && route.LongName != "":
		return route.ShortName + " " + route.LongName
	case route.ShortName != "":
		return route.ShortName
	case route.LongName != "":
		return route.LongName
	default:
		return route.Id
	}
}
