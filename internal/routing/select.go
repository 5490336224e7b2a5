package routing

import "errors"

// ErrNoRoute is returned when there is nothing to choose from.
var ErrNoRoute = errors.New("no route found")

// SelectBest scans routes once and returns the one with the least distance and,
// independently, the one with the least time. Ties keep the earlier route.
func SelectBest(routes []Route) (shortest, fastest Route, err error) {
	if len(routes) == 0 {
		return Route{}, Route{}, ErrNoRoute
	}

	shortestIdx, fastestIdx := 0, 0
	for i := 1; i < len(routes); i++ {
		if routes[i].DistanceKm < routes[shortestIdx].DistanceKm {
			shortestIdx = i
		}
		if routes[i].TimeMinutes < routes[fastestIdx].TimeMinutes {
			fastestIdx = i
		}
	}
	return routes[shortestIdx], routes[fastestIdx], nil
}
