package restapi

import (
	"sort"

	"github.com/DvijDesai0102/CSC210-Project/internal/models"
	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/DvijDesai0102/CSC210-Project/internal/routing"
	"github.com/DvijDesai0102/CSC210-Project/internal/train"
)

func busStopModel(g *network.Graph, stop network.StopID) models.BusStop {
	lines := g.LinesAt(stop)
	lineIDs := make([]int, len(lines))
	for i, line := range lines {
		lineIDs[i] = int(line)
	}

	info, _ := g.Info(stop)
	model := models.NewBusStop(int(stop), info.Name, lineIDs)
	if info.Location != nil {
		model = model.WithLocation(info.Location.Lat, info.Location.Lon)
	}
	return model
}

func busLineModel(line network.LineDefinition) models.BusLine {
	stopIDs := make([]int, len(line.Stops))
	for i, stop := range line.Stops {
		stopIDs[i] = int(stop)
	}
	return models.NewBusLine(int(line.ID), line.Name, stopIDs)
}

func busRouteModel(g *network.Graph, route routing.Route) models.BusRoute {
	model := models.BusRoute{
		StopIDs:     make([]int, len(route.Stops)),
		LineIDs:     make([]int, len(route.Lines)),
		DistanceKm:  route.DistanceKm,
		Transfers:   route.Transfers,
		TimeMinutes: route.TimeMinutes,
		Fare:        route.Fare,
	}
	for i, stop := range route.Stops {
		model.StopIDs[i] = int(stop)
	}
	for i, line := range route.Lines {
		model.LineIDs[i] = int(line)
	}
	model.Polyline = routePolyline(g, route.Stops)
	return model
}

// routePolyline is empty when any stop on the route has no location.
func routePolyline(g *network.Graph, stops []network.StopID) string {
	if len(stops) < 2 {
		return ""
	}
	points := make([]models.CoordinatePoint, 0, len(stops))
	for _, stop := range stops {
		location, ok := g.Location(stop)
		if !ok {
			return ""
		}
		points = append(points, models.CoordinatePoint{Lat: location.Lat, Lon: location.Lon})
	}
	return models.EncodePolyline(points)
}

func busRoutesEntry(g *network.Graph, plan routing.Plan) models.BusRoutesEntry {
	entry := models.BusRoutesEntry{
		From:   int(plan.From),
		To:     int(plan.To),
		Routes: make([]models.BusRoute, len(plan.Routes)),
	}
	for i, route := range plan.Routes {
		entry.Routes[i] = busRouteModel(g, route)
	}
	if plan.Shortest != nil {
		shortest := busRouteModel(g, *plan.Shortest)
		entry.Shortest = &shortest
	}
	if plan.Fastest != nil {
		fastest := busRouteModel(g, *plan.Fastest)
		entry.Fastest = &fastest
	}
	return entry
}

// planReferences collects the lines ridden and the stops visited by any route of the plan.
func planReferences(g *network.Graph, plan routing.Plan) models.ReferencesModel {
	refs := models.NewEmptyReferences()

	stops := map[network.StopID]bool{plan.From: true, plan.To: true}
	lines := make(map[network.LineID]bool)
	for _, route := range plan.Routes {
		for _, stop := range route.Stops {
			stops[stop] = true
		}
		for _, line := range route.Lines {
			lines[line] = true
		}
	}

	for _, line := range g.Lines() {
		if lines[line.ID] {
			refs.Lines = append(refs.Lines, busLineModel(line))
		}
	}

	stopIDs := make([]network.StopID, 0, len(stops))
	for stop := range stops {
		stopIDs = append(stopIDs, stop)
	}
	sort.Slice(stopIDs, func(i, j int) bool { return stopIDs[i] < stopIDs[j] })
	for _, stop := range stopIDs {
		refs.Stops = append(refs.Stops, busStopModel(g, stop))
	}
	return refs
}

func trainQuoteModel(quote train.Quote) models.TrainQuote {
	return models.TrainQuote{
		From:        int(quote.From),
		To:          int(quote.To),
		Direction:   string(quote.Direction),
		Stops:       quote.Stops,
		TimeMinutes: quote.TimeMinutes,
		Fare:        quote.Fare,
		ETAMinutes:  quote.ETAMinutes,
	}
}

func trainLineModel(line *train.Line) models.TrainLine {
	return models.TrainLine{
		StationCount: line.StationCount(),
		Forward:      stationIDs(line.Forward()),
		Backward:     stationIDs(line.Backward()),
	}
}

func stationIDs(stations []train.StationID) []int {
	ids := make([]int, len(stations))
	for i, station := range stations {
		ids[i] = int(station)
	}
	return ids
}
