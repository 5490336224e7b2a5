package routing

import (
	"context"

	"github.com/DvijDesai0102/CSC210-Project/internal/network"
)

// cancelCheckInterval is how many stops the search visits between context checks.
const cancelCheckInterval = 256

// Route is one simple path between two stops with its derived metrics.
type Route struct {
	Stops []network.StopID
	// Lines[i] is the line ridden from Stops[i] to Stops[i+1].
	Lines       []network.LineID
	DistanceKm  float64
	Transfers   int
	TimeMinutes float64
	Fare        float64
}

// Enumerate returns every simple path from start to end using the default rules.
func Enumerate(g *network.Graph, start, end network.StopID) []Route {
	return EnumerateWithRules(g, start, end, DefaultRules())
}

// EnumerateWithRules returns every simple path from start to end in depth-first
// traversal order. Edges are tried in the order they were added to the graph.
// When start equals end the single zero length route is returned; when the stops
// are not connected the result is empty.
func EnumerateWithRules(g *network.Graph, start, end network.StopID, rules Rules) []Route {
	routes, _ := EnumerateContext(context.Background(), g, start, end, rules)
	return routes
}

// EnumerateContext is EnumerateWithRules bounded by ctx. Once ctx is done the
// search stops and ctx.Err() is returned without any routes.
func EnumerateContext(ctx context.Context, g *network.Graph, start, end network.StopID, rules Rules) ([]Route, error) {
	s := &search{
		ctx:     ctx,
		graph:   g,
		target:  end,
		rules:   rules,
		visited: make(map[network.StopID]bool),
	}
	s.visit(start, 0, false, 0, 0)
	if s.err != nil {
		return nil, s.err
	}
	return s.routes, nil
}

// search owns the path buffers of one enumeration. Every mutation made while
// descending into a stop is undone before returning to the caller.
type search struct {
	ctx     context.Context
	err     error
	steps   int
	graph   *network.Graph
	target  network.StopID
	rules   Rules
	visited map[network.StopID]bool
	path    []network.StopID
	lines   []network.LineID
	routes  []Route
}

func (s *search) visit(current network.StopID, prevLine network.LineID, riding bool, distanceKm float64, transfers int) {
	if s.err != nil {
		return
	}
	if s.steps%cancelCheckInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return
		}
	}
	s.steps++

	s.visited[current] = true
	s.path = append(s.path, current)

	if current == s.target {
		s.emit(distanceKm, transfers)
	} else {
		for _, e := range s.graph.Edges(current) {
			if s.visited[e.To] {
				continue
			}
			next := transfers
			if riding && e.Line != prevLine {
				next++
			}
			s.lines = append(s.lines, e.Line)
			s.visit(e.To, e.Line, true, distanceKm+e.DistanceKm, next)
			s.lines = s.lines[:len(s.lines)-1]
		}
	}

	s.path = s.path[:len(s.path)-1]
	delete(s.visited, current)
}

func (s *search) emit(distanceKm float64, transfers int) {
	stops := make([]network.StopID, len(s.path))
	copy(stops, s.path)
	lines := make([]network.LineID, len(s.lines))
	copy(lines, s.lines)

	s.routes = append(s.routes, Route{
		Stops:       stops,
		Lines:       lines,
		DistanceKm:  distanceKm,
		Transfers:   transfers,
		TimeMinutes: s.rules.TravelTime(distanceKm, transfers),
		Fare:        s.rules.Fare(distanceKm),
	})
}
