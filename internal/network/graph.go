package network

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrLineTooShort is returned for a line definition naming fewer than two stops.
	ErrLineTooShort = errors.New("line must serve at least two stops")

	// ErrNegativeDistance is returned when a known or default distance is negative.
	ErrNegativeDistance = errors.New("distance must be non-negative")

	// ErrUnknownStop is returned for a stop identifier that has no entry in the graph.
	ErrUnknownStop = errors.New("unknown stop")
)

// StopID identifies a bus stop.
type StopID int

// LineID identifies the bus line that produced an edge.
type LineID int

// Edge is one direction of an undirected connection between two stops.
type Edge struct {
	To         StopID
	DistanceKm float64
	Line       LineID
}

// LineDefinition lists the consecutive stops served by one line.
type LineDefinition struct {
	ID    LineID
	Name  string
	Stops []StopID
}

// StopPair is an oriented pair of stops used as a distance table key.
type StopPair struct {
	From StopID
	To   StopID
}

// DistanceTable holds known point-to-point distances in kilometers.
// Keys are looked up in both orientations.
type DistanceTable map[StopPair]float64

// Lookup returns the distance for a-b, then b-a.
func (t DistanceTable) Lookup(a, b StopID) (float64, bool) {
	if d, ok := t[StopPair{From: a, To: b}]; ok {
		return d, true
	}
	d, ok := t[StopPair{From: b, To: a}]
	return d, ok
}

// Location is a WGS84 coordinate attached to a stop.
type Location struct {
	Lat float64
	Lon float64
}

// StopInfo is optional descriptive data for a stop.
type StopInfo struct {
	Name     string
	Location *Location
}

// Graph is the bus network: an undirected multigraph keyed by stop.
// It is never mutated after Build returns and is safe to share between readers.
type Graph struct {
	adjacency map[StopID][]Edge
	lines     []LineDefinition
	info      map[StopID]StopInfo
	maxStop   StopID
	edgeCount int
}

// Build creates a graph where each consecutive stop pair of every line becomes a
// symmetric edge tagged with that line. Unlisted pairs use defaultKm.
func Build(lines []LineDefinition, known DistanceTable, defaultKm float64) (*Graph, error) {
	if defaultKm < 0 || math.IsNaN(defaultKm) {
		return nil, fmt.Errorf("default distance %v: %w", defaultKm, ErrNegativeDistance)
	}
	for pair, d := range known {
		if d < 0 || math.IsNaN(d) {
			return nil, fmt.Errorf("distance %d-%d = %v: %w", pair.From, pair.To, d, ErrNegativeDistance)
		}
	}

	g := &Graph{
		adjacency: make(map[StopID][]Edge),
		lines:     make([]LineDefinition, 0, len(lines)),
		info:      make(map[StopID]StopInfo),
	}

	for _, line := range lines {
		if len(line.Stops) < 2 {
			return nil, fmt.Errorf("line %d: %w", line.ID, ErrLineTooShort)
		}

		for _, stop := range line.Stops {
			if stop > g.maxStop {
				g.maxStop = stop
			}
		}

		for i := 0; i < len(line.Stops)-1; i++ {
			a, b := line.Stops[i], line.Stops[i+1]
			d, ok := known.Lookup(a, b)
			if !ok {
				d = defaultKm
			}
			g.addEdge(a, b, d, line.ID)
		}

		stops := make([]StopID, len(line.Stops))
		copy(stops, line.Stops)
		g.lines = append(g.lines, LineDefinition{ID: line.ID, Name: line.Name, Stops: stops})
	}

	return g, nil
}

func (g *Graph) addEdge(a, b StopID, distanceKm float64, line LineID) {
	g.adjacency[a] = append(g.adjacency[a], Edge{To: b, DistanceKm: distanceKm, Line: line})
	g.adjacency[b] = append(g.adjacency[b], Edge{To: a, DistanceKm: distanceKm, Line: line})
	g.edgeCount++
}

// Edges returns the edges incident to stop in insertion order.
// The returned slice must not be modified.
func (g *Graph) Edges(stop StopID) []Edge {
	return g.adjacency[stop]
}

// HasStop reports whether any line serves stop.
func (g *Graph) HasStop(stop StopID) bool {
	_, ok := g.adjacency[stop]
	return ok
}

// Stops returns every served stop in ascending order.
func (g *Graph) Stops() []StopID {
	stops := make([]StopID, 0, len(g.adjacency))
	for stop := range g.adjacency {
		stops = append(stops, stop)
	}
	sort.Slice(stops, func(i, j int) bool { return stops[i] < stops[j] })
	return stops
}

// Lines returns the line definitions the graph was built from, in build order.
func (g *Graph) Lines() []LineDefinition {
	out := make([]LineDefinition, len(g.lines))
	copy(out, g.lines)
	return out
}

// LinesAt returns the distinct lines serving stop, ascending.
func (g *Graph) LinesAt(stop StopID) []LineID {
	seen := make(map[LineID]bool)
	var ids []LineID
	for _, e := range g.adjacency[stop] {
		if !seen[e.Line] {
			seen[e.Line] = true
			ids = append(ids, e.Line)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MaxStop is the highest valid stop identifier. Identifiers in [1, MaxStop]
// that no line serves are valid but unknown.
func (g *Graph) MaxStop() StopID {
	return g.maxStop
}

// EdgeCount is the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Info returns the descriptive data recorded for stop, if any.
func (g *Graph) Info(stop StopID) (StopInfo, bool) {
	info, ok := g.info[stop]
	return info, ok
}

// Location returns the coordinates of stop when they are known.
func (g *Graph) Location(stop StopID) (Location, bool) {
	info, ok := g.info[stop]
	if !ok || info.Location == nil {
		return Location{}, false
	}
	return *info.Location, true
}
