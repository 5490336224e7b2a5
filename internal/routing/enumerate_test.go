package routing

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, lines []network.LineDefinition, known network.DistanceTable) *network.Graph {
	t.Helper()
	g, err := network.Build(lines, known, network.DefaultDistanceKm)
	require.NoError(t, err)
	return g
}

func TestEnumerateSameStop(t *testing.T) {
	g := network.Sample()

	for _, stop := range g.Stops() {
		routes := Enumerate(g, stop, stop)
		require.Len(t, routes, 1)
		assert.Equal(t, []network.StopID{stop}, routes[0].Stops)
		assert.Empty(t, routes[0].Lines)
		assert.Equal(t, 0.0, routes[0].DistanceKm)
		assert.Equal(t, 0, routes[0].Transfers)
		assert.Equal(t, 0.0, routes[0].TimeMinutes)
		assert.Equal(t, 15.0, routes[0].Fare)
	}
}

func TestEnumerateSingleEdge(t *testing.T) {
	g := network.Sample()

	// stop 1 is only reachable through stop 2
	routes := Enumerate(g, 1, 2)
	require.Len(t, routes, 1)
	assert.Equal(t, Route{
		Stops:       []network.StopID{1, 2},
		Lines:       []network.LineID{1},
		DistanceKm:  2.0,
		Transfers:   0,
		TimeMinutes: 4.0,
		Fare:        15,
	}, routes[0])
}

func TestEnumerateCountsTransfers(t *testing.T) {
	g := buildGraph(t, []network.LineDefinition{
		{ID: 1, Stops: []network.StopID{1, 2, 3}},
		{ID: 2, Stops: []network.StopID{3, 4}},
		{ID: 3, Stops: []network.StopID{1, 4}},
	}, nil)

	routes := Enumerate(g, 1, 4)
	require.Len(t, routes, 2)

	assert.Equal(t, []network.StopID{1, 2, 3, 4}, routes[0].Stops)
	assert.Equal(t, []network.LineID{1, 1, 2}, routes[0].Lines)
	assert.Equal(t, 3.0, routes[0].DistanceKm)
	assert.Equal(t, 1, routes[0].Transfers)
	assert.Equal(t, 13.0, routes[0].TimeMinutes)

	assert.Equal(t, []network.StopID{1, 4}, routes[1].Stops)
	assert.Equal(t, 0, routes[1].Transfers)
	assert.Equal(t, 2.0, routes[1].TimeMinutes)
}

func TestEnumerateFirstEdgeNeverTransfers(t *testing.T) {
	g := buildGraph(t, []network.LineDefinition{
		{ID: 1, Stops: []network.StopID{1, 2}},
		{ID: 2, Stops: []network.StopID{2, 3}},
		{ID: 3, Stops: []network.StopID{3, 4}},
	}, nil)

	routes := Enumerate(g, 1, 2)
	require.Len(t, routes, 1)
	assert.Equal(t, 0, routes[0].Transfers)

	routes = Enumerate(g, 1, 4)
	require.Len(t, routes, 1)
	assert.Equal(t, 2, routes[0].Transfers)
	assert.Equal(t, 3*2.0+2*7, routes[0].TimeMinutes)
}

func TestEnumerateParallelLines(t *testing.T) {
	// two lines serve the same pair, so each counts as its own route
	g := buildGraph(t, []network.LineDefinition{
		{ID: 1, Stops: []network.StopID{1, 2, 3}},
		{ID: 2, Stops: []network.StopID{2, 3}},
	}, nil)

	routes := Enumerate(g, 1, 3)
	require.Len(t, routes, 2)
	assert.Equal(t, []network.LineID{1, 1}, routes[0].Lines)
	assert.Equal(t, 0, routes[0].Transfers)
	assert.Equal(t, []network.LineID{1, 2}, routes[1].Lines)
	assert.Equal(t, 1, routes[1].Transfers)
}

func TestEnumerateNoRoute(t *testing.T) {
	g := buildGraph(t, []network.LineDefinition{
		{ID: 1, Stops: []network.StopID{1, 2}},
		{ID: 2, Stops: []network.StopID{3, 4}},
	}, nil)

	assert.Empty(t, Enumerate(g, 1, 4))
	assert.Empty(t, Enumerate(g, 1, 99))
}

func TestEnumerateSampleProperties(t *testing.T) {
	g := network.Sample()
	routes := Enumerate(g, 1, 12)
	require.NotEmpty(t, routes)

	seen := make(map[string]bool)
	for _, r := range routes {
		require.Len(t, r.Lines, len(r.Stops)-1)
		assert.Equal(t, network.StopID(1), r.Stops[0])
		assert.Equal(t, network.StopID(12), r.Stops[len(r.Stops)-1])
		assert.Greater(t, r.DistanceKm, 0.0)

		visited := make(map[network.StopID]bool)
		for _, stop := range r.Stops {
			assert.False(t, visited[stop], "route %v repeats stop %d", r.Stops, stop)
			visited[stop] = true
		}

		var distance float64
		transfers := 0
		for i := 0; i < len(r.Stops)-1; i++ {
			edge, ok := findEdge(g, r.Stops[i], r.Stops[i+1], r.Lines[i])
			require.True(t, ok, "route %v uses missing edge %d-%d", r.Stops, r.Stops[i], r.Stops[i+1])
			distance += edge.DistanceKm
			if i > 0 && r.Lines[i] != r.Lines[i-1] {
				transfers++
			}
		}
		assert.InDelta(t, distance, r.DistanceKm, 1e-9)
		assert.Equal(t, transfers, r.Transfers)
		assert.InDelta(t, TravelTime(r.DistanceKm, r.Transfers), r.TimeMinutes, 1e-9)
		assert.Equal(t, Fare(r.DistanceKm), r.Fare)

		key := fmt.Sprint(r.Stops, r.Lines)
		assert.False(t, seen[key], "route %s emitted twice", key)
		seen[key] = true
	}
}

func TestEnumerateIsComplete(t *testing.T) {
	g := network.Sample()

	for _, pair := range [][2]network.StopID{{1, 12}, {5, 13}, {7, 14}, {15, 3}} {
		t.Run(fmt.Sprintf("%d to %d", pair[0], pair[1]), func(t *testing.T) {
			var got []string
			for _, r := range Enumerate(g, pair[0], pair[1]) {
				got = append(got, fmt.Sprint(r.Lines, r.Stops))
			}

			var expected []string
			collectPaths(g, pair[0], pair[1], []network.StopID{pair[0]}, nil, &expected)

			sort.Strings(got)
			sort.Strings(expected)
			assert.Equal(t, expected, got)
		})
	}
}

func TestEnumerateFollowsEdgeOrder(t *testing.T) {
	g := network.Sample()
	routes := Enumerate(g, 2, 3)
	require.NotEmpty(t, routes)

	// the direct line 1 edge is the second edge of stop 2 and is tried before line 4
	assert.Equal(t, []network.StopID{2, 3}, routes[0].Stops)
	assert.Equal(t, 0.5, routes[0].DistanceKm)
}

// collectPaths enumerates simple paths by passing the path by value, as an
// independent reference for the buffer reusing search.
func collectPaths(g *network.Graph, current, target network.StopID, path []network.StopID, lines []network.LineID, out *[]string) {
	if current == target {
		*out = append(*out, fmt.Sprint(lines, path))
		return
	}
	for _, e := range g.Edges(current) {
		if containsStop(path, e.To) {
			continue
		}
		nextPath := append(append([]network.StopID{}, path...), e.To)
		nextLines := append(append([]network.LineID{}, lines...), e.Line)
		collectPaths(g, e.To, target, nextPath, nextLines, out)
	}
}

func containsStop(path []network.StopID, stop network.StopID) bool {
	for _, s := range path {
		if s == stop {
			return true
		}
	}
	return false
}

func findEdge(g *network.Graph, from, to network.StopID, line network.LineID) (network.Edge, bool) {
	for _, e := range g.Edges(from) {
		if e.To == to && e.Line == line {
			return e, true
		}
	}
	return network.Edge{}, false
}

// gridGraph lays rows*cols stops out in a grid with one line per row and one per column.
func gridGraph(t *testing.T, rows, cols int) *network.Graph {
	t.Helper()
	stop := func(r, c int) network.StopID { return network.StopID(r*cols + c + 1) }

	var lines []network.LineDefinition
	for r := 0; r < rows; r++ {
		line := network.LineDefinition{ID: network.LineID(len(lines) + 1)}
		for c := 0; c < cols; c++ {
			line.Stops = append(line.Stops, stop(r, c))
		}
		lines = append(lines, line)
	}
	for c := 0; c < cols; c++ {
		line := network.LineDefinition{ID: network.LineID(len(lines) + 1)}
		for r := 0; r < rows; r++ {
			line.Stops = append(line.Stops, stop(r, c))
		}
		lines = append(lines, line)
	}
	return buildGraph(t, lines, nil)
}

func TestEnumerateContext(t *testing.T) {
	t.Run("matches Enumerate when not cancelled", func(t *testing.T) {
		g := network.Sample()
		routes, err := EnumerateContext(context.Background(), g, 1, 12, DefaultRules())
		require.NoError(t, err)
		assert.Equal(t, Enumerate(g, 1, 12), routes)
	})

	t.Run("cancelled context returns before searching", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		routes, err := EnumerateContext(ctx, network.Sample(), 1, 12, DefaultRules())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, routes)
	})

	t.Run("large network stops at the deadline", func(t *testing.T) {
		g := gridGraph(t, 6, 6)
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		began := time.Now()
		routes, err := EnumerateContext(ctx, g, 1, 36, DefaultRules())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Nil(t, routes)
		assert.Less(t, time.Since(began), time.Second)
	})
}
