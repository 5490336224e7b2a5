package routing

import (
	"testing"

	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBestEmpty(t *testing.T) {
	_, _, err := SelectBest(nil)
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestSelectBestIndependentOrderings(t *testing.T) {
	routes := []Route{
		{Stops: []network.StopID{1, 2, 3}, DistanceKm: 4, TimeMinutes: 22},
		{Stops: []network.StopID{1, 5, 3}, DistanceKm: 3, TimeMinutes: 20},
		{Stops: []network.StopID{1, 6, 3}, DistanceKm: 6, TimeMinutes: 12},
	}

	shortest, fastest, err := SelectBest(routes)
	require.NoError(t, err)
	assert.Equal(t, routes[1], shortest)
	assert.Equal(t, routes[2], fastest)
}

func TestSelectBestTiesKeepFirst(t *testing.T) {
	routes := []Route{
		{Stops: []network.StopID{1, 9}, DistanceKm: 5, TimeMinutes: 10},
		{Stops: []network.StopID{1, 4, 9}, DistanceKm: 2, TimeMinutes: 11},
		{Stops: []network.StopID{1, 7, 9}, DistanceKm: 2, TimeMinutes: 10},
	}

	shortest, fastest, err := SelectBest(routes)
	require.NoError(t, err)
	assert.Equal(t, []network.StopID{1, 4, 9}, shortest.Stops)
	assert.Equal(t, []network.StopID{1, 9}, fastest.Stops)
}

func TestSelectBestOnSample(t *testing.T) {
	routes := Enumerate(network.Sample(), 1, 12)
	require.NotEmpty(t, routes)

	shortest, fastest, err := SelectBest(routes)
	require.NoError(t, err)

	for _, r := range routes {
		assert.LessOrEqual(t, shortest.DistanceKm, r.DistanceKm)
		assert.LessOrEqual(t, fastest.TimeMinutes, r.TimeMinutes)
	}

	// the minimum values do not depend on the order of the candidates
	reversed := make([]Route, len(routes))
	for i, r := range routes {
		reversed[len(routes)-1-i] = r
	}
	shortestRev, fastestRev, err := SelectBest(reversed)
	require.NoError(t, err)
	assert.Equal(t, shortest.DistanceKm, shortestRev.DistanceKm)
	assert.Equal(t, fastest.TimeMinutes, fastestRev.TimeMinutes)
}
