package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePolyline(t *testing.T) {
	points := []CoordinatePoint{
		{Lat: 38.5, Lon: -120.2},
		{Lat: 40.7, Lon: -120.95},
		{Lat: 43.252, Lon: -126.453},
	}

	encoded := EncodePolyline(points)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)
}

func TestEncodePolylineEmpty(t *testing.T) {
	assert.Equal(t, "", EncodePolyline(nil))
}

func TestBusStopWithLocation(t *testing.T) {
	stop := NewBusStop(1, "Central Terminal", nil)
	assert.Equal(t, []int{}, stop.LineIDs)
	assert.Nil(t, stop.Lat)

	located := stop.WithLocation(19.076, 72.8777)
	require.NotNil(t, located.Lat)
	assert.Equal(t, 19.076, *located.Lat)
	assert.Equal(t, 72.8777, *located.Lon)
	assert.Nil(t, stop.Lat, "receiver is unchanged")
}
