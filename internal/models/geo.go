package models

import (
	"github.com/twpayne/go-polyline"
)

type CoordinatePoint struct {
	Lat float64
	Lon float64
}

// EncodePolyline encodes the points with the Google polyline algorithm.
func EncodePolyline(points []CoordinatePoint) string {
	if len(points) == 0 {
		return ""
	}
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat, p.Lon}
	}
	return string(polyline.EncodeCoords(coords))
}
