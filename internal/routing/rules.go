package routing

import (
	"math"

	"github.com/DvijDesai0102/CSC210-Project/internal/network"
)

// Rules holds the tariff and speed constants applied to every route.
type Rules struct {
	// BaseFare covers the first FareBlockKm kilometers.
	BaseFare float64
	// FareIncrement is charged for every further started block of FareBlockKm.
	FareIncrement float64
	FareBlockKm   float64

	MinutesPerKm           float64
	TransferPenaltyMinutes float64
}

// DefaultRules returns the standard city tariff: 15 for the first 5 km, 5 per
// further 5 km, 2 minutes per km and 7 minutes per change of bus.
func DefaultRules() Rules {
	return Rules{
		BaseFare:               15,
		FareIncrement:          5,
		FareBlockKm:            5,
		MinutesPerKm:           2,
		TransferPenaltyMinutes: 7,
	}
}

// RulesFromTariff converts a definition file tariff, falling back to the defaults when nil.
func RulesFromTariff(tariff *network.Tariff) Rules {
	if tariff == nil {
		return DefaultRules()
	}
	return Rules{
		BaseFare:               tariff.BaseFare,
		FareIncrement:          tariff.FareIncrement,
		FareBlockKm:            tariff.FareBlockKm,
		MinutesPerKm:           tariff.MinutesPerKm,
		TransferPenaltyMinutes: tariff.TransferPenaltyMinutes,
	}
}

// Fare prices a journey of distanceKm. Partial blocks are charged in full.
func (r Rules) Fare(distanceKm float64) float64 {
	if distanceKm <= r.FareBlockKm {
		return r.BaseFare
	}
	blocks := math.Ceil((distanceKm - r.FareBlockKm) / r.FareBlockKm)
	return r.BaseFare + blocks*r.FareIncrement
}

// TravelTime is the riding time in minutes plus the penalty for each transfer.
func (r Rules) TravelTime(distanceKm float64, transfers int) float64 {
	return distanceKm*r.MinutesPerKm + float64(transfers)*r.TransferPenaltyMinutes
}

// Fare prices a journey with the default rules.
func Fare(distanceKm float64) float64 {
	return DefaultRules().Fare(distanceKm)
}

// TravelTime computes minutes with the default rules.
func TravelTime(distanceKm float64, transfers int) float64 {
	return DefaultRules().TravelTime(distanceKm, transfers)
}
