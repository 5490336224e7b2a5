package network

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// ErrNetworkTooLarge is returned for a network serving more stops than the configured limit.
// Route enumeration is exhaustive, so its cost grows exponentially with the stop count.
var ErrNetworkTooLarge = errors.New("network serves too many stops")

// Definition is the file form of a bus network.
type Definition struct {
	DefaultDistanceKm *float64       `yaml:"defaultDistanceKm" validate:"omitempty,gte=0"`
	MaxStop           int            `yaml:"maxStop" validate:"gte=0"`
	Tariff            *Tariff        `yaml:"tariff" validate:"omitempty"`
	Lines             []LineSpec     `yaml:"lines" validate:"required,min=1,dive"`
	Distances         []DistanceSpec `yaml:"distances" validate:"omitempty,dive"`
	Stops             []StopSpec     `yaml:"stops" validate:"omitempty,dive"`
}

// LineSpec describes one line in a definition file.
type LineSpec struct {
	ID    int    `yaml:"id" validate:"gt=0"`
	Name  string `yaml:"name"`
	Stops []int  `yaml:"stops" validate:"min=2,dive,gt=0"`
}

// DistanceSpec is a known distance between two stops.
type DistanceSpec struct {
	From int     `yaml:"from" csv:"from" validate:"gt=0"`
	To   int     `yaml:"to" csv:"to" validate:"gt=0"`
	Km   float64 `yaml:"km" csv:"distance_km" validate:"gte=0"`
}

// StopSpec names a stop and optionally places it on the map.
type StopSpec struct {
	ID   int      `yaml:"id" validate:"gt=0"`
	Name string   `yaml:"name"`
	Lat  *float64 `yaml:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lon  *float64 `yaml:"lon" validate:"omitempty,gte=-180,lte=180"`
}

// Tariff overrides the fare and travel time constants.
type Tariff struct {
	BaseFare               float64 `yaml:"baseFare" validate:"gte=0"`
	FareIncrement          float64 `yaml:"fareIncrement" validate:"gte=0"`
	FareBlockKm            float64 `yaml:"fareBlockKm" validate:"gt=0"`
	MinutesPerKm           float64 `yaml:"minutesPerKm" validate:"gte=0"`
	TransferPenaltyMinutes float64 `yaml:"transferPenaltyMinutes" validate:"gte=0"`
}

// SampleDefinition returns the built-in network in definition form.
func SampleDefinition() Definition {
	defaultKm := DefaultDistanceKm
	def := Definition{
		DefaultDistanceKm: &defaultKm,
		MaxStop:           MaxSampleStop,
	}
	for _, line := range SampleLines() {
		spec := LineSpec{ID: int(line.ID), Name: line.Name}
		for _, stop := range line.Stops {
			spec.Stops = append(spec.Stops, int(stop))
		}
		def.Lines = append(def.Lines, spec)
	}
	for pair, km := range SampleDistances() {
		def.Distances = append(def.Distances, DistanceSpec{From: int(pair.From), To: int(pair.To), Km: km})
	}
	return def
}

// ParseDefinition decodes and validates a YAML network definition.
func ParseDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("error parsing network definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// LoadDefinition reads a YAML network definition from disk.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("error reading network definition: %w", err)
	}
	return ParseDefinition(data)
}

// ParseDistancesCSV decodes a from,to,distance_km table.
func ParseDistancesCSV(data []byte) ([]DistanceSpec, error) {
	var rows []*DistanceSpec
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("error parsing distance table: %w", err)
	}

	v := validator.New()
	distances := make([]DistanceSpec, 0, len(rows))
	for i, row := range rows {
		if err := v.Struct(row); err != nil {
			return nil, fmt.Errorf("distance table row %d: %w", i+1, err)
		}
		distances = append(distances, *row)
	}
	return distances, nil
}

// LoadDistancesCSV reads a distance table from disk.
func LoadDistancesCSV(path string) ([]DistanceSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading distance table: %w", err)
	}
	return ParseDistancesCSV(data)
}

// Validate checks field constraints and that every described stop is within MaxStop.
func (def Definition) Validate() error {
	if err := validator.New().Struct(def); err != nil {
		return fmt.Errorf("invalid network definition: %w", err)
	}
	if def.MaxStop == 0 {
		return nil
	}
	for _, line := range def.Lines {
		for _, stop := range line.Stops {
			if stop > def.MaxStop {
				return fmt.Errorf("invalid network definition: line %d serves stop %d above maxStop %d", line.ID, stop, def.MaxStop)
			}
		}
	}
	return nil
}

// StopCount is the number of distinct stops the definition's lines serve.
func (def Definition) StopCount() int {
	served := make(map[int]bool)
	for _, line := range def.Lines {
		for _, stop := range line.Stops {
			served[stop] = true
		}
	}
	return len(served)
}

// CheckStopLimit fails with ErrNetworkTooLarge when the lines serve more than limit stops.
// A limit of zero or less disables the check.
func (def Definition) CheckStopLimit(limit int) error {
	if limit <= 0 {
		return nil
	}
	if n := def.StopCount(); n > limit {
		return fmt.Errorf("%d stops, limit %d: %w", n, limit, ErrNetworkTooLarge)
	}
	return nil
}

// Build turns the definition into a graph.
func (def Definition) Build() (*Graph, error) {
	lines := make([]LineDefinition, 0, len(def.Lines))
	for _, spec := range def.Lines {
		line := LineDefinition{ID: LineID(spec.ID), Name: spec.Name}
		for _, stop := range spec.Stops {
			line.Stops = append(line.Stops, StopID(stop))
		}
		lines = append(lines, line)
	}

	known := make(DistanceTable, len(def.Distances))
	for _, d := range def.Distances {
		known[StopPair{From: StopID(d.From), To: StopID(d.To)}] = d.Km
	}

	defaultKm := DefaultDistanceKm
	if def.DefaultDistanceKm != nil {
		defaultKm = *def.DefaultDistanceKm
	}

	g, err := Build(lines, known, defaultKm)
	if err != nil {
		return nil, err
	}

	if StopID(def.MaxStop) > g.maxStop {
		g.maxStop = StopID(def.MaxStop)
	}

	for _, spec := range def.Stops {
		info := StopInfo{Name: spec.Name}
		if spec.Lat != nil && spec.Lon != nil {
			info.Location = &Location{Lat: *spec.Lat, Lon: *spec.Lon}
		}
		g.info[StopID(spec.ID)] = info
	}

	return g, nil
}
