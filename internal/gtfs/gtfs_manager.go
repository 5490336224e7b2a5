package gtfs

import (
	"context"
	"log/slog"
	"time"

	"github.com/DvijDesai0102/CSC210-Project/internal/logging"
	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/jamespfennell/gtfs"
)

// Manager holds a parsed static feed and the network definition derived from it.
type Manager struct {
	gtfsSource  string
	gtfsData    *gtfs.Static
	definition  network.Definition
	stopIndex   map[string]int
	lastUpdated time.Time
	config      Config
}

// InitGTFSManager loads the feed named by config.GtfsURL, a URL or a local file path,
// and converts it into a network definition.
func InitGTFSManager(ctx context.Context, config Config) (*Manager, error) {
	start := time.Now()

	staticData, err := loadGTFSData(ctx, config)
	if err != nil {
		return nil, err
	}

	definition, stopIndex, err := BuildDefinition(staticData, config.StopLimit)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		gtfsSource:  config.GtfsURL,
		gtfsData:    staticData,
		definition:  definition,
		stopIndex:   stopIndex,
		lastUpdated: time.Now(),
		config:      config,
	}

	logger := logging.FromContext(ctx)
	if config.Verbose {
		logger = logger.With(slog.Bool("verbose", true))
	}
	logging.LogOperation(logger, "gtfs_static_loaded",
		slog.String("source", config.GtfsURL),
		slog.Int("routes", len(staticData.Routes)),
		slog.Int("lines", len(definition.Lines)),
		slog.Int("stops", len(definition.Stops)),
		slog.Int("warnings", len(staticData.Warnings)),
		slog.Duration("duration", time.Since(start)))

	return manager, nil
}

func (manager *Manager) GetStaticData() *gtfs.Static {
	return manager.gtfsData
}

// Definition is the network derived from the feed.
func (manager *Manager) Definition() network.Definition {
	return manager.definition
}

// StopNumber maps a GTFS stop id to its stop number in the network.
func (manager *Manager) StopNumber(gtfsStopID string) (int, bool) {
	n, ok := manager.stopIndex[gtfsStopID]
	return n, ok
}

func (manager *Manager) LastUpdated() time.Time {
	return manager.lastUpdated
}

func (manager *Manager) Source() string {
	return manager.gtfsSource
}
