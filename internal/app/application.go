package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DvijDesai0102/CSC210-Project/internal/appconf"
	"github.com/DvijDesai0102/CSC210-Project/internal/gtfs"
	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/DvijDesai0102/CSC210-Project/internal/routing"
	"github.com/DvijDesai0102/CSC210-Project/internal/train"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. Everything in it is read-only once built, so handlers share it
// without locking.
type Application struct {
	Config      appconf.Config
	Logger      *slog.Logger
	Planner     *routing.Planner
	TrainLine   *train.Line
	GtfsManager *gtfs.Manager
}

// New builds the bus network named by the configuration: a GTFS feed, a YAML definition,
// or the built-in sample network. A distances CSV, when configured, adds to the known distances.
func New(ctx context.Context, config appconf.Config, logger *slog.Logger) (*Application, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		Config:    config,
		Logger:    logger,
		TrainLine: train.NewLine(train.DefaultStationCount),
	}

	def, err := app.loadDefinition(ctx)
	if err != nil {
		return nil, err
	}

	if config.DistancesFile != "" {
		distances, err := network.LoadDistancesCSV(config.DistancesFile)
		if err != nil {
			return nil, err
		}
		def.Distances = append(def.Distances, distances...)
	}

	if err := def.CheckStopLimit(config.StopLimit); err != nil {
		return nil, fmt.Errorf("loading bus network: %w", err)
	}

	g, err := def.Build()
	if err != nil {
		return nil, fmt.Errorf("building bus network: %w", err)
	}

	app.Planner = routing.NewPlanner(g, routing.RulesFromTariff(def.Tariff))

	logger.Info("bus network ready",
		slog.Int("stops", len(g.Stops())),
		slog.Int("lines", len(g.Lines())),
		slog.Int("edges", g.EdgeCount()),
		slog.String("env", config.Env.String()))

	return app, nil
}

func (app *Application) loadDefinition(ctx context.Context) (network.Definition, error) {
	switch {
	case app.Config.GtfsFile != "":
		gtfsConfig := gtfs.NewConfig(app.Config.GtfsFile)
		gtfsConfig.StopLimit = app.Config.StopLimit
		manager, err := gtfs.InitGTFSManager(ctx, gtfsConfig)
		if err != nil {
			return network.Definition{}, fmt.Errorf("loading GTFS feed: %w", err)
		}
		app.GtfsManager = manager
		return manager.Definition(), nil
	case app.Config.NetworkFile != "":
		return network.LoadDefinition(app.Config.NetworkFile)
	default:
		return network.SampleDefinition(), nil
	}
}

// Graph is the bus network the planner searches.
func (app *Application) Graph() *network.Graph {
	return app.Planner.Graph()
}
