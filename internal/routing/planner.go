package routing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DvijDesai0102/CSC210-Project/internal/logging"
	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/DvijDesai0102/CSC210-Project/internal/utils"
)

// Plan is the outcome of one bus query. Shortest and Fastest are nil when no route exists.
type Plan struct {
	From     network.StopID
	To       network.StopID
	Routes   []Route
	Shortest *Route
	Fastest  *Route
}

// Found reports whether at least one route connects the stops.
func (p Plan) Found() bool {
	return len(p.Routes) > 0
}

// Planner answers bus queries against one immutable graph.
// It holds no per-query state and may be shared between goroutines.
type Planner struct {
	graph *network.Graph
	rules Rules
}

func NewPlanner(g *network.Graph, rules Rules) *Planner {
	return &Planner{graph: g, rules: rules}
}

func (p *Planner) Graph() *network.Graph {
	return p.graph
}

func (p *Planner) Rules() Rules {
	return p.rules
}

// Plan validates both stops, enumerates every route and selects the best ones.
// Out of range stops fail with utils.ErrInputRange and stops no line serves with
// network.ErrUnknownStop. Finding no route is not an error. When ctx is done
// before the search finishes the context error is returned.
func (p *Planner) Plan(ctx context.Context, from, to int) (Plan, error) {
	maxStop := int(p.graph.MaxStop())
	if err := utils.ValidateRange("from", from, 1, maxStop); err != nil {
		return Plan{}, err
	}
	if err := utils.ValidateRange("to", to, 1, maxStop); err != nil {
		return Plan{}, err
	}

	start, end := network.StopID(from), network.StopID(to)
	if !p.graph.HasStop(start) {
		return Plan{}, fmt.Errorf("stop %d: %w", start, network.ErrUnknownStop)
	}
	if !p.graph.HasStop(end) {
		return Plan{}, fmt.Errorf("stop %d: %w", end, network.ErrUnknownStop)
	}

	began := time.Now()
	routes, err := EnumerateContext(ctx, p.graph, start, end, p.rules)
	if err != nil {
		return Plan{}, fmt.Errorf("searching routes from %d to %d: %w", start, end, err)
	}
	plan := Plan{
		From:   start,
		To:     end,
		Routes: routes,
	}

	if plan.Found() {
		shortest, fastest, err := SelectBest(plan.Routes)
		if err != nil {
			return Plan{}, err
		}
		plan.Shortest = &shortest
		plan.Fastest = &fastest
	}

	logging.LogOperation(logging.FromContext(ctx), "bus_routes_enumerated",
		slog.Int("from", from),
		slog.Int("to", to),
		slog.Int("route_count", len(plan.Routes)),
		slog.Duration("duration", time.Since(began)),
		slog.String("component", "planner"))

	return plan, nil
}
