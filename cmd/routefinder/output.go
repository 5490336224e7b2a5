package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/DvijDesai0102/CSC210-Project/internal/routing"
	"github.com/DvijDesai0102/CSC210-Project/internal/train"
)

const banner = "==============================================="

func rupees(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

func joinIDs[T ~int](ids []T) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(int(id))
	}
	return strings.Join(parts, " -> ")
}

func lineNames(g *network.Graph) map[network.LineID]string {
	names := make(map[network.LineID]string)
	for _, line := range g.Lines() {
		names[line.ID] = line.Name
	}
	return names
}

// boardings lists the line taken from each stop where the rider gets on or changes bus.
func boardings(route routing.Route, names map[network.LineID]string) string {
	var parts []string
	for i, line := range route.Lines {
		if i > 0 && line == route.Lines[i-1] {
			continue
		}
		name := names[line]
		if name == "" {
			name = fmt.Sprintf("Line %d", line)
		}
		parts = append(parts, fmt.Sprintf("%s from %d", name, route.Stops[i]))
	}
	return strings.Join(parts, ", ")
}

func printRoute(w io.Writer, route routing.Route, names map[network.LineID]string) {
	fmt.Fprintln(w, joinIDs(route.Stops))
	if len(route.Lines) > 0 {
		fmt.Fprintf(w, "Board: %s\n", boardings(route, names))
	}
	fmt.Fprintf(w, "Distance: %.2f km | Transfers: %d | Time: %.2f min | Fare: %s\n",
		route.DistanceKm, route.Transfers, route.TimeMinutes, rupees(route.Fare))
}

func printBusPlan(w io.Writer, g *network.Graph, plan routing.Plan) {
	if !plan.Found() {
		fmt.Fprintln(w, "No route found between these stops.")
		return
	}

	names := lineNames(g)

	fmt.Fprintln(w, "\nALL POSSIBLE ROUTES:")
	for i, route := range plan.Routes {
		fmt.Fprintf(w, "Route %d: ", i+1)
		printRoute(w, route, names)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "BEST ROUTES SUMMARY")
	fmt.Fprintln(w, banner)
	fmt.Fprint(w, "Shortest Route: ")
	printRoute(w, *plan.Shortest, names)
	fmt.Fprint(w, "\nFastest Route: ")
	printRoute(w, *plan.Fastest, names)
}

func printTrainLine(w io.Writer, line *train.Line) {
	fmt.Fprintln(w, "\nTrain Line (Forward):")
	fmt.Fprintln(w, joinIDs(line.Forward()))
	fmt.Fprintln(w, "\nTrain Line (Backward):")
	fmt.Fprintln(w, joinIDs(line.Backward()))
}

func printTrainQuote(w io.Writer, quote train.Quote) {
	fmt.Fprintln(w, "\n"+banner)
	fmt.Fprintln(w, "TRAIN ROUTE SUMMARY")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Start Station: %d\n", quote.From)
	fmt.Fprintf(w, "End Station: %d\n", quote.To)
	fmt.Fprintf(w, "Direction: %s\n", quote.Direction)
	fmt.Fprintf(w, "Stops Travelled: %d\n", quote.Stops)
	fmt.Fprintf(w, "Travel Time: %d minutes\n", quote.TimeMinutes)
	fmt.Fprintf(w, "Fare: %s\n", rupees(float64(quote.Fare)))
	fmt.Fprintf(w, "Next Train Arrives In: %d minutes\n", quote.ETAMinutes)
}

func printLines(w io.Writer, g *network.Graph, line *train.Line) {
	fmt.Fprintln(w, "BUS LINES")
	for _, l := range g.Lines() {
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("Line %d", l.ID)
		}
		fmt.Fprintf(w, "%s: %s\n", name, joinIDs(l.Stops))
	}
	printTrainLine(w, line)
}
