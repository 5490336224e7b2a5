package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/DvijDesai0102/CSC210-Project/internal/app"
	"github.com/DvijDesai0102/CSC210-Project/internal/appconf"
	"github.com/DvijDesai0102/CSC210-Project/internal/logging"
	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/DvijDesai0102/CSC210-Project/internal/train"
	"github.com/DvijDesai0102/CSC210-Project/internal/utils"
	"github.com/urfave/cli/v2"
)

// harness holds what every command needs once the global flags are parsed.
type harness struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
	app    *app.Application
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	h := &harness{in: bufio.NewScanner(in), out: out}

	stopFlags := []cli.Flag{
		&cli.StringFlag{Name: "from", Usage: "starting stop", Required: true},
		&cli.StringFlag{Name: "to", Usage: "destination stop", Required: true},
	}

	return &cli.App{
		Name:      "routefinder",
		Usage:     "Plans bus journeys and prices train rides",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "network", Usage: "YAML bus network definition (built-in network when empty)"},
			&cli.StringFlag{Name: "distances", Usage: "CSV of known stop distances"},
			&cli.StringFlag{Name: "gtfs", Usage: "path or URL of a static GTFS zip"},
			&cli.IntFlag{Name: "stop-limit", Value: appconf.DefaultStopLimit, Usage: "largest number of stops a loaded network may serve (0 disables)"},
			&cli.BoolFlag{Name: "verbose", Usage: "log planner activity to stderr"},
		},
		Before: func(c *cli.Context) error {
			h.logger = logging.NewConsoleLogger(errOut, c.Bool("verbose"))
			return h.load(c)
		},
		// main decides the exit status.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:  "bus",
				Usage: "list every bus route between two stops and the best ones",
				Flags: stopFlags,
				Action: func(c *cli.Context) error {
					return h.bus(c.Context, c.String("from"), c.String("to"))
				},
			},
			{
				Name:  "train",
				Usage: "price a ride between two train stations",
				Flags: stopFlags,
				Action: func(c *cli.Context) error {
					printTrainLine(h.out, h.app.TrainLine)
					return h.train(c.String("from"), c.String("to"))
				},
			},
			{
				Name:  "lines",
				Usage: "print the bus lines and the train line",
				Action: func(c *cli.Context) error {
					printLines(h.out, h.app.Graph(), h.app.TrainLine)
					return nil
				},
			},
			{
				Name:  "interactive",
				Usage: "prompt for the mode of transport and the stops",
				Action: func(c *cli.Context) error {
					return h.interactive(c.Context)
				},
			},
		},
	}
}

func (h *harness) load(c *cli.Context) error {
	cfg := appconf.Default()
	cfg.NetworkFile = c.String("network")
	cfg.DistancesFile = c.String("distances")
	cfg.GtfsFile = c.String("gtfs")
	cfg.StopLimit = c.Int("stop-limit")

	application, err := app.New(c.Context, cfg, h.logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Could not load the network: %v", err), 1)
	}
	h.app = application
	return nil
}

func (h *harness) bus(ctx context.Context, rawFrom, rawTo string) error {
	maxStop := int(h.app.Graph().MaxStop())
	fail := func(err error) error {
		return inputError(err, maxStop, fmt.Sprintf("Stops must be between 1 and %d. Please restart.", maxStop))
	}

	from, err := utils.ParseStopID("from", rawFrom)
	if err != nil {
		return fail(err)
	}
	to, err := utils.ParseStopID("to", rawTo)
	if err != nil {
		return fail(err)
	}

	plan, err := h.app.Planner.Plan(logging.WithLogger(ctx, h.logger), from, to)
	if err != nil {
		return fail(err)
	}

	printBusPlan(h.out, h.app.Graph(), plan)
	return nil
}

// train prints the summary of one ride. Callers print the line itself before asking for stations.
func (h *harness) train(rawFrom, rawTo string) error {
	count := h.app.TrainLine.StationCount()
	fail := func(err error) error {
		return inputError(err, count, fmt.Sprintf("Invalid stations. Must be between 1-%d.", count))
	}

	from, err := utils.ParseStopID("from", rawFrom)
	if err != nil {
		return fail(err)
	}
	to, err := utils.ParseStopID("to", rawTo)
	if err != nil {
		return fail(err)
	}

	quote, err := h.app.TrainLine.Quote(train.StationID(from), train.StationID(to))
	if err != nil {
		return fail(err)
	}

	printTrainQuote(h.out, quote)
	return nil
}

func (h *harness) interactive(ctx context.Context) error {
	fmt.Fprintln(h.out, banner)
	fmt.Fprintln(h.out, "ROUTE FINDER - PUBLIC TRANSPORT SYSTEM")
	fmt.Fprintln(h.out, banner)
	fmt.Fprintln(h.out, "1. Bus Network")
	fmt.Fprintln(h.out, "2. Train Network")

	choice, err := h.prompt("Select mode of transport (1 or 2): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		maxStop := int(h.app.Graph().MaxStop())
		rules := h.app.Planner.Rules()
		fmt.Fprintln(h.out)
		fmt.Fprintln(h.out, banner)
		fmt.Fprintln(h.out, "BUS NETWORK")
		fmt.Fprintln(h.out, banner)
		fmt.Fprintf(h.out, "Fare rule: %s for the first %g km, then +%s per %g km extra.\n",
			rupees(rules.BaseFare), rules.FareBlockKm, rupees(rules.FareIncrement), rules.FareBlockKm)
		fmt.Fprintf(h.out, "Transfer penalty: %g minutes per bus change.\n\n", rules.TransferPenaltyMinutes)

		from, to, err := h.promptPair(fmt.Sprintf("stop (1-%d)", maxStop))
		if err != nil {
			return err
		}
		return h.bus(ctx, from, to)
	case "2":
		count := h.app.TrainLine.StationCount()
		printTrainLine(h.out, h.app.TrainLine)
		fmt.Fprintln(h.out)
		from, to, err := h.promptPair(fmt.Sprintf("station (1-%d)", count))
		if err != nil {
			return err
		}
		return h.train(from, to)
	default:
		return cli.Exit("Invalid choice. Please select 1 or 2.", 1)
	}
}

func (h *harness) promptPair(noun string) (from, to string, err error) {
	if from, err = h.prompt(fmt.Sprintf("Enter starting %s: ", noun)); err != nil {
		return "", "", err
	}
	if to, err = h.prompt(fmt.Sprintf("Enter destination %s: ", noun)); err != nil {
		return "", "", err
	}
	return from, to, nil
}

func (h *harness) prompt(question string) (string, error) {
	fmt.Fprint(h.out, question)
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		return "", cli.Exit("No input given.", 1)
	}
	return strings.TrimSpace(h.in.Text()), nil
}

// inputError turns a planning or parsing failure into the message shown to the user.
// rangeMessage is shown for an id outside 1..maxID.
func inputError(err error, maxID int, rangeMessage string) error {
	switch {
	case errors.Is(err, utils.ErrInputFormat):
		return cli.Exit(fmt.Sprintf("Invalid input. Please enter a number between 1 and %d.", maxID), 1)
	case errors.Is(err, utils.ErrInputRange):
		return cli.Exit(rangeMessage, 1)
	case errors.Is(err, network.ErrUnknownStop):
		return cli.Exit("Invalid stop entered. Please check available stops.", 1)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return cli.Exit("Route search stopped before it finished.", 1)
	default:
		return cli.Exit(fmt.Sprintf("An unexpected error occurred: %v", err), 1)
	}
}
