package appconf

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds all the configuration settings for the application.
// The API server fills it from command-line flags and the console harness from its own flags.
type Config struct {
	Port      int         `validate:"gte=0,lte=65535"`
	Env       Environment `validate:"gte=0,lte=2"`
	ApiKeys   []string
	RateLimit int

	// NetworkFile is a YAML network definition. The built-in sample network is used when empty.
	NetworkFile string
	// DistancesFile is an optional CSV of known distances merged over the definition's.
	DistancesFile string
	// GtfsFile is a path or URL of a static GTFS zip. It replaces NetworkFile when set.
	GtfsFile string `validate:"excluded_with=NetworkFile"`

	RouteCacheTTL time.Duration `validate:"gte=0"`
	// RouteTimeout bounds one bus route search of the API. Zero leaves only the request's own deadline.
	RouteTimeout time.Duration `validate:"gte=0"`
	// StopLimit rejects networks whose lines serve more stops. Zero disables the check.
	StopLimit int `validate:"gte=0"`
}

const (
	DefaultPort          = 4000
	DefaultRateLimit     = 100
	DefaultRouteCacheTTL = 5 * time.Minute
	DefaultRouteTimeout  = 5 * time.Second
	DefaultStopLimit     = 30
)

// Default is the configuration used when no flags are given.
func Default() Config {
	return Config{
		Port:          DefaultPort,
		Env:           Development,
		ApiKeys:       []string{"test"},
		RateLimit:     DefaultRateLimit,
		RouteCacheTTL: DefaultRouteCacheTTL,
		RouteTimeout:  DefaultRouteTimeout,
		StopLimit:     DefaultStopLimit,
	}
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ParseAPIKeys splits a comma separated list of keys, dropping blanks.
func ParseAPIKeys(flag string) []string {
	var keys []string
	for _, key := range strings.Split(flag, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
