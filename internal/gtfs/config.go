package gtfs

import (
	"strings"
	"time"
)

type Config struct {
	// GtfsURL is a local path or an http(s) URL of a static GTFS zip.
	GtfsURL string

	// DownloadTimeout bounds each download attempt.
	DownloadTimeout time.Duration
	// MaxRetries is the number of retries after a failed download.
	MaxRetries uint64
	// RetryInterval is the first wait between download attempts; later waits grow exponentially.
	RetryInterval time.Duration

	// StopLimit rejects feeds whose lines serve more stops. Zero disables the check.
	StopLimit int

	Verbose bool
}

const (
	DefaultDownloadTimeout = 60 * time.Second
	DefaultMaxRetries      = 4
	DefaultRetryInterval   = 500 * time.Millisecond
)

func NewConfig(source string) Config {
	return Config{
		GtfsURL:         source,
		DownloadTimeout: DefaultDownloadTimeout,
		MaxRetries:      DefaultMaxRetries,
		RetryInterval:   DefaultRetryInterval,
	}
}

func (config Config) isLocalFile() bool {
	return !strings.HasPrefix(config.GtfsURL, "http://") && !strings.HasPrefix(config.GtfsURL, "https://")
}
