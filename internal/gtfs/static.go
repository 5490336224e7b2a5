package gtfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/DvijDesai0102/CSC210-Project/internal/logging"
	"github.com/cenkalti/backoff/v4"
	"github.com/jamespfennell/gtfs"
)

var errEmptyFeed = errors.New("empty GTFS feed")

func rawGtfsData(ctx context.Context, config Config) ([]byte, error) {
	if config.isLocalFile() {
		b, err := os.ReadFile(config.GtfsURL)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		return b, nil
	}
	return downloadWithRetry(ctx, config)
}

// downloadWithRetry retries server errors and transport failures with exponential backoff.
// Client errors (4xx) are not retried.
func downloadWithRetry(ctx context.Context, config Config) ([]byte, error) {
	logger := logging.FromContext(ctx).With(slog.String("component", "gtfs_loader"))

	policy := backoff.NewExponentialBackOff()
	if config.RetryInterval > 0 {
		policy.InitialInterval = config.RetryInterval
	}
	retrying := backoff.WithContext(backoff.WithMaxRetries(policy, config.MaxRetries), ctx)

	var b []byte
	operation := func() error {
		var err error
		b, err = download(ctx, config)
		return err
	}
	notify := func(err error, wait time.Duration) {
		logger.Warn("GTFS download failed, retrying",
			slog.String("source", config.GtfsURL),
			slog.String("error", err.Error()),
			slog.Duration("wait", wait))
	}

	if err := backoff.RetryNotify(operation, retrying, notify); err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	return b, nil
}

func download(ctx context.Context, config Config) ([]byte, error) {
	if config.DownloadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.DownloadTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.GtfsURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer logging.SafeCloseWithLogging(resp.Body, logging.FromContext(ctx), "gtfs_response_body")

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, backoff.Permanent(errEmptyFeed)
	}
	return b, nil
}

// loadGTFSData loads and parses GTFS data from either a URL or a local file
func loadGTFSData(ctx context.Context, config Config) (*gtfs.Static, error) {
	b, err := rawGtfsData(ctx, config)
	if err != nil {
		return nil, err
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	return staticData, nil
}
