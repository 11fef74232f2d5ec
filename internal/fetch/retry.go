package fetch

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tanq16/filescooper/internal/filter"
	"github.com/tanq16/filescooper/internal/utils"
)

// NameAllocator hands out unique filenames and takes back names whose
// download did not survive.
type NameAllocator interface {
	Allocate(rawURL string) string
	Release(name string)
}

// RetryingDownloader drives a Fetcher through bounded retries with
// exponential backoff and converts the result into a terminal Outcome.
type RetryingDownloader struct {
	Fetcher     Fetcher
	Names       NameAllocator
	OutputDir   string
	MaxAttempts int
	BaseBackoff time.Duration
	Bounds      utils.SizeBounds
}

// Download runs the attempt loop for one URL. Network errors and 5xx
// responses are retried; 4xx responses and write errors fail immediately.
// A 200 whose byte count falls outside the size bounds is recorded as
// skipped and the file is removed.
func (d *RetryingDownloader) Download(rawURL string) utils.Outcome {
	name := d.Names.Allocate(rawURL)
	maxAttempts := d.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	var lastErr error
	attempts := 0
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			// base × 2^(retryIndex-1), first attempt has no delay
			backoff := d.BaseBackoff * (1 << (attempt - 2))
			log.Warn().Str("component", "fetch").Str("url", rawURL).
				Msgf("Retrying download (attempt %d/%d) after %s", attempt, maxAttempts, backoff)
			time.Sleep(backoff)
		}
		attempts = attempt
		res, err := d.Fetcher.Fetch(Request{URL: rawURL, Filename: name, OutputDir: d.OutputDir})
		if err != nil {
			lastErr = err
			if !IsRetryable(err) {
				break
			}
			log.Debug().Str("component", "fetch").Str("url", rawURL).Err(err).
				Msgf("Attempt %d failed", attempt)
			continue
		}
		if !filter.WithinBounds(res.Size, d.Bounds) {
			os.Remove(filepath.Join(d.OutputDir, name))
			d.Names.Release(name)
			return utils.Outcome{
				URL:    rawURL,
				Status: utils.StatusSkipped,
				Reason: filter.ReasonSizeOutOfBounds,
				Size:   res.Size,
			}
		}
		return utils.Outcome{
			URL:        rawURL,
			Status:     utils.StatusSuccess,
			Filename:   name,
			HTTPStatus: res.Status,
			Size:       res.Size,
			Elapsed:    res.Elapsed,
			Attempts:   attempts,
		}
	}
	d.Names.Release(name)
	return utils.Outcome{
		URL:      rawURL,
		Status:   utils.StatusFailed,
		Attempts: attempts,
		Err:      lastErr,
	}
}
