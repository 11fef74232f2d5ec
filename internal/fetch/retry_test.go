package fetch

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tanq16/filescooper/internal/filter"
	"github.com/tanq16/filescooper/internal/utils"
)

// fakeFetcher returns scripted results in order, repeating the last one.
type fakeFetcher struct {
	calls   int
	results []fakeResult
}

type fakeResult struct {
	res *Result
	err error
}

func (f *fakeFetcher) Fetch(req Request) (*Result, error) {
	idx := f.calls
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	f.calls++
	r := f.results[idx]
	return r.res, r.err
}

type fakeAllocator struct {
	allocated int
	released  []string
}

func (a *fakeAllocator) Allocate(rawURL string) string {
	a.allocated++
	return fmt.Sprintf("file_%d", a.allocated)
}

func (a *fakeAllocator) Release(name string) {
	a.released = append(a.released, name)
}

func newDownloader(f Fetcher, names NameAllocator, bounds utils.SizeBounds) *RetryingDownloader {
	return &RetryingDownloader{
		Fetcher:     f,
		Names:       names,
		OutputDir:   "",
		MaxAttempts: 3,
		BaseBackoff: time.Millisecond,
		Bounds:      bounds,
	}
}

func TestDownloadRetriesNetworkErrors(t *testing.T) {
	fetcher := &fakeFetcher{results: []fakeResult{
		{err: fmt.Errorf("%w: connection reset", ErrNetwork)},
	}}
	names := &fakeAllocator{}
	outcome := newDownloader(fetcher, names, utils.SizeBounds{}).Download("https://x/a.js")

	if outcome.Status != utils.StatusFailed {
		t.Fatalf("Status = %v, want Failed", outcome.Status)
	}
	if fetcher.calls != 3 {
		t.Errorf("fetch attempts = %d, want 3", fetcher.calls)
	}
	if outcome.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", outcome.Attempts)
	}
	if !errors.Is(outcome.Err, ErrNetwork) {
		t.Errorf("Err = %v, want wrapped ErrNetwork", outcome.Err)
	}
	if len(names.released) != 1 {
		t.Errorf("failed download should release its filename, released = %v", names.released)
	}
}

func TestDownloadDoesNotRetryClientErrors(t *testing.T) {
	fetcher := &fakeFetcher{results: []fakeResult{
		{err: &HTTPError{Status: 404}},
	}}
	start := time.Now()
	outcome := newDownloader(fetcher, &fakeAllocator{}, utils.SizeBounds{}).Download("https://x/a.js")

	if outcome.Status != utils.StatusFailed {
		t.Fatalf("Status = %v, want Failed", outcome.Status)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch attempts = %d, want 1 (404 must not be retried)", fetcher.calls)
	}
	if outcome.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", outcome.Attempts)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("no backoff sleep expected for non-retryable errors, took %s", elapsed)
	}
}

func TestDownloadRetriesServerErrorsThenSucceeds(t *testing.T) {
	fetcher := &fakeFetcher{results: []fakeResult{
		{err: &HTTPError{Status: 500}},
		{res: &Result{Status: 200, Size: 42}},
	}}
	outcome := newDownloader(fetcher, &fakeAllocator{}, utils.SizeBounds{}).Download("https://x/a.js")

	if outcome.Status != utils.StatusSuccess {
		t.Fatalf("Status = %v, want Success (err=%v)", outcome.Status, outcome.Err)
	}
	if fetcher.calls != 2 {
		t.Errorf("fetch attempts = %d, want 2", fetcher.calls)
	}
	if outcome.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", outcome.Attempts)
	}
	if outcome.Size != 42 || outcome.HTTPStatus != 200 {
		t.Errorf("outcome = %+v, want size 42 status 200", outcome)
	}
}

func TestDownloadDoesNotRetryWriteErrors(t *testing.T) {
	fetcher := &fakeFetcher{results: []fakeResult{
		{err: fmt.Errorf("%w: disk full", ErrWrite)},
	}}
	outcome := newDownloader(fetcher, &fakeAllocator{}, utils.SizeBounds{}).Download("https://x/a.js")

	if outcome.Status != utils.StatusFailed {
		t.Fatalf("Status = %v, want Failed", outcome.Status)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch attempts = %d, want 1", fetcher.calls)
	}
}

func TestDownloadSkipsOnSizeBounds(t *testing.T) {
	fetcher := &fakeFetcher{results: []fakeResult{
		{res: &Result{Status: 200, Size: 500 * 1024}},
	}}
	names := &fakeAllocator{}
	bounds := utils.SizeBounds{Min: 1024 * 1024}
	outcome := newDownloader(fetcher, names, bounds).Download("https://x/a.js")

	if outcome.Status != utils.StatusSkipped {
		t.Fatalf("Status = %v, want Skipped", outcome.Status)
	}
	if outcome.Reason != filter.ReasonSizeOutOfBounds {
		t.Errorf("Reason = %q, want %q", outcome.Reason, filter.ReasonSizeOutOfBounds)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch attempts = %d, want 1 (size rejection is terminal)", fetcher.calls)
	}
	if len(names.released) != 1 {
		t.Errorf("skipped download should release its filename, released = %v", names.released)
	}
}
