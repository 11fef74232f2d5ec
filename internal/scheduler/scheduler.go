// Package scheduler fans a URL list out to a fixed pool of workers and
// collects exactly one outcome per URL.
package scheduler

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/tanq16/filescooper/internal/fetch"
	"github.com/tanq16/filescooper/internal/filter"
	"github.com/tanq16/filescooper/internal/utils"
)

// Run downloads the given URLs with cfg.Threads concurrent workers and
// returns the aggregated outcomes. The output directory must already
// exist; startup validation happens before this is called.
func Run(urls []string, cfg utils.Config) (*ResultAggregate, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}
	aggregate := NewResultAggregate()
	registry := NewFilenameRegistry(cfg.OutputDir)
	client := utils.NewHTTPClient(cfg.HTTPClientConfig)
	bar := newProgressBar(len(urls), cfg.ProgressWriter)

	taskCh := make(chan string, len(urls))
	for _, url := range urls {
		taskCh <- url
	}
	close(taskCh)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			downloader := &fetch.RetryingDownloader{
				Fetcher:     &fetch.HTTPFetcher{Client: client},
				Names:       registry,
				OutputDir:   cfg.OutputDir,
				MaxAttempts: cfg.MaxAttempts,
				BaseBackoff: cfg.BaseBackoff,
				Bounds:      cfg.Bounds,
			}
			processTasks(taskCh, downloader, cfg, aggregate, bar)
		}()
	}
	wg.Wait()
	bar.Finish()
	return aggregate, nil
}

func processTasks(taskCh <-chan string, downloader *fetch.RetryingDownloader, cfg utils.Config, aggregate *ResultAggregate, bar *progressbar.ProgressBar) {
	for url := range taskCh {
		var outcome utils.Outcome
		if !filter.AllowedType(url, cfg.AllowedTypes) {
			outcome = utils.Outcome{
				URL:    url,
				Status: utils.StatusSkipped,
				Reason: filter.ReasonNotAllowedType,
			}
		} else {
			outcome = downloader.Download(url)
		}
		aggregate.Record(outcome)
		bar.Add(1)
	}
}

func newProgressBar(total int, writer io.Writer) *progressbar.ProgressBar {
	if writer == nil {
		writer = os.Stderr
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionSetDescription("Progress"),
		progressbar.OptionSetItsString("file"),
		progressbar.OptionShowIts(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
