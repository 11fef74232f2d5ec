// Package fetch performs single download attempts and wraps them with the
// retry policy that turns a URL into a terminal outcome.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/tanq16/filescooper/internal/utils"
)

const tempDirName = ".scooper-temp"

// Request identifies one download attempt: where to get the bytes and the
// already-allocated name to store them under.
type Request struct {
	URL       string
	Filename  string
	OutputDir string
}

// Result describes a completed attempt.
type Result struct {
	Status  int
	Size    int64
	Elapsed time.Duration
}

// Fetcher performs one download attempt. Implementations must leave no
// partial file behind on failure.
type Fetcher interface {
	Fetch(req Request) (*Result, error)
}

// HTTPFetcher streams a GET response into a part file under a temp
// directory, then renames it into place.
type HTTPFetcher struct {
	Client utils.HTTPDoer
}

func (f *HTTPFetcher) Fetch(req Request) (*Result, error) {
	start := time.Now()
	tempDir := filepath.Join(req.OutputDir, tempDirName)
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating temp directory: %v", ErrWrite, err)
	}
	tempPath := filepath.Join(tempDir, req.Filename+".part")

	httpReq, err := http.NewRequest(http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating GET request: %v", ErrNetwork, err)
	}
	httpReq.Header.Set("Connection", "keep-alive")
	resp, err := f.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, &HTTPError{Status: resp.StatusCode}
	}

	size, err := streamToFile(resp.Body, tempPath)
	if err != nil {
		os.Remove(tempPath)
		return nil, err
	}
	finalPath := filepath.Join(req.OutputDir, req.Filename)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("%w: finalizing output file: %v", ErrWrite, err)
	}
	return &Result{
		Status:  resp.StatusCode,
		Size:    size,
		Elapsed: time.Since(start),
	}, nil
}

func streamToFile(body io.Reader, path string) (int64, error) {
	outFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("%w: creating output file: %v", ErrWrite, err)
	}
	defer outFile.Close()
	var written int64
	buffer := make([]byte, utils.DefaultBufferSize)
	for {
		bytesRead, readErr := body.Read(buffer)
		if bytesRead > 0 {
			n, writeErr := outFile.Write(buffer[:bytesRead])
			written += int64(n)
			if writeErr != nil {
				return written, fmt.Errorf("%w: %v", ErrWrite, writeErr)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return written, fmt.Errorf("%w: reading response body: %v", ErrNetwork, readErr)
		}
	}
	if err := outFile.Sync(); err != nil {
		return written, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return written, nil
}
