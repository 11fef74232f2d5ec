package utils

import (
	"io"
	"time"
)

// SizeBounds holds optional min/max byte limits. Zero means unset.
type SizeBounds struct {
	Min int64
	Max int64
}

type Config struct {
	OutputDir        string
	Threads          int
	MaxAttempts      int
	BaseBackoff      time.Duration
	AllowedTypes     map[string]struct{}
	Bounds           SizeBounds
	HTTPClientConfig HTTPClientConfig
	ProgressWriter   io.Writer
}

type OutcomeStatus int

const (
	StatusSuccess OutcomeStatus = iota
	StatusSkipped
	StatusFailed
)

// Outcome is the terminal classification of a single URL. Exactly one is
// recorded per input URL.
type Outcome struct {
	URL        string
	Status     OutcomeStatus
	Filename   string
	HTTPStatus int
	Size       int64
	Elapsed    time.Duration
	Reason     string
	Attempts   int
	Err        error
}
