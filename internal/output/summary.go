package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tanq16/filescooper/internal/scheduler"
	"github.com/tanq16/filescooper/internal/utils"
)

// RunInfo carries the run metadata shown in the summary footer and the
// log file header.
type RunInfo struct {
	OutputDir string
	LogPath   string
	Threads   int
	Types     string
	Bounds    utils.SizeBounds
	URLCount  int
	StartTime time.Time
}

// PrintSummary writes the grouped success/skip/fail report to the console.
func PrintSummary(aggregate *scheduler.ResultAggregate, info RunInfo) {
	fmt.Println()
	PrintHeader("Download Summary:")
	fmt.Println()

	if successes := aggregate.Successes(); len(successes) > 0 {
		PrintSuccess("Successfully downloaded:")
		fmt.Println()
		for _, o := range successes {
			fmt.Println(successLine(o, true))
		}
		fmt.Println()
	}
	if skips := aggregate.Skips(); len(skips) > 0 {
		PrintWarning("Skipped files:")
		fmt.Println()
		for _, o := range skips {
			fmt.Println(skipLine(o))
		}
		fmt.Println()
	}
	if failures := aggregate.Failures(); len(failures) > 0 {
		PrintError("Failed downloads:")
		fmt.Println()
		for _, o := range failures {
			fmt.Println(failLine(o))
		}
		fmt.Println()
	}

	fmt.Println(FDebug(strings.Repeat(StyleSymbols["hline"], min(getTerminalWidth(), 60))))
	fmt.Printf("Saved to: %s%c\n", info.OutputDir, os.PathSeparator)
	fmt.Printf("Log saved to: %s\n", info.LogPath)
	if successes := aggregate.Successes(); len(successes) > 0 {
		fmt.Printf("Total downloaded: %d file(s), %s\n", len(successes), utils.FormatBytes(aggregate.TotalBytes()))
	}
}

// RenderPlain produces the same report without ANSI styling, for the log
// file.
func RenderPlain(aggregate *scheduler.ResultAggregate, info RunInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FileScooper run %s\n", info.StartTime.Format(time.DateTime))
	fmt.Fprintf(&b, "urls=%d threads=%d types=%s min=%s max=%s output=%s\n",
		info.URLCount, info.Threads, info.Types,
		boundString(info.Bounds.Min), boundString(info.Bounds.Max), info.OutputDir)
	b.WriteString(strings.Repeat("-", 60) + "\n\n")

	if successes := aggregate.Successes(); len(successes) > 0 {
		b.WriteString("Successfully downloaded:\n")
		for _, o := range successes {
			b.WriteString(successLine(o, false) + "\n")
		}
		b.WriteString("\n")
	}
	if skips := aggregate.Skips(); len(skips) > 0 {
		b.WriteString("Skipped files:\n")
		for _, o := range skips {
			b.WriteString(skipLine(o) + "\n")
		}
		b.WriteString("\n")
	}
	if failures := aggregate.Failures(); len(failures) > 0 {
		b.WriteString("Failed downloads:\n")
		for _, o := range failures {
			b.WriteString(failLine(o) + "\n")
		}
		b.WriteString("\n")
	}
	if successes := aggregate.Successes(); len(successes) > 0 {
		fmt.Fprintf(&b, "Total downloaded: %d file(s), %s\n", len(successes), utils.FormatBytes(aggregate.TotalBytes()))
	}
	return b.String()
}

// WriteLogFile writes the plain summary to the log file. A failure here is
// reported by the caller as a warning and never changes the exit code.
func WriteLogFile(aggregate *scheduler.ResultAggregate, info RunInfo) error {
	if dir := filepath.Dir(info.LogPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating log directory: %w", err)
		}
	}
	if err := os.WriteFile(info.LogPath, []byte(RenderPlain(aggregate, info)), 0644); err != nil {
		return fmt.Errorf("error writing log file: %w", err)
	}
	return nil
}

// DefaultLogPath builds the timestamped default path under the logs
// directory.
func DefaultLogPath(now time.Time) string {
	return filepath.Join("logs", fmt.Sprintf("filescooper_%s.log", now.Format("2006-01-02_15-04-05")))
}

func successLine(o utils.Outcome, colored bool) string {
	status := fmt.Sprintf("%d", o.HTTPStatus)
	if colored {
		status = FStatus(o.HTTPStatus)
	}
	return fmt.Sprintf("[%s] %-30s %s %s (%s)  (%s)",
		StyleSymbols["pass"], o.Filename, StyleSymbols["arrow"], status,
		utils.FormatBytes(uint64(o.Size)), o.URL)
}

func skipLine(o utils.Outcome) string {
	return fmt.Sprintf("[%s] Skipped (%s): %s", StyleSymbols["warning"], o.Reason, o.URL)
}

func failLine(o utils.Outcome) string {
	return fmt.Sprintf("[%s] Failed to download %s after %d attempt(s): %v",
		StyleSymbols["fail"], o.URL, o.Attempts, o.Err)
}

func boundString(v int64) string {
	if v <= 0 {
		return "-"
	}
	return utils.FormatBytes(uint64(v))
}
