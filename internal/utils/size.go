package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSizeFormat = errors.New("invalid size format")

var sizeUnits = map[string]int64{
	"B":  1,
	"KB": 1024,
	"MB": 1024 * 1024,
	"GB": 1024 * 1024 * 1024,
}

// ParseSize converts a human-readable size like "20KB" or "1.5MB" into a
// byte count. The unit is optional and defaults to bytes.
func ParseSize(sizeStr string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(sizeStr))
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidSizeFormat)
	}
	multiplier := int64(1)
	for _, unit := range []string{"KB", "MB", "GB", "B"} {
		if strings.HasSuffix(s, unit) {
			multiplier = sizeUnits[unit]
			s = strings.TrimSuffix(s, unit)
			break
		}
	}
	s = strings.TrimSpace(s)
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, sizeStr)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: negative size %q", ErrInvalidSizeFormat, sizeStr)
	}
	return int64(value * float64(multiplier)), nil
}

// FormatBytes converts bytes to human-readable format
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatSpeed calculates and formats download speed
func FormatSpeed(bytes int64, elapsed float64) string {
	if elapsed == 0 {
		return "0 B/s"
	}
	bps := float64(bytes) / elapsed
	formatted := FormatBytes(uint64(bps))
	return formatted[:len(formatted)-1] + "B/s" // Slice off "B" and add "B/s"
}
