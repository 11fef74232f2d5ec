package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func GetRandomUserAgent(mode string) string {
	pool := desktopUserAgents
	if mode == UserAgentModeMobile {
		pool = mobileUserAgents
	}
	return pool[time.Now().UnixNano()%int64(len(pool))]
}

func ParseHeaderArgs(headers []string) map[string]string {
	result := make(map[string]string)
	for _, header := range headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			result[key] = value
		}
	}
	return result
}

// ParseTypes splits a comma-separated extension list ("js,css,png" or "*")
// into a lowercase set.
func ParseTypes(types string) map[string]struct{} {
	result := make(map[string]struct{})
	for _, t := range strings.Split(types, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			result[t] = struct{}{}
		}
	}
	return result
}

type listEntry struct {
	Link string `yaml:"link"`
}

// ReadURLList reads URLs from a list file. Plain text files hold one URL
// per line (blank lines and #-comments ignored); .yaml/.yml files hold
// either a list of URL strings or a list of {link: URL} entries.
func ReadURLList(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return readYAMLList(path)
	default:
		return readTextList(path)
	}
}

func readTextList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening URL list: %w", err)
	}
	defer f.Close()
	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading URL list: %w", err)
	}
	return urls, nil
}

func readYAMLList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading URL list: %w", err)
	}
	var urls []string
	if err := yaml.Unmarshal(data, &urls); err == nil {
		return urls, nil
	}
	var entries []listEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing YAML URL list: %w", err)
	}
	for _, entry := range entries {
		if entry.Link != "" {
			urls = append(urls, entry.Link)
		}
	}
	return urls, nil
}
