package cmd

import (
	"fmt"
	u "net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanq16/filescooper/internal/output"
	"github.com/tanq16/filescooper/internal/scheduler"
	"github.com/tanq16/filescooper/internal/utils"
)

var (
	urlListFile     string
	outputDir       string
	threads         int
	types           string
	headers         []string
	proxyURL        string
	proxyUsername   string
	proxyPassword   string
	userAgent       string
	randomUserAgent bool
	mobileUserAgent bool
	maxAttempts     int
	baseBackoff     time.Duration
	timeout         time.Duration
	minSizeStr      string
	maxSizeStr      string
	logFilePath     string
	noColor         bool
	debug           bool
)

var FileScooperVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "filescooper [URL ...]",
	Short:   "FileScooper is a flexible multithreaded downloader for JS/CSS/images/binaries",
	Version: FileScooperVersion,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output.InitLogger(debug)
		output.SetColorEnabled(!noColor)
		if randomUserAgent && mobileUserAgent {
			output.PrintError("Cannot use --random-useragent and --mobile-useragent together, choose one")
			os.Exit(1)
		}

		urls := append([]string{}, args...)
		if urlListFile != "" {
			listed, err := utils.ReadURLList(urlListFile)
			if err != nil {
				output.PrintError(fmt.Sprintf("Failed to read URL list file: %v", err))
				os.Exit(1)
			}
			urls = append(urls, listed...)
		}
		if len(urls) == 0 {
			output.PrintError("No URLs provided. Use positional arguments or --file")
			os.Exit(1)
		}

		bounds, err := parseBounds()
		if err != nil {
			output.PrintError(err.Error())
			os.Exit(1)
		}

		// Check if proxy URL contains auth
		parsedProxy, err := u.Parse(proxyURL)
		if err == nil && parsedProxy.User != nil && proxyUsername == "" {
			proxyUsername = parsedProxy.User.Username()
			if password, set := parsedProxy.User.Password(); set {
				proxyPassword = password
			}
			parsedProxy.User = nil
			proxyURL = parsedProxy.String()
		}
		uaMode := ""
		if randomUserAgent {
			uaMode = utils.UserAgentModeDesktop
		} else if mobileUserAgent {
			uaMode = utils.UserAgentModeMobile
		}

		cfg := utils.Config{
			OutputDir:    outputDir,
			Threads:      threads,
			MaxAttempts:  maxAttempts,
			BaseBackoff:  baseBackoff,
			AllowedTypes: utils.ParseTypes(types),
			Bounds:       bounds,
			HTTPClientConfig: utils.HTTPClientConfig{
				Timeout:       timeout,
				ProxyURL:      proxyURL,
				ProxyUsername: proxyUsername,
				ProxyPassword: proxyPassword,
				UserAgent:     userAgent,
				UserAgentMode: uaMode,
				Headers:       utils.ParseHeaderArgs(headers),
			},
		}

		startTime := time.Now()
		logPath := logFilePath
		if logPath == "" {
			logPath = output.DefaultLogPath(startTime)
		}

		output.PrintInfo(fmt.Sprintf("Downloading %d file(s) with %d threads...", len(urls), threads))
		aggregate, err := scheduler.Run(urls, cfg)
		if err != nil {
			output.PrintError(fmt.Sprintf("Failed to start downloads: %v", err))
			os.Exit(1)
		}

		info := output.RunInfo{
			OutputDir: outputDir,
			LogPath:   logPath,
			Threads:   threads,
			Types:     types,
			Bounds:    bounds,
			URLCount:  len(urls),
			StartTime: startTime,
		}
		output.PrintSummary(aggregate, info)
		if err := output.WriteLogFile(aggregate, info); err != nil {
			logger := output.GetLogger("cmd")
			logger.Warn().Err(err).Msg("Could not write log file")
		}
	},
}

func parseBounds() (utils.SizeBounds, error) {
	var bounds utils.SizeBounds
	var err error
	if minSizeStr != "" {
		if bounds.Min, err = utils.ParseSize(minSizeStr); err != nil {
			return bounds, fmt.Errorf("invalid --min-size: %w", err)
		}
	}
	if maxSizeStr != "" {
		if bounds.Max, err = utils.ParseSize(maxSizeStr); err != nil {
			return bounds, fmt.Errorf("invalid --max-size: %w", err)
		}
	}
	return bounds, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&urlListFile, "file", "f", "", "Read URLs from a file (text: one per line; .yaml/.yml: list of links)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "downloads", "Directory to save the downloaded files")
	rootCmd.Flags().IntVarP(&threads, "threads", "t", 5, "Number of parallel download threads")
	rootCmd.Flags().StringVar(&types, "types", "js", "Comma-separated list of allowed extensions (e.g. js,css,png), or \"*\" to allow all")
	rootCmd.Flags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (like 'Cookie: foo=bar'); can be specified multiple times")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "x", "", "HTTP/HTTPS proxy URL (e.g. http://127.0.0.1:8080)")
	rootCmd.Flags().StringVar(&proxyUsername, "proxy-username", "", "Proxy username (if not provided in proxy URL)")
	rootCmd.Flags().StringVar(&proxyPassword, "proxy-password", "", "Proxy password (if not provided in proxy URL)")
	rootCmd.Flags().StringVarP(&userAgent, "user-agent", "a", "", "User agent")
	rootCmd.Flags().IntVar(&maxAttempts, "retries", 3, "Number of attempts per download")
	rootCmd.Flags().DurationVar(&baseBackoff, "backoff", time.Second, "Base backoff before retries (doubles per attempt)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "Per-request timeout")
	rootCmd.Flags().StringVar(&minSizeStr, "min-size", "", "Minimum file size to keep (e.g. 10KB, 1MB)")
	rootCmd.Flags().StringVar(&maxSizeStr, "max-size", "", "Maximum file size to keep (e.g. 5MB, 500KB)")
	rootCmd.Flags().StringVar(&logFilePath, "log-file", "", "Path to log file (default: logs/filescooper_TIMESTAMP.log)")

	// flags without shorthand
	rootCmd.Flags().BoolVar(&randomUserAgent, "random-useragent", false, "Use a random desktop User-Agent per request")
	rootCmd.Flags().BoolVar(&mobileUserAgent, "mobile-useragent", false, "Use a random mobile User-Agent per request")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
