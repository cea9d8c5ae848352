package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server API base address (e.g. https://api.galley.example.com)
//	-d session vault SQLite path
//	-secret-path machine secret file path
//	-share-base-url public frontend base URL for share links
//	-request-timeout outbound request timeout (e.g. "30s")
//	-refresh-margin how long before expiry to refresh the token (e.g. "2m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiAddress string
	var databaseDSN string
	var secretPath string
	var shareBaseURL string
	var requestTimeout time.Duration
	var refreshMargin time.Duration
	var jsonConfigPath string

	flag.StringVar(&apiAddress, "a", "", "Galley API base address")
	flag.StringVar(&databaseDSN, "d", "", "Session vault SQLite path")
	flag.StringVar(&secretPath, "secret-path", "", "Machine secret file path")
	flag.StringVar(&shareBaseURL, "share-base-url", "", "Public base URL for share links")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s)")
	flag.DurationVar(&refreshMargin, "refresh-margin", 0, "Token refresh margin before expiry (e.g., 2m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ShareBaseURL: shareBaseURL,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:         DB{DSN: databaseDSN},
			SecretPath: secretPath,
		},
		Workers:      Workers{RefreshMargin: refreshMargin},
		JSONFilePath: jsonConfigPath,
	}
}
