package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the galley
// client. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags: envPrefix applies to all nested env tag lookups
// (caarlos0/env), env names a direct environment variable for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the public base URL
	// used when building share links.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote API address and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings: the SQLite session vault
	// and the machine-secret file that seals it.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings (token refresh).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the GALLEY_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"GALLEY_CONFIG"`
}

// App holds application-level settings.
type App struct {
	// ShareBaseURL is the public web frontend base URL used to build
	// recipe share links (e.g. "https://galley.example.com").
	// Env: APP_SHARE_BASE_URL
	ShareBaseURL string `env:"SHARE_BASE_URL"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the base address of the Galley API
	// (e.g. "https://api.galley.example.com").
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite connection settings for the session vault.
	DB DB `envPrefix:"DB_"`

	// SecretPath is the path of the per-machine secret file the vault
	// sealing key is derived from. Created on first run if absent.
	// Env: STORAGE_SECRET_PATH
	SecretPath string `env:"SECRET_PATH"`
}

// DB contains the local database connection settings.
type DB struct {
	// DSN is the SQLite file path of the session vault.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers contains background worker settings.
type Workers struct {
	// RefreshMargin is how long before token expiry the refresh worker
	// attempts to renew the session token (e.g. "2m").
	// Env: WORKERS_REFRESH_MARGIN
	RefreshMargin time.Duration `env:"REFRESH_MARGIN"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
