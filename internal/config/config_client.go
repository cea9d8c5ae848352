package config

import (
	"fmt"
	"time"
)

// Defaults applied by GetClientConfig when a setting is absent from every
// configuration source.
const (
	DefaultHTTPAddress    = "http://localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "galley.db"
	DefaultSecretPath     = "galley.secret"
	DefaultRefreshMargin  = 2 * time.Minute
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// ShareBaseURL is the public frontend base URL used for share links.
	ShareBaseURL string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the Galley API base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups session vault settings.
type ClientStorage struct {
	// DB holds the local SQLite settings.
	DB ClientDB
	// SecretPath is the machine secret file the sealing key derives from.
	SecretPath string
}

// ClientDB contains the local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path of the session vault.
	DSN string
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// RefreshMargin is how long before token expiry the refresh worker
	// renews the session token.
	RefreshMargin time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration, applying defaults for absent settings.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ShareBaseURL: cfg.App.ShareBaseURL,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:         ClientDB{DSN: cfg.Storage.DB.DSN},
			SecretPath: cfg.Storage.SecretPath,
		},
		Workers: ClientWorkers{RefreshMargin: cfg.Workers.RefreshMargin},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Storage.SecretPath == "" {
		cfg.Storage.SecretPath = DefaultSecretPath
	}
	if cfg.Workers.RefreshMargin <= 0 {
		cfg.Workers.RefreshMargin = DefaultRefreshMargin
	}
}
