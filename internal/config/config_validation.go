package config

import "strings"

// validate checks that the final [ClientConfig] satisfies all client
// invariants before it is used at startup. Defaults have already been
// applied, so a failure here means an explicitly bad value was supplied.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshMargin <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
