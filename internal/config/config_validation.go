// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"time"
)

// applyDefaults fills in conventional values for fields left empty by all
// configuration sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = "sqlite3"
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == "sqlite3" {
		cfg.Storage.DB.DSN = "contekan.db"
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "contekan"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = 24 * time.Hour
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.List.SortDirection == "" {
		cfg.List.SortDirection = SortDescending
	}
	if cfg.Delete.ConfirmMode == "" {
		cfg.Delete.ConfirmMode = ConfirmCountdown
	}
	if cfg.Delete.CountdownSeconds <= 0 {
		cfg.Delete.CountdownSeconds = 3
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.List.SortDirection != SortAscending && cfg.List.SortDirection != SortDescending {
		return ErrInvalidListConfigs
	}

	if cfg.Delete.ConfirmMode != ConfirmCountdown && cfg.Delete.ConfirmMode != ConfirmPrompt {
		return ErrInvalidDeleteConfigs
	}

	for _, scope := range cfg.List.SearchScopes {
		switch strings.TrimSpace(scope) {
		case ScopeTitle, ScopeBody, ScopeDescription, ScopeOwner, "":
		default:
			return ErrInvalidListConfigs
		}
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.Driver == "" || cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Delete.ConfirmMode == ConfirmCountdown && cfg.Delete.CountdownSeconds <= 0 {
		return ErrInvalidDeleteConfigs
	}

	return nil
}
