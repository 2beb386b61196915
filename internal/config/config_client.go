package config

import (
	"fmt"
	"strings"
)

// ClientConfig is the client-specific configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server endpoint and request timeout for the
	// outbound transport.
	Adapter Adapter
	// List contains list presentation settings.
	List List
	// Delete contains deletion confirmation settings.
	Delete Delete
	// Workers contains background job settings.
	Workers Workers
}

// NormalizedSearchScopes returns the configured extra search scopes with
// whitespace and empty entries removed.
func (cfg *ClientConfig) NormalizedSearchScopes() []string {
	scopes := make([]string, 0, len(cfg.List.SearchScopes))
	for _, scope := range cfg.List.SearchScopes {
		scope = strings.TrimSpace(scope)
		if scope != "" {
			scopes = append(scopes, scope)
		}
	}
	return scopes
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		List:    cfg.List,
		Delete:  cfg.Delete,
		Workers: cfg.Workers,
	}

	return clientCfg, clientCfg.validate()
}
