package config

import (
	"fmt"
	"time"
)

// ServerApp holds token lifecycle settings used by the server runtime.
type ServerApp struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	TokenIssuer string
	// TokenDuration specifies how long a JWT token remains valid.
	TokenDuration time.Duration
	// Version is the semantic version string of the running application.
	Version string
}

// ServerConfig is the server-specific configuration view assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains token lifecycle settings.
	App ServerApp
	// Storage contains database settings.
	Storage Storage
	// Server contains network address and timeout settings.
	Server Server
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
