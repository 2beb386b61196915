package config

import "errors"

var (
	ErrInvalidAppConfigs     = errors.New("invalid app configs: token sign key is required")
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: driver and dsn are required")
	ErrInvalidServerConfigs  = errors.New("invalid server configs: http address is required")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs: base url and request timeout are required")
	ErrInvalidListConfigs    = errors.New("invalid list configs: unknown sort direction or search scope")
	ErrInvalidDeleteConfigs  = errors.New("invalid delete configs: unknown confirm mode or non-positive countdown")
)
