package store

import (
	"context"
	"fmt"

	"github.com/mfadhilr/contekan/internal/config"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/migrations"
)

// Storages aggregates every repository the server needs.
type Storages struct {
	UserRepository
	SnippetRepository
}

// NewStorages connects to the configured database, applies pending
// migrations and wires all repositories to that single connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = migrations.Migrate(db.DB, cfg.Driver); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SnippetRepository: NewSnippetRepository(db, log),
	}, nil
}
