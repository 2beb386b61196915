package service

import (
	"github.com/mfadhilr/contekan/internal/config"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/store"
)

type Services struct {
	AuthService    AuthService
	SnippetService SnippetService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	snippets := NewSnippetService(storages.SnippetRepository, storages.UserRepository, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		SnippetService: NewSnippetValidationService().Wrap(snippets),
	}
}
