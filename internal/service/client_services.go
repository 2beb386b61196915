package service

import (
	"github.com/mfadhilr/contekan/internal/adapter"
	"github.com/mfadhilr/contekan/internal/config"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/session"
)

// ClientServices bundles the client core: the session provider, the list
// controller, the editor, and the deletion flow, all sharing one server
// adapter.
type ClientServices struct {
	Sessions session.Provider
	List     ListController
	Editor   SnippetEditor
	Delete   DeleteFlow
}

func NewClientServices(cfg *config.ClientConfig, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	sessions := session.NewProvider(serverAdapter, logger)
	list := NewListController(cfg.List, serverAdapter, sessions, logger)

	return &ClientServices{
		Sessions: sessions,
		List:     list,
		Editor:   NewSnippetEditor(serverAdapter, sessions, logger),
		Delete:   NewDeleteFlow(cfg.Delete, serverAdapter, list, logger),
	}
}
