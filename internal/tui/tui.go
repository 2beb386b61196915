// Package tui implements the terminal client: the login/register flow and
// the main snippet browser, built on Bubble Tea over the client core
// services.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/service"
)

var ErrUserQuit = errors.New("keluar dari program")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// LoginFlow runs the menu/login/register pages until the user is signed in
// or quits. Returns ErrUserQuit when the user left without signing in.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.Sessions),
		"register": NewRegisterModel(ctx, t.services.Sessions),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the snippet browser until the user quits or logs out. The
// deletion flow's listener is routed into the program so countdown ticks
// and delete outcomes arrive as messages.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.services.Delete.SetListener(func(event service.DeleteEvent) {
		program.Send(deleteEventMsg{event: event})
	})
	defer t.services.Delete.SetListener(nil)

	finalModel, runErr := program.Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
