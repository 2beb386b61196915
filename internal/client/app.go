package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mfadhilr/contekan/internal/config"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/service"
	"github.com/mfadhilr/contekan/internal/tui"
	"github.com/mfadhilr/contekan/internal/workers"
)

// App ties the terminal UI, the client services and the background refresh
// job into one process lifecycle: login flow, main loop, and on logout back
// to the login flow.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	cfg      config.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg config.Workers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("client app requires services and a UI")
	}
	return &App{services: services, tui: ui, cfg: cfg, logger: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	if err := a.tui.LoginFlow(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("login flow: %w", err)
	}

	refresh := workers.NewRefreshJob(a.services.List, a.logger)
	refresh.Start(ctx, a.cfg.RefreshInterval)
	defer refresh.Stop()

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}

	if logout {
		refresh.Stop()
		a.services.Sessions.SignOut()
		return a.Run()
	}

	return nil
}
