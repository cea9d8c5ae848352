package client

import (
	"context"
	"errors"

	"github.com/galley-app/galley-client/internal/config"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/service"
	"github.com/galley-app/galley-client/internal/tui"
	"github.com/galley-app/galley-client/internal/workers"
)

// App owns the process lifecycle: restore the persisted session, keep its
// token fresh in the background, and run the terminal UI until the user
// quits.
type App struct {
	services   *service.ClientServices
	ui         *tui.TUI
	refreshJob workers.RefreshJob
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) *App {
	return &App{
		services:   services,
		ui:         ui,
		refreshJob: workers.NewRefreshJob(services.SessionService, workersCfg.RefreshMargin, log),
		logger:     log,
	}
}

// Run starts the client and blocks until the UI exits.
func (a *App) Run() error {
	ctx := context.Background()

	// Restore the previous session, if an intact one is persisted. A
	// missing or corrupted session leaves the client anonymous.
	a.services.SessionService.Init(ctx)

	a.refreshJob.Start(ctx)
	defer a.refreshJob.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit")
			return nil
		}
		return err
	}
	return nil
}
