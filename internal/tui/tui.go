// Package tui renders the Galley terminal interface with Bubble Tea. All
// business logic lives in the service layer; the models here are thin glue
// that dispatches async commands and renders outcome values.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/galley-app/galley-client/internal/config"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/service"
)

// ErrUserQuit reports that the user closed the application deliberately.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	appCfg   config.ClientApp
	logger   *logger.Logger
}

func New(services *service.ClientServices, appCfg config.ClientApp, logger *logger.Logger) *TUI {
	return &TUI{services: services, appCfg: appCfg, logger: logger}
}

// Run drives the whole interface: menu, auth screens, recipe search and
// detail. It blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(ctx, t.services.SessionService),
		"login":    NewLoginModel(ctx, t.services.SessionService),
		"register": NewRegisterModel(ctx, t.services.SessionService),
		"search":   NewSearchModel(ctx, t.services.SearchService),
		"detail":   NewDetailModel(ctx, t.services.InteractionService, t.appCfg.ShareBaseURL),
	}

	root := NewRootModel(pages, "menu")
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
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
