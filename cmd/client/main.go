package main

import (
	"github.com/galley-app/galley-client/internal/adapter"
	"github.com/galley-app/galley-client/internal/client"
	"github.com/galley-app/galley-client/internal/config"
	"github.com/galley-app/galley-client/internal/crypto"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/service"
	"github.com/galley-app/galley-client/internal/store"
	"github.com/galley-app/galley-client/internal/tui"
)

func main() {
	log := logger.New("galley-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	httpAdapter, err := adapter.NewHTTPAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http adapter")
	}

	sealer, err := crypto.NewMachineSealer(cfg.Storage.SecretPath)
	if err != nil {
		log.Fatal().Err(err).Msg("create session sealer")
	}

	storages, err := store.NewClientStorages(cfg.Storage, sealer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, httpAdapter, httpAdapter, log)
	ui := tui.New(services, cfg.App, log)

	app := client.NewApp(services, ui, cfg.Workers, log)
	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
