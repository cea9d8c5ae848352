package service

import (
	"github.com/galley-app/galley-client/internal/adapter"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/store"
)

// ClientServices groups the client's business services for the UI layer.
type ClientServices struct {
	SessionService     SessionService
	SearchService      SearchService
	InteractionService InteractionService
}

// NewClientServices wires the services to the vault and transport adapters.
// The session service is the single token source for the request-issuing
// services.
func NewClientServices(storages *store.ClientStorages, auth adapter.AuthAdapter, queries adapter.QueryAdapter, logger *logger.Logger) *ClientServices {
	sessionSvc := NewSessionService(storages.SessionVault, auth, logger)

	return &ClientServices{
		SessionService:     sessionSvc,
		SearchService:      NewSearchService(queries, sessionSvc, logger),
		InteractionService: NewInteractionService(queries, sessionSvc, logger),
	}
}
