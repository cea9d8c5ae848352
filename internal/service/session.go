package service

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/galley-app/galley-client/internal/adapter"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/store"
	"github.com/galley-app/galley-client/models"
)

// sessionService keeps the in-memory session and the vault in step. All
// writes to the triple happen under mu and bump the epoch, so a refresh
// that started against an older session can detect that the world moved on
// and must not tear down the newer one.
type sessionService struct {
	mu      sync.Mutex
	session models.Session
	epoch   uint64

	vault    store.SessionVault
	auth     adapter.AuthAdapter
	validate *validator.Validate
	logger   *logger.Logger
}

func NewSessionService(vault store.SessionVault, auth adapter.AuthAdapter, logger *logger.Logger) SessionService {
	return &sessionService{
		vault:    vault,
		auth:     auth,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (s *sessionService) Login(ctx context.Context, email, password string) models.AuthResult {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionService.Login").
			Str("email", email).
			Msg("login failed")
		return models.AuthResult{Success: false, Error: normalizeError(err, msgLoginFailed)}
	}

	s.establish(ctx, resp.Token, *resp.User)
	return models.AuthResult{Success: true}
}

func (s *sessionService) Register(ctx context.Context, profile models.RegisterProfile) models.AuthResult {
	if err := s.validate.Struct(profile); err != nil {
		s.logger.Warn().
			Str("func", "sessionService.Register").
			Str("reason", err.Error()).
			Msg("registration profile rejected before request")
		return models.AuthResult{Success: false, Error: msgInvalidProfile}
	}

	resp, err := s.auth.Register(ctx, profile)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionService.Register").
			Str("email", profile.Email).
			Msg("registration failed")
		return models.AuthResult{Success: false, Error: normalizeError(err, msgRegisterFailed)}
	}

	s.establish(ctx, resp.Token, *resp.User)
	return models.AuthResult{Success: true}
}

// establish installs a freshly authenticated session and persists it. A
// vault write failure does not undo the login: the session is valid for
// this run and the error is logged.
func (s *sessionService) establish(ctx context.Context, token string, user models.User) {
	s.mu.Lock()
	s.session = models.Session{User: &user, Token: token, Authenticated: true}
	s.epoch++
	s.mu.Unlock()

	if err := s.vault.SaveSession(ctx, token, user); err != nil {
		s.logger.Err(err).
			Str("func", "sessionService.establish").
			Str("user_id", user.ID).
			Msg("failed to persist session")
	}
}

func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = models.Session{}
	s.epoch++
	s.mu.Unlock()

	if err := s.vault.ClearSession(ctx); err != nil {
		s.logger.Err(err).
			Str("func", "sessionService.Logout").
			Msg("failed to clear persisted session")
	}
}

func (s *sessionService) Init(ctx context.Context) {
	token, user, err := s.vault.LoadSession(ctx)
	switch {
	case err == nil:
		s.mu.Lock()
		s.session = models.Session{User: &user, Token: token, Authenticated: true}
		s.epoch++
		s.mu.Unlock()
		s.logger.Info().
			Str("func", "sessionService.Init").
			Str("user_id", user.ID).
			Msg("session restored from vault")

	case errors.Is(err, store.ErrSessionNotFound):
		// Nothing persisted; stay anonymous.

	default:
		// Corrupted or unreadable state must not linger half-trusted.
		s.logger.Err(err).
			Str("func", "sessionService.Init").
			Msg("persisted session unusable, clearing vault")
		if clearErr := s.vault.ClearSession(ctx); clearErr != nil {
			s.logger.Err(clearErr).
				Str("func", "sessionService.Init").
				Msg("failed to clear unusable session")
		}
	}
}

func (s *sessionService) RefreshToken(ctx context.Context) bool {
	s.mu.Lock()
	startEpoch := s.epoch
	current := s.session
	s.mu.Unlock()

	if !current.Authenticated {
		return false
	}

	resp, err := s.auth.Refresh(ctx, current.Token)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionService.RefreshToken").
			Msg("token refresh failed")

		// A failed refresh means the session is no longer valid, but
		// only for the session the refresh was issued against. If a
		// login or logout happened in the meantime, leave the newer
		// state alone.
		s.mu.Lock()
		stale := s.epoch != startEpoch
		s.mu.Unlock()
		if !stale {
			s.Logout(ctx)
		}
		return false
	}

	s.mu.Lock()
	if s.epoch != startEpoch {
		s.mu.Unlock()
		s.logger.Warn().
			Str("func", "sessionService.RefreshToken").
			Msg("session changed during refresh, discarding new token")
		return false
	}
	s.session.Token = resp.Token
	s.epoch++
	user := *s.session.User
	s.mu.Unlock()

	if err := s.vault.SaveSession(ctx, resp.Token, user); err != nil {
		s.logger.Err(err).
			Str("func", "sessionService.RefreshToken").
			Msg("failed to persist refreshed token")
	}
	return true
}

func (s *sessionService) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.session
	if s.session.User != nil {
		user := *s.session.User
		snapshot.User = &user
	}
	return snapshot
}

func (s *sessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}
