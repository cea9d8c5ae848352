package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/galley-app/galley-client/internal/config"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/utils"
	"github.com/galley-app/galley-client/models"
	"github.com/go-resty/resty/v2"
)

// HTTPAdapter is the HTTP implementation of [AuthAdapter] and
// [QueryAdapter]. It holds no session state: bearer tokens are supplied by
// the caller per request.
type HTTPAdapter struct {
	client    *utils.HTTPClient
	requestID *utils.RequestIDGenerator
	logger    *logger.Logger
}

// NewHTTPAdapter constructs an [HTTPAdapter] from the client transport
// configuration. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and applies the configured request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (*HTTPAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &HTTPAdapter{
		client:    client,
		requestID: utils.NewRequestIDGenerator(),
		logger:    log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request prepares an outbound request with a fresh request id. A non-empty
// token is attached as a bearer credential; an empty token leaves the
// request unauthenticated.
func (h *HTTPAdapter) request(ctx context.Context, token string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", h.requestID.Generate())

	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// Login implements [AuthAdapter]. It POSTs the credentials to
// POST /api/v1/auth/login and decodes the token/user pair from the body.
// A 2xx body missing either field yields [ErrInvalidResponse].
func (h *HTTPAdapter) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx, "").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&auth).
		Post("/api/v1/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if auth.Token == "" || auth.User == nil {
		return models.AuthResponse{}, ErrInvalidResponse
	}

	return auth, nil
}

// Register implements [AuthAdapter]. Same contract as Login against
// POST /api/v1/auth/register with the registration payload shape.
func (h *HTTPAdapter) Register(ctx context.Context, profile models.RegisterProfile) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx, "").
		SetBody(profile).
		SetResult(&auth).
		Post("/api/v1/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if auth.Token == "" || auth.User == nil {
		return models.AuthResponse{}, ErrInvalidResponse
	}

	return auth, nil
}

// Refresh implements [AuthAdapter]. It POSTs to POST /api/v1/auth/refresh
// bearing the current token and decodes the replacement token.
func (h *HTTPAdapter) Refresh(ctx context.Context, token string) (models.RefreshResponse, error) {
	var refreshed models.RefreshResponse

	resp, err := h.request(ctx, token).
		SetResult(&refreshed).
		Post("/api/v1/auth/refresh")
	if err != nil {
		return models.RefreshResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RefreshResponse{}, err
	}

	if refreshed.Token == "" {
		return models.RefreshResponse{}, ErrInvalidResponse
	}

	return refreshed, nil
}
