package models

// AuthResponse is the body returned by the login and register endpoints.
// Both fields must be present for the response to be considered valid.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RefreshResponse is the body returned by the token refresh endpoint.
type RefreshResponse struct {
	Token string `json:"token"`
}

// ServerError is the structured error body the Galley API attaches to non-2xx
// responses. Error takes priority over transport-level messages when a
// failure is normalized for display.
type ServerError struct {
	Error string `json:"error"`
}
