package models

// Session is an immutable snapshot of the client's authentication state.
//
// The invariant Authenticated == (User != nil && Token != "") holds for every
// snapshot handed out by the session store: the three fields are only ever
// written as a unit, so no caller can observe a half-populated session.
type Session struct {
	// User is the identity record of the authenticated account, nil when
	// anonymous.
	User *User `json:"user,omitempty"`

	// Token is the bearer credential attached to authenticated requests,
	// empty when anonymous.
	Token string `json:"token,omitempty"`

	// Authenticated reports whether both User and Token are present.
	Authenticated bool `json:"authenticated"`
}

// AuthResult is the outcome value returned by Login and Register. Auth
// operations never return a Go error to the caller; failures are normalized
// into the Error message instead.
type AuthResult struct {
	// Success reports whether the session was established.
	Success bool

	// Error holds a human-readable failure message when Success is false.
	// Extracted from the server's structured error field when present,
	// falling back to the transport error, then to a fixed message.
	Error string
}
