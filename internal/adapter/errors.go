package adapter

import "errors"

// Sentinel transport errors mapped from HTTP status codes by mapHTTPError.
// The error body, when present, is appended to the wrapped message so the
// service layer can surface the server's own wording.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrInvalidResponse indicates a 2xx response whose body is missing
	// expected fields or cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response from server")
)
