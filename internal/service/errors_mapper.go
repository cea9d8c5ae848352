package service

import (
	"errors"
	"strings"

	"github.com/galley-app/galley-client/internal/adapter"
)

// transportSentinels are the adapter errors that carry a server-provided
// message in their wrapped text.
var transportSentinels = []error{
	adapter.ErrBadRequest,
	adapter.ErrUnauthorized,
	adapter.ErrForbidden,
	adapter.ErrNotFound,
	adapter.ErrConflict,
	adapter.ErrInternalServerError,
	adapter.ErrBadGateway,
}

// normalizeError turns a transport error into the message shown to the
// user. Priority: the server's own message carried inside a mapped status
// error, then the transport error text, then the given fallback.
func normalizeError(err error, fallback string) string {
	if err == nil {
		return ""
	}

	for _, sentinel := range transportSentinels {
		if errors.Is(err, sentinel) {
			msg := strings.TrimSpace(strings.TrimPrefix(err.Error(), sentinel.Error()+":"))
			if msg != "" && msg != err.Error() {
				return msg
			}
			break
		}
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}

	return fallback
}
