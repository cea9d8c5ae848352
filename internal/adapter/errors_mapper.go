package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/galley-app/galley-client/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError translates a non-2xx response into one of the package's
// sentinel errors, carrying the most specific message the server offered.
//
// The Galley API puts failures in a structured {"error": "..."} body; when
// that field is present it becomes the wrapped message, otherwise the raw
// body, otherwise the status text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := serverMessage(resp.Body())
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// serverMessage extracts the structured error field from a response body,
// falling back to the trimmed raw body when the field is absent.
func serverMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var se models.ServerError
	if err := json.Unmarshal(body, &se); err == nil && se.Error != "" {
		return se.Error
	}

	return trimmed
}
