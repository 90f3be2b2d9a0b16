package rates

import (
	"errors"
	"fmt"
)

// Sticky error texts shown on the currency screen.
const (
	MessageAPIError     = "API Error"
	MessageNetworkError = "Network Error"
)

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for fetch failures.
const (
	// ErrAPIResult marks a response whose result field is not "success".
	ErrAPIResult = constError("rates API returned a non-success result")

	// ErrTransport marks connection, HTTP status and decoding failures.
	ErrTransport = constError("rates request failed")
)

// APIError carries the service's error-type for a non-success result.
type APIError struct {
	Base   string
	Result string
	Type   string
}

func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("rates API result %q for %s", e.Result, e.Base)
	}
	return fmt.Sprintf("rates API result %q for %s: %s", e.Result, e.Base, e.Type)
}

// Is lets errors.Is(err, ErrAPIResult) match.
func (e *APIError) Is(target error) bool {
	return target == ErrAPIResult
}

// Message maps a fetch error to the text the currency screen displays.
func Message(err error) string {
	if errors.Is(err, ErrAPIResult) {
		return MessageAPIError
	}
	return MessageNetworkError
}
