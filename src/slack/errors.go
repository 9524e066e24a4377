package slack

import (
	"errors"
	"fmt"
)

// ConfigError reports a credential that a call (or the client
// constructor) needs but the environment did not provide.
type ConfigError struct {
	Variable string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf(
		"credential %q is not set. Please add it to the environment variables or pass it to the client.",
		e.Variable,
	)
}

// NotFoundError reports a local file that an operation was asked to
// read before any network call was made.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// RequestError covers every transport-level failure: connection
// errors, timeouts, unexpected HTTP status, and undecodable bodies.
// It wraps the underlying cause for errors.Is/As inspection.
type RequestError struct {
	Endpoint string
	Err      error
}

func (e *RequestError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("request to %s failed", e.Endpoint)
	}
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// APIError is a remote rejection: the platform answered but the
// response envelope carried ok=false. Reason is the remote-supplied
// error string, or "unknown error" when the envelope omitted it.
type APIError struct {
	Endpoint string
	Reason   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("slack API error on %s: %s", e.Endpoint, e.Reason)
}

// ContractError reports a successful envelope that is missing a field
// the calling operation requires.
type ContractError struct {
	Endpoint string
	Field    string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("response from %s is missing expected field %q", e.Endpoint, e.Field)
}

// IsAPIError reports whether err (or anything it wraps) is a remote
// rejection, and returns the remote reason when it is.
func IsAPIError(err error) (string, bool) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "", false
	}
	return apiErr.Reason, true
}

// IsConfigError reports whether err is a missing-credential error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
