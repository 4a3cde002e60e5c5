package untappd

import (
	"errors"
	"fmt"
)

// ErrAuthenticationRequired indicates an authenticated-only endpoint was
// called before an access token was set. No HTTP request is made.
var ErrAuthenticationRequired = errors.New("authentication required: no access token set")

var errMissingAccessToken = errors.New("response contains no access_token")

// InvalidArgumentError indicates malformed or missing caller input, detected
// before any I/O.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Reason)
}

// EndpointNotFoundError indicates an accessor that matches no known endpoint.
type EndpointNotFoundError struct {
	Accessor string
}

func (e *EndpointNotFoundError) Error() string {
	return fmt.Sprintf("unknown endpoint %q", e.Accessor)
}

// RemoteAPIError represents a failure reported by Untappd, either as a
// non-2xx HTTP status or as an error envelope in the response body.
type RemoteAPIError struct {
	StatusCode int
	ErrorType  string
	Detail     string
}

func (e *RemoteAPIError) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("untappd API error: status %d (%s): %s", e.StatusCode, e.ErrorType, e.Detail)
	}
	return fmt.Sprintf("untappd API error: status %d: %s", e.StatusCode, e.Detail)
}

// IsInvalidAuth reports whether the API rejected the credentials.
func (e *RemoteAPIError) IsInvalidAuth() bool {
	return e.ErrorType == "invalid_auth"
}

// OAuthError indicates a failed token exchange.
type OAuthError struct {
	Op  string
	Err error
}

func (e *OAuthError) Error() string {
	return fmt.Sprintf("oauth %s failed: %v", e.Op, e.Err)
}

func (e *OAuthError) Unwrap() error {
	return e.Err
}
