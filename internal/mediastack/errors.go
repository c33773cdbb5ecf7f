package mediastack

import "fmt"

// ConfigError reports a missing credential. No request is attempted when
// it is returned.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing API credential: %s is not set", e.Key)
}

// TransportError reports a failure to reach the API at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request news: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-success HTTP status from the API.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("news request failed: %s", e.Status)
}

// APIError reports an application-level error carried in a well-formed
// response body.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("news API error: %s: %s", e.Code, e.Message)
}
