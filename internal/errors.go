package internal

import (
	"errors"
	"fmt"
)

// ConfigError means the configuration itself is unusable (empty database
// name, malformed view identifier). There is no point retrying.
type ConfigError struct {
	Reason string
}

func NewConfigError(reason string) *ConfigError {
	return &ConfigError{Reason: reason}
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func (e ConfigError) Is(target error) bool {
	var t *ConfigError
	ok := errors.As(target, &t)
	return ok
}

// ConnectionError means the remote database could not be reached or
// rejected the credential.
type ConnectionError struct {
	Database string
	Err      error
}

func NewConnectionError(database string, err error) *ConnectionError {
	return &ConnectionError{Database: database, Err: err}
}

func (e ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to database %q: %v", e.Database, e.Err)
}

func (e ConnectionError) Unwrap() error {
	return e.Err
}

func (e ConnectionError) Is(target error) bool {
	var t *ConnectionError
	ok := errors.As(target, &t)
	return ok
}

// QueryError means the connection works but the query against the view
// failed (view missing, projection invalid).
type QueryError struct {
	View string
	Err  error
}

func NewQueryError(view string, err error) *QueryError {
	return &QueryError{View: view, Err: err}
}

func (e QueryError) Error() string {
	return fmt.Sprintf("query against %q failed: %v", e.View, e.Err)
}

func (e QueryError) Unwrap() error {
	return e.Err
}

func (e QueryError) Is(target error) bool {
	var t *QueryError
	ok := errors.As(target, &t)
	return ok
}
