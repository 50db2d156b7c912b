package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTimeout indicates the gateway callback did not fire within the
// configured deadline. The request may or may not have reached the gateway.
var ErrTimeout = errors.New("gateway request timed out")

// ErrEmptyToken indicates the gateway reported success but returned a blank
// hosted payment page token.
var ErrEmptyToken = errors.New("empty token received from gateway")

// ErrEmptyTransactionID indicates the gateway reported success but returned
// no transaction identifier.
var ErrEmptyTransactionID = errors.New("empty transaction id received from gateway")

// ValidationError indicates a required request field is missing or malformed.
// The gateway is never called when validation fails.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConfigurationError indicates required gateway credentials were neither
// supplied with the request nor available from service configuration.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(reason string) *ConfigurationError {
	return &ConfigurationError{Reason: reason}
}

// GatewayError carries the code and message of the first error reported by
// the gateway after a call was actually executed.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error %s: %s", e.Code, e.Message)
}

// NewGatewayError creates a gateway error from a gateway message
func NewGatewayError(code, message string) *GatewayError {
	return &GatewayError{Code: code, Message: message}
}

// UnexpectedError wraps failures that are neither validation, configuration,
// gateway nor timeout errors: transport faults, malformed response shapes and
// the like. Callers see a generic message; the wrapped cause is for logs.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return "unexpected error: " + e.Err.Error()
}

// Unwrap returns the wrapped cause
func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// NewUnexpectedError wraps an internal failure
func NewUnexpectedError(err error) *UnexpectedError {
	return &UnexpectedError{Err: err}
}
