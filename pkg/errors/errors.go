package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeRequest represents upstream fetch failures: connection errors,
	// timeouts, and non-2xx responses
	ErrorTypeRequest ErrorType = "request"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// ConnectorError represents a connector-specific error
type ConnectorError struct {
	Type    ErrorType
	Source  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *ConnectorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, e.Message)
}

// Unwrap returns the underlying error
func (e *ConnectorError) Unwrap() error {
	return e.Err
}

// New creates a new ConnectorError
func New(errType ErrorType, source, message string, err error) *ConnectorError {
	return &ConnectorError{
		Type:    errType,
		Source:  source,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewRequest creates a new upstream request error
func NewRequest(source, message string, err error) *ConnectorError {
	return New(ErrorTypeRequest, source, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(source, message string, err error) *ConnectorError {
	return New(ErrorTypeParsing, source, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *ConnectorError {
	return New(ErrorTypeConfiguration, "", message, err)
}

// IsRequestFailure reports whether err wraps a ConnectorError of type request
func IsRequestFailure(err error) bool {
	var connErr *ConnectorError
	return stderrors.As(err, &connErr) && connErr.Type == ErrorTypeRequest
}
