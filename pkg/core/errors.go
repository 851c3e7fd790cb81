package core

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a client error.
type ErrorType int

// Error type constants categorize failures by the stage that produced them.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeURLParse indicates a malformed base URL, fatal at construction.
	ErrorTypeURLParse
	// ErrorTypeParameterOutOfRange indicates a parameter outside the exchange's bounds.
	ErrorTypeParameterOutOfRange
	// ErrorTypeConflictingParameters indicates mutually exclusive parameters were both set.
	ErrorTypeConflictingParameters
	// ErrorTypeInvalidStateTransition indicates an illegal builder upgrade or reuse.
	ErrorTypeInvalidStateTransition
	// ErrorTypeTransport indicates a connection or timeout failure.
	ErrorTypeTransport
	// ErrorTypeDecode indicates the response body did not match the expected shape.
	ErrorTypeDecode
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"URL_PARSE",
		"PARAMETER_OUT_OF_RANGE",
		"CONFLICTING_PARAMETERS",
		"INVALID_STATE_TRANSITION",
		"TRANSPORT",
		"DECODE",
	}[t]
}

// Sentinel errors for common error conditions.
var (
	// ErrBuilderConsumed is returned when a builder is used after it was upgraded or dispatched.
	ErrBuilderConsumed = errors.New("builder already consumed")
	// ErrNoCredentials is returned when an endpoint needs a key the client does not hold.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNotConnected is returned when the websocket is not connected.
	ErrNotConnected = errors.New("websocket not connected")
)

// Error is a failure produced locally, before or while talking to the exchange.
type Error struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType
	// Message is the human-readable error description.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error of the given type.
func NewError(errorType ErrorType, format string, args ...any) *Error {
	return &Error{
		Type:    errorType,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates an Error of the given type around cause.
func WrapError(errorType ErrorType, cause error, message string) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Err:     cause,
	}
}

// APIError is the exchange rejecting a request with a non-2xx status.
// Code and Message come from the {code,msg} envelope when the body carried one.
type APIError struct {
	// StatusCode is the HTTP status code from the response.
	StatusCode int `json:"-"`
	// Code is the exchange-specific error code, zero when the body had none.
	Code int `json:"code"`
	// Message is the exchange's error description.
	Message string `json:"msg"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("api error (%d/%d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

func isType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsURLParseError returns true if the base URL given at construction was malformed.
func IsURLParseError(err error) bool {
	return isType(err, ErrorTypeURLParse)
}

// IsParameterOutOfRange returns true if a parameter was rejected before sending.
func IsParameterOutOfRange(err error) bool {
	return isType(err, ErrorTypeParameterOutOfRange)
}

// IsConflictingParameters returns true if mutually exclusive parameters were both set.
func IsConflictingParameters(err error) bool {
	return isType(err, ErrorTypeConflictingParameters)
}

// IsInvalidStateTransition returns true if a builder was upgraded or reused illegally.
func IsInvalidStateTransition(err error) bool {
	return isType(err, ErrorTypeInvalidStateTransition)
}

// IsTransportError returns true if the request never got an HTTP response.
// The client does not retry these; that decision belongs to the caller.
func IsTransportError(err error) bool {
	return isType(err, ErrorTypeTransport)
}

// IsDecodeError returns true if the response body could not be decoded.
func IsDecodeError(err error) bool {
	return isType(err, ErrorTypeDecode)
}

// IsAPIError returns true if the exchange rejected the request.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}
