package core

import "errors"

// ErrorCode is a numeric error identifier from the exchange's {code,msg} envelope.
type ErrorCode int

// Error codes the client is most likely to see back from the exchange.
const (
	// ErrCodeUnknown is an unknown error while processing the request.
	ErrCodeUnknown ErrorCode = -1000
	// ErrCodeDisconnected means the server was busy or unavailable.
	ErrCodeDisconnected ErrorCode = -1001
	// ErrCodeUnauthorized means the key is not authorized for this request.
	ErrCodeUnauthorized ErrorCode = -1002
	// ErrCodeTooManyRequests means the request weight limit was exceeded.
	ErrCodeTooManyRequests ErrorCode = -1003
	// ErrCodeTimeout means the backend did not answer in time.
	ErrCodeTimeout ErrorCode = -1007
	// ErrCodeTooManyOrders means the order rate limit was exceeded.
	ErrCodeTooManyOrders ErrorCode = -1015
	// ErrCodeInvalidTimestamp means the timestamp fell outside recvWindow.
	ErrCodeInvalidTimestamp ErrorCode = -1021
	// ErrCodeInvalidSignature means the signature did not match the query.
	ErrCodeInvalidSignature ErrorCode = -1022

	// Request parameter errors
	ErrCodeIllegalChars        ErrorCode = -1100
	ErrCodeTooManyParameters   ErrorCode = -1101
	ErrCodeMandatoryParamEmpty ErrorCode = -1102
	ErrCodeUnknownParam        ErrorCode = -1103
	ErrCodeUnreadParameters    ErrorCode = -1104
	ErrCodeParamEmpty          ErrorCode = -1105
	ErrCodeParamNotRequired    ErrorCode = -1106
	ErrCodeBadPrecision        ErrorCode = -1111
	ErrCodeInvalidTimeInForce  ErrorCode = -1115
	ErrCodeInvalidOrderType    ErrorCode = -1116
	ErrCodeInvalidSide         ErrorCode = -1117
	ErrCodeBadSymbol           ErrorCode = -1121
	ErrCodeInvalidListenKey    ErrorCode = -1125
	ErrCodeMoreThanXXHours     ErrorCode = -1127
	ErrCodeOptionalParamsBad   ErrorCode = -1128
	ErrCodeInvalidParameter    ErrorCode = -1130

	// Order errors
	ErrCodeNewOrderRejected ErrorCode = -2010
	ErrCodeCancelRejected   ErrorCode = -2011
	ErrCodeNoSuchOrder      ErrorCode = -2013
	ErrCodeBadAPIKeyFormat  ErrorCode = -2014
	ErrCodeRejectedMBXKey   ErrorCode = -2015
)

// IsErrorCode checks if err is an APIError carrying the given exchange code.
func IsErrorCode(err error, code ErrorCode) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return ErrorCode(apiErr.Code) == code
	}
	return false
}

// IsTerminalError returns true if resending the same request cannot succeed.
func IsTerminalError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch ErrorCode(apiErr.Code) {
	case ErrCodeNewOrderRejected, ErrCodeCancelRejected, ErrCodeNoSuchOrder,
		ErrCodeBadAPIKeyFormat, ErrCodeRejectedMBXKey, ErrCodeInvalidSignature, ErrCodeBadSymbol:
		return true
	}
	return apiErr.Code <= -1100 && apiErr.Code > -1200
}
