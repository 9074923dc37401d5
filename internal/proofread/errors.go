package proofread

import "errors"

// Proofreading errors.
// Callers treat all of them as a failed request for one sentence.
var (
	// ErrHTTPStatus is returned when the service answers with a non-2xx status.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrNotJSON is returned when the response content type is not JSON.
	ErrNotJSON = errors.New("response is not JSON")

	// ErrMalformedResponse is returned when the body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrServiceStatus is returned when the service reports an error status
	// (1000 or more) in an otherwise valid response.
	ErrServiceStatus = errors.New("service reported an error")

	// ErrInvalidProxyAddress is returned when the proxy address is not
	// in "host:port" form.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)
