package api

import (
	"fmt"
	"net/http"
)

// Kind classifies a failed API call.
type Kind int

const (
	// KindGeneric is an error reported by the API in its errors envelope.
	KindGeneric Kind = iota
	// KindBadResponse covers network-level failures and success
	// responses that carry no data envelope.
	KindBadResponse
	// KindBadJSON means the response body was not valid JSON.
	KindBadJSON
	// KindUnsupportedMethod means the request method was malformed.
	KindUnsupportedMethod
	// KindHTTPStatus means the response status was outside the accepted set.
	KindHTTPStatus
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "error"
	case KindBadResponse:
		return "bad response"
	case KindBadJSON:
		return "bad json"
	case KindUnsupportedMethod:
		return "unsupported method"
	case KindHTTPStatus:
		return "http status"
	default:
		return "unknown"
	}
}

const (
	codeBadJSON           = "2608"
	codeUnsupportedMethod = "9999"

	msgBadJSON           = "API didn't return valid JSON."
	msgUnsupportedMethod = "Invalid request method."
	msgMissingData       = "Did not receive a data field in a non-error response."
)

// Error is the error type returned by Call. Kind selects the failure
// class. Code carries the API-level error code when the server sent
// one, Status the HTTP status for KindHTTPStatus failures, and JSON
// the decoded response body when one was available. Callers match
// broadly with errors.As and narrowly on Kind.
type Error struct {
	Kind    Kind
	Code    string
	Status  int
	Details string
	JSON    map[string]any

	cause error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindHTTPStatus:
		return fmt.Sprintf("api: http status %d %s", e.Status, e.Details)
	case e.Code != "" && e.Details != "":
		return fmt.Sprintf("api: %s %s: %s", e.Kind, e.Code, e.Details)
	case e.Details != "":
		return fmt.Sprintf("api: %s: %s", e.Kind, e.Details)
	default:
		return fmt.Sprintf("api: %s", e.Kind)
	}
}

// Unwrap exposes the underlying transport or decoding failure, if any.
func (e *Error) Unwrap() error { return e.cause }

func newAPIError(code, details string, body map[string]any) *Error {
	return &Error{Kind: KindGeneric, Code: code, Details: details, JSON: body}
}

func newBadResponseError(details string, body map[string]any, cause error) *Error {
	return &Error{Kind: KindBadResponse, Details: details, JSON: body, cause: cause}
}

func newBadJSONError(cause error) *Error {
	return &Error{Kind: KindBadJSON, Code: codeBadJSON, Details: msgBadJSON, cause: cause}
}

func newUnsupportedMethodError() *Error {
	return &Error{Kind: KindUnsupportedMethod, Code: codeUnsupportedMethod, Details: msgUnsupportedMethod}
}

func newHTTPStatusError(status int) *Error {
	return &Error{Kind: KindHTTPStatus, Status: status, Details: http.StatusText(status)}
}
