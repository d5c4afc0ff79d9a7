// Package api calls a JSON HTTP API: it joins URL fragments, issues
// the request, validates the response status, and classifies failures
// into typed errors.
package api

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client issues JSON API calls over a shared resty transport. It holds
// no mutable state after construction, so concurrent calls need no
// coordination.
type Client struct {
	rc *resty.Client
}

// New builds a Client with the given request timeout.
func New(timeout time.Duration) *Client {
	rc := resty.New()
	rc.SetTimeout(timeout)
	rc.SetAllowGetMethodPayload(true)
	return &Client{rc: rc}
}

// NewWithResty wraps an existing resty client, for callers that need a
// custom transport or middleware.
func NewWithResty(rc *resty.Client) *Client {
	return &Client{rc: rc}
}

type callOptions struct {
	statuses map[int]struct{}
	headers  map[string]string
	query    map[string]string
}

// CallOption adjusts a single call.
type CallOption func(*callOptions)

// WithStatuses replaces the default any-4xx/5xx-fails policy with an
// explicit set of acceptable response status codes.
func WithStatuses(codes ...int) CallOption {
	return func(o *callOptions) {
		if o.statuses == nil {
			o.statuses = make(map[int]struct{}, len(codes))
		}
		for _, c := range codes {
			o.statuses[c] = struct{}{}
		}
	}
}

// WithHeader sets an extra request header.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithQuery sets a query string parameter.
func WithQuery(key, value string) CallOption {
	return func(o *callOptions) {
		if o.query == nil {
			o.query = make(map[string]string)
		}
		o.query[key] = value
	}
}

// Call sends one JSON request and interprets the result. A nil data
// map is sent as an empty JSON object. GET, PUT and POST (exact case)
// use resty's verb helpers; any other well-formed method is sent
// upper-cased through the generic execute path. On success the decoded
// response document (which always contains a data key) is returned;
// every failure is a *Error whose Kind states what went wrong.
func (c *Client) Call(ctx context.Context, method, uri string, data map[string]any, opts ...CallOption) (map[string]any, error) {
	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}

	if !validMethod(method) {
		return nil, newUnsupportedMethodError()
	}
	if data == nil {
		data = map[string]any{}
	}

	req := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data)
	if len(co.headers) > 0 {
		req.SetHeaders(co.headers)
	}
	if len(co.query) > 0 {
		req.SetQueryParams(co.query)
	}

	var resp *resty.Response
	var err error
	switch method {
	case "GET":
		resp, err = req.Get(uri)
	case "PUT":
		resp, err = req.Put(uri)
	case "POST":
		resp, err = req.Post(uri)
	default:
		resp, err = req.Execute(strings.ToUpper(method), uri)
	}
	if err != nil {
		return nil, newBadResponseError("", nil, err)
	}

	if co.statuses == nil {
		if resp.IsError() {
			return nil, newHTTPStatusError(resp.StatusCode())
		}
	} else if _, ok := co.statuses[resp.StatusCode()]; !ok {
		return nil, newHTTPStatusError(resp.StatusCode())
	}

	var doc any
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, newBadJSONError(err)
	}
	body, ok := doc.(map[string]any)
	if !ok {
		return nil, newBadResponseError(msgMissingData, nil, nil)
	}

	if raw, ok := body["errors"]; ok {
		return nil, payloadError(raw, body)
	}
	if _, ok := body["data"]; !ok {
		return nil, newBadResponseError(msgMissingData, body, nil)
	}
	return body, nil
}

// CallJoin resolves uri fragments through URLJoin before calling.
func (c *Client) CallJoin(ctx context.Context, method string, parts []string, data map[string]any, opts ...CallOption) (map[string]any, error) {
	return c.Call(ctx, method, URLJoin(parts...), data, opts...)
}

// payloadError builds the generic API error from the first entry of
// the errors envelope; code and details are both optional there.
func payloadError(raw any, body map[string]any) *Error {
	var code, details string
	if list, ok := raw.([]any); ok && len(list) > 0 {
		if entry, ok := list[0].(map[string]any); ok {
			code, _ = entry["code"].(string)
			details, _ = entry["details"].(string)
		}
	}
	return newAPIError(code, details, body)
}

// validMethod reports whether method is a non-empty HTTP token
// (RFC 7230 tchar set).
func validMethod(method string) bool {
	if method == "" {
		return false
	}
	for _, r := range method {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		case strings.ContainsRune("!#$%&'*+-.^_`|~", r):
		default:
			return false
		}
	}
	return true
}
