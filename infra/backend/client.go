package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/terminalsentiment/domain"
)

const requestIDHeader = "X-Request-ID"

// Observer receives one observation per completed or failed request.
// Status is 0 when no response was received.
type Observer interface {
	ObserveRequest(action string, status int, elapsed time.Duration)
}

// Client is a thin resty wrapper around the sentiment backend's REST API.
// It handles base URL construction, JSON bodies, and error classification.
type Client struct {
	rest     *resty.Client
	log      logrus.FieldLogger
	observer Observer
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger used for per-request debug logs.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// WithObserver attaches a request observer (metrics).
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithTransport replaces the HTTP transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.rest.SetTransport(rt) }
}

// NewClient creates a backend client. baseURL is the backend origin, e.g. "http://localhost:5000".
func NewClient(baseURL string, opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		rest: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Accept", "application/json"),
		log: discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.rest.BaseURL
}

type call struct {
	action     string
	method     string
	path       string
	pathParams map[string]string
	query      map[string]string
	body       any
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, action, path string, pathParams, query map[string]string, out any) error {
	return c.do(ctx, call{action: action, method: http.MethodGet, path: path, pathParams: pathParams, query: query}, out)
}

// Post performs a JSON POST request and decodes the JSON response into out.
func (c *Client) Post(ctx context.Context, action, path string, body, out any) error {
	return c.do(ctx, call{action: action, method: http.MethodPost, path: path, body: body}, out)
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	reqID := uuid.NewString()
	req := c.rest.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, reqID).
		SetPathParams(cl.pathParams).
		SetQueryParams(cl.query)
	if cl.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(cl.body)
	}

	start := time.Now()
	resp, err := req.Execute(cl.method, cl.path)
	if err != nil {
		c.observe(cl.action, 0, time.Since(start))
		c.log.WithError(err).WithFields(logrus.Fields{
			"action":     cl.action,
			"request_id": reqID,
		}).Warn("request failed")
		return &domain.NetworkError{Op: cl.method + " " + cl.path, Err: err}
	}
	c.observe(cl.action, resp.StatusCode(), resp.Time())
	c.logResponse(resp, cl.action, reqID)

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return backendError(resp.StatusCode(), resp.Status(), resp.Body())
	}
	if msg, ok := errorField(resp.Body()); ok {
		return &domain.BackendError{StatusCode: resp.StatusCode(), Status: resp.Status(), Message: msg}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errors.Wrapf(err, "parsing %s response", cl.action)
	}
	return nil
}

func (c *Client) observe(action string, status int, elapsed time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveRequest(action, status, elapsed)
}

func (c *Client) logResponse(resp *resty.Response, action, reqID string) {
	c.log.WithFields(logrus.Fields{
		"action":     action,
		"code":       resp.StatusCode(),
		"request_id": reqID,
		"elapsed":    resp.Time(),
	}).Debugf("response: %d bytes", len(resp.Body()))
}

// backendError classifies a non-success response. The body's "error" field wins;
// a structurally empty object (either "{}" or {"error": {}}) is flagged so the
// caller can tell it apart from a body that carries no detail at all.
func backendError(code int, status string, body []byte) error {
	be := &domain.BackendError{StatusCode: code, Status: status}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return be
	}
	if len(fields) == 0 {
		be.EmptyBody = true
		return be
	}
	raw, ok := fields["error"]
	if !ok {
		return be
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		be.Message = strings.TrimSpace(msg)
		return be
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil && len(obj) == 0 {
		be.EmptyBody = true
	}
	return be
}

// errorField extracts a non-empty "error" string from a success body.
func errorField(body []byte) (string, bool) {
	var env struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		return "", false
	}
	msg := strings.TrimSpace(*env.Error)
	return msg, msg != ""
}
