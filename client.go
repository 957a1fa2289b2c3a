package repox

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// restPath is the prefix under which a REPOX instance exposes its
// management endpoints.
const restPath = "/repox/rest"

// Client talks to the management API of a single REPOX instance. It is
// stateless apart from the base URL and credentials and safe for
// concurrent use.
type Client struct {
	endpoint string
	username string
	password string
	client   *http.Client
	log      logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTimeout sets the per-request timeout. The default is 60 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithLogger enables debug-level request logging. The client is silent
// without it.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the REPOX instance at baseURL, authenticating
// every request with the given credentials.
func New(baseURL, username, password string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(baseURL, "/") + restPath,
		username: username,
		password: password,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StatusError reports a non-2xx response from the service.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s",
		e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// do issues a single request against path (relative to the rest prefix)
// and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	reqURL := c.endpoint + path
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/xml")
	if body != nil {
		req.Header.Set("Content-Type", "application/xml")
	}

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"url":    reqURL,
		}).Debug("repox request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, URL: reqURL, StatusCode: resp.StatusCode}
	}
	return data, nil
}

// getXML fetches path and decodes the XML response into v.
func (c *Client) getXML(ctx context.Context, path string, v any) error {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse xml: %w", err)
	}
	return nil
}

// sendXML marshals v (when non-nil) and sends it to path. The response
// body is discarded; only the status matters.
func (c *Client) sendXML(ctx context.Context, method, path string, v any) error {
	var body io.Reader
	if v != nil {
		data, err := xml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	_, err := c.do(ctx, method, path, body)
	return err
}

// result unwraps the <response><result> endpoints that return a single
// scalar value.
func (c *Client) result(ctx context.Context, path string) (string, error) {
	var resp struct {
		Result string `xml:"result"`
	}
	if err := c.getXML(ctx, path, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}

// options fetches one of the option-set endpoints.
func (c *Client) options(ctx context.Context, path string) ([]ServiceOption, error) {
	var list struct {
		Options []ServiceOption `xml:"option"`
	}
	if err := c.getXML(ctx, path, &list); err != nil {
		return nil, err
	}
	return list.Options, nil
}
