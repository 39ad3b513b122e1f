// Package gqlclient sends registered GraphQL operations to the survey API.
package gqlclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/mbolis/survey-editor/gql"
	"github.com/mbolis/survey-editor/log"
	"github.com/mbolis/survey-editor/metrics"
	"github.com/mbolis/survey-editor/session"
)

const maxErrorBody = 4 << 10

type Client struct {
	url      string
	registry *gql.Registry
	http     *http.Client
	timeout  time.Duration
	metrics  *metrics.Metrics
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.http = c }
}

// WithTimeout bounds every call, on top of the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) { client.timeout = d }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(client *Client) { client.metrics = m }
}

func New(url string, registry *gql.Registry, opts ...Option) *Client {
	c := &Client{
		url:      url,
		registry: registry,
		http:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName"`
	Variables     any    `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors gqlerror.List   `json:"errors"`
}

// Do implements gql.Executor.
func (c *Client) Do(ctx context.Context, operation string, variables any, data any) (err error) {
	doc := c.registry.Named(operation)
	if doc == nil || doc.Kind == gql.Fragment {
		return errors.Wrap(gql.ErrUnknownOperation, operation)
	}

	start := time.Now()
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		c.metrics.ObserveGraphQL(operation, status, time.Since(start))
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(request{
		Query:         doc.Text,
		OperationName: doc.Name,
		Variables:     variables,
	})
	if err != nil {
		return errors.Wrapf(err, "%s: encode request", operation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "%s: new request", operation)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s := session.FromContext(ctx); s != nil && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	if lang := acceptLanguage(ctx); lang != "" {
		req.Header.Set("Accept-Language", lang)
	}

	log.WithFields(log.Fields{"operation": operation, "url": c.url}).Debug("gqlclient.do")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s: send", operation)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.Errorf("%s: unexpected status %d: %s", operation, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return errors.Wrapf(err, "%s: decode response", operation)
	}

	if len(decoded.Errors) > 0 {
		var result *multierror.Error
		for _, e := range decoded.Errors {
			result = multierror.Append(result, e)
		}
		return errors.Wrap(result, operation)
	}

	if data == nil || len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(decoded.Data, data); err != nil {
		return errors.Wrapf(err, "%s: decode data", operation)
	}
	return nil
}

type acceptLanguageKey struct{}

// WithAcceptLanguage makes calls made with the returned context carry an
// Accept-Language header.
func WithAcceptLanguage(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, acceptLanguageKey{}, locale)
}

func acceptLanguage(ctx context.Context) string {
	lang, _ := ctx.Value(acceptLanguageKey{}).(string)
	return lang
}
