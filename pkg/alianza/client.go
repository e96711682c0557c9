/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package alianza is a client for the Alianza provisioning API: session authorization plus
// the account, device and registration-status lookups regreport chains per input row.
package alianza

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/carverauto/regreport/pkg/logger"
	"github.com/carverauto/regreport/pkg/version"
)

const (
	tracerName = "github.com/carverauto/regreport/pkg/alianza"

	headerAuthToken = "X-AUTH-TOKEN"
	headerRequestID = "X-Request-ID"

	maxResponseBody = 4 << 20
)

// Client talks to one API endpoint within one partition.
type Client struct {
	baseURL      string
	partition    string
	httpClient   HTTPClient
	logger       logger.Logger
	userAgent    string
	tracer       trace.Tracer
	newRequestID func() string
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

func WithHTTPClient(c HTTPClient) ClientOption {
	return func(cl *Client) { cl.httpClient = c }
}

func WithLogger(l logger.Logger) ClientOption {
	return func(cl *Client) { cl.logger = l }
}

func WithTracerProvider(tp trace.TracerProvider) ClientOption {
	return func(cl *Client) { cl.tracer = tp.Tracer(tracerName) }
}

func WithUserAgent(ua string) ClientOption {
	return func(cl *Client) { cl.userAgent = ua }
}

// WithRequestIDFunc replaces the uuid generator used for X-Request-ID.
func WithRequestIDFunc(fn func() string) ClientOption {
	return func(cl *Client) { cl.newRequestID = fn }
}

// NewClient builds a client for endpoint (e.g. https://api.alianza.com/v2) scoped to partition.
func NewClient(endpoint, partition string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		partition:    strings.TrimSpace(partition),
		httpClient:   NewHTTPClient(0, false),
		logger:       logger.NewTestLogger(),
		userAgent:    version.UserAgent(),
		tracer:       logger.GetTracer(tracerName),
		newRequestID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewHTTPClient returns an *http.Client. A zero timeout keeps net/http's default of none.
func NewHTTPClient(timeout time.Duration, skipVerify bool) *http.Client {
	client := &http.Client{Timeout: timeout}

	if skipVerify {
		if transport, ok := http.DefaultTransport.(*http.Transport); ok {
			clone := transport.Clone()
			if clone.TLSClientConfig == nil {
				clone.TLSClientConfig = &tls.Config{}
			}

			clone.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec // opt-in via config
			client.Transport = clone
		}
	}

	return client
}

// Partition returns the partition identifier every resource path is scoped to.
func (c *Client) Partition() string {
	return c.partition
}

// partitionPath joins escaped segments under /partition/{p}.
func (c *Client) partitionPath(segments ...string) string {
	var b strings.Builder

	b.WriteString("/partition/")
	b.WriteString(url.PathEscape(c.partition))

	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}

	return b.String()
}

// do sends one request inside a client span and returns the body and status of a 2xx
// response. Non-2xx responses become *APIError, with 404 unwrapping to ErrNotFound.
func (c *Client) do(ctx context.Context, spanName, method, path, rawQuery, token string, body interface{}) ([]byte, int, error) {
	ctx, span := c.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	respBody, status, err := c.roundTrip(ctx, method, path, rawQuery, token, body)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, status, err
	}

	return respBody, status, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path, rawQuery, token string, body interface{}) ([]byte, int, error) {
	reqURL := c.baseURL + path
	if rawQuery != "" {
		reqURL += "?" + rawQuery
	}

	var reader io.Reader = http.NoBody

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, 0, err
	}

	requestID := c.newRequestID()

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(headerRequestID, requestID)

	if token != "" {
		req.Header.Set(headerAuthToken, token)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("API request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var kind error
		if resp.StatusCode == http.StatusNotFound {
			kind = ErrNotFound
		}

		return nil, resp.StatusCode, newAPIError(resp.StatusCode, path, respBody, kind)
	}

	return respBody, resp.StatusCode, nil
}

func decode(body []byte, dst interface{}) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", errDecodeFailed, err)
	}

	return nil
}
