// Package apiclient is a typed client for the upstream microfinance REST API.
// Every call is a single attempt; deadlines come from the caller's context.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fieldops-server/internal/metrics"
	"github.com/carson-networks/fieldops-server/internal/session"
)

const DefaultBaseURL = "https://api.fieldops-microfinance.co.ke/api"

const fallbackErrorMessage = "Request failed"

type Config struct {
	BaseURL string
	// Timeout of 0 leaves requests bounded only by their context.
	Timeout time.Duration
}

type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
	logger   *logrus.Logger
	metrics  *metrics.Collector
	validate *validator.Validate
	now      func() time.Time
}

func New(cfg Config, sessions session.Store, logger *logrus.Logger, collector *metrics.Collector) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if sessions == nil {
		sessions = session.NewMemoryStore()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Jar: jar, Timeout: cfg.Timeout},
		sessions: sessions,
		logger:   logger,
		metrics:  collector,
		validate: newValidator(),
		now:      time.Now,
	}, nil
}

// APIError is returned for any non-2xx upstream response.
type APIError struct {
	Status   int
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) patch(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPatch, endpoint, body, out)
}

func (c *Client) delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// send validates body before doing anything else. A failed validation never
// reaches the network.
func (c *Client) send(ctx context.Context, method, endpoint string, body, out any) error {
	if err := c.check(body); err != nil {
		return err
	}
	return c.do(ctx, method, endpoint, body, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(ctx, req)

	start := time.Now()
	resp, err := c.http.Do(req)
	route := routeLabel(endpoint)
	if err != nil {
		c.metrics.RecordUpstream(route, method, 0, time.Since(start))
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method":   method,
			"endpoint": endpoint,
		}).Warn("ApiClient.do.transport error")
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()
	c.metrics.RecordUpstream(route, method, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Status:   resp.StatusCode,
			Endpoint: endpoint,
			Message:  errorMessage(data),
		}
		c.logger.WithFields(logrus.Fields{
			"method":   method,
			"endpoint": endpoint,
			"status":   resp.StatusCode,
			"message":  apiErr.Message,
		}).Warn("ApiClient.do.upstream error")
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, endpoint, err)
	}
	return nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) {
	s, err := c.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			c.logger.WithError(err).Warn("ApiClient.authorize.session load error")
		}
		return
	}
	if s.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AuthToken)
	}
}

func errorMessage(data []byte) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return fallbackErrorMessage
	}
	switch {
	case body.Error != "":
		return body.Error
	case body.Message != "":
		return body.Message
	default:
		return fallbackErrorMessage
	}
}

// routeLabel collapses identifier segments so metrics stay low-cardinality.
func routeLabel(endpoint string) string {
	path, _, _ := strings.Cut(endpoint, "?")
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.IndexFunc(seg, unicode.IsDigit) >= 0 {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func list[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	var out []T
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}
