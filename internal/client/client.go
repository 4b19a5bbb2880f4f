package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/RitterHou/search-platform/internal/resource"
)

// Config configures the backend client
type Config struct {
	// BaseURL is the backend api root, e.g. http://backend:8000/api
	BaseURL string
	// Token is sent as a bearer token when set
	Token   string
	Timeout time.Duration

	RateLimit float64 // requests per second
	RateBurst int

	Retry RetryConfig

	// Transport allows injecting a custom round tripper in tests
	Transport http.RoundTripper
}

// RetryConfig controls the exponential backoff between attempts
type RetryConfig struct {
	MaxRetries        int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
}

func DefaultConfig() Config {
	return Config{
		Timeout:   30 * time.Second,
		RateLimit: 10,
		RateBurst: 5,
		Retry: RetryConfig{
			MaxRetries:        3,
			InitialDelay:      200 * time.Millisecond,
			MaxDelay:          5 * time.Second,
			BackoffMultiplier: 2.0,
		},
	}
}

// Client talks to the search platform backend REST api
type Client struct {
	config  Config
	http    *http.Client
	limiter *rate.Limiter
}

func New(config Config) *Client {
	def := DefaultConfig()
	if config.Timeout == 0 {
		config.Timeout = def.Timeout
	}
	if config.RateLimit == 0 {
		config.RateLimit = def.RateLimit
	}
	if config.RateBurst == 0 {
		config.RateBurst = def.RateBurst
	}
	if config.Retry.BackoffMultiplier == 0 {
		config.Retry.BackoffMultiplier = def.Retry.BackoffMultiplier
	}
	if config.Retry.MaxDelay == 0 {
		config.Retry.MaxDelay = def.Retry.MaxDelay
	}
	return &Client{
		config: config,
		http: &http.Client{
			Timeout:   config.Timeout,
			Transport: config.Transport,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), config.RateBurst),
	}
}

// StatusError is returned for non-2xx backend responses
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// Is lets callers test backend failures against the resource sentinels
func (e *StatusError) Is(target error) bool {
	switch target {
	case resource.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case resource.ErrAlreadyExists:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

// do sends a JSON request and decodes a JSON response into out when out is not nil.
// POST creates something on the backend, so it is only repeated when the
// connection could not be made.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	return c.send(ctx, method, path, in, out, method != http.MethodPost)
}

// replace posts a whole document that overwrites the previous one, which is
// safe to repeat
func (c *Client) replace(ctx context.Context, path string, in interface{}) error {
	return c.send(ctx, http.MethodPost, path, in, nil, true)
}

func (c *Client) send(ctx context.Context, method, path string, in, out interface{}, idempotent bool) error {
	var body []byte
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = buf
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.Retry.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff(attempt)):
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		respBody, err := c.doOnce(ctx, method, path, body)
		if err == nil {
			if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("decode %s %s response: %w", method, path, err)
			}
			return nil
		}
		lastErr = err
		if !retryable(ctx, err) || (!idempotent && !dialFailed(err)) {
			return err
		}
	}
	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) doOnce(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}
	return respBody, nil
}

// backoff returns the delay before the given retry attempt
func (c *Client) backoff(attempt int) time.Duration {
	retry := c.config.Retry
	delay := time.Duration(float64(retry.InitialDelay) * math.Pow(retry.BackoffMultiplier, float64(attempt-1)))
	if delay > retry.MaxDelay {
		delay = retry.MaxDelay
	}
	return delay
}

// retryable reports whether a failed attempt may succeed when repeated:
// transport failures and 5xx responses.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}
	return true
}

// dialFailed reports whether the request never reached the backend
func dialFailed(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// errorMessage pulls a human readable message out of an error body
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}
