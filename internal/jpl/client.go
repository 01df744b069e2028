package jpl

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/orbitdata/query-data/internal/errors"
	"github.com/orbitdata/query-data/internal/httpclient"
	"github.com/orbitdata/query-data/internal/logger"
)

const component = "jpl"

// maxErrorBodyPreview bounds how much of an error response is kept
const maxErrorBodyPreview = 500

// Client provides methods for interacting with the JPL SSD APIs.
// Safe for concurrent use.
type Client struct {
	config     Config
	httpClient *httpclient.Client
	limiter    *rate.Limiter
	logger     logger.Logger

	metrics struct {
		requests      int64
		retries       int64
		errors        int64
		totalDuration time.Duration
		mu            sync.RWMutex
	}
}

// decodeFunc consumes a successful response body
type decodeFunc func(body io.Reader) error

// NewClient creates a new JPL API client. A nil httpClient gets a client with
// default settings.
func NewClient(config Config, httpClient *httpclient.Client, log logger.Logger) (*Client, error) {
	defaults := DefaultConfig()
	if config.HorizonsURL == "" {
		config.HorizonsURL = defaults.HorizonsURL
	}
	if config.SBDBURL == "" {
		config.SBDBURL = defaults.SBDBURL
	}
	if config.RateLimit == 0 {
		config.RateLimit = defaults.RateLimit
	}
	if config.RateLimit < 0 {
		return nil, errors.Newf("rate limit must be positive, got %g", config.RateLimit).
			Category(errors.CategoryConfiguration).
			Component(component).
			Build()
	}
	if config.MaxRetries < 0 {
		return nil, errors.Newf("max retries must not be negative, got %d", config.MaxRetries).
			Category(errors.CategoryConfiguration).
			Component(component).
			Build()
	}
	for _, endpoint := range []string{config.HorizonsURL, config.SBDBURL} {
		if _, err := url.ParseRequestURI(endpoint); err != nil {
			return nil, errors.Newf("invalid endpoint %q: %w", endpoint, err).
				Category(errors.CategoryConfiguration).
				Component(component).
				Build()
		}
	}

	if httpClient == nil {
		httpClient = httpclient.New(nil)
	}
	if log == nil {
		log = logger.Global().Module(component)
	}

	c := &Client{
		config:     config,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(config.RateLimit), 1),
		logger:     log,
	}

	c.logger.Debug("JPL client initialized",
		logger.String("horizons_url", config.HorizonsURL),
		logger.String("sbdb_url", config.SBDBURL),
		logger.Float64("rate_limit", config.RateLimit),
		logger.Int("max_retries", config.MaxRetries))

	return c, nil
}

// Close releases idle connections
func (c *Client) Close() {
	c.httpClient.Close()
}

// doRequest performs one rate-limited GET and hands a successful body to decode
func (c *Client) doRequest(ctx context.Context, service, endpoint string, params url.Values, decode decodeFunc) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.New(err).
			Category(errors.CategoryCancellation).
			Context("service", service).
			Component(component).
			Build()
	}

	start := time.Now()
	c.metrics.mu.Lock()
	c.metrics.requests++
	c.metrics.mu.Unlock()

	c.logger.Trace("JPL API request",
		logger.String("service", service),
		logger.String("url", endpoint))

	resp, err := c.httpClient.Get(ctx, endpoint, params)
	if err != nil {
		c.countError()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.New(err).
				Category(errors.CategoryCancellation).
				Context("service", service).
				Component(component).
				Build()
		}
		return errors.Newf("%s request failed: %w", service, err).
			Category(errors.CategoryNetwork).
			Context("service", service).
			NetworkContext(endpoint, c.httpClient.Timeout()).
			Timing(service+"_request", time.Since(start)).
			Component(component).
			Build()
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug("Failed to close response body", logger.Error(err))
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		c.countError()
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyPreview))
		message := apiErrorMessage(preview)

		c.logger.Warn("JPL API error response",
			logger.String("service", service),
			logger.Int("status_code", resp.StatusCode),
			logger.String("message", message))

		return errors.Newf("%s API error (status %d): %s", service, resp.StatusCode, message).
			Category(getErrorCategory(resp.StatusCode)).
			Context("service", service).
			Context("status_code", resp.StatusCode).
			NetworkContext(endpoint, 0).
			Timing(service+"_request", time.Since(start)).
			Component(component).
			Build()
	}

	if err := decode(resp.Body); err != nil {
		c.countError()
		if ctx.Err() != nil {
			return errors.New(err).
				Category(errors.CategoryCancellation).
				Context("service", service).
				Component(component).
				Build()
		}
		var enhanced *errors.EnhancedError
		if errors.As(err, &enhanced) {
			return err
		}
		return errors.Newf("failed to parse %s response: %w", service, err).
			Category(errors.CategoryFileParsing).
			Context("service", service).
			Timing(service+"_decode", time.Since(start)).
			Component(component).
			Build()
	}

	duration := time.Since(start)
	c.metrics.mu.Lock()
	c.metrics.totalDuration += duration
	c.metrics.mu.Unlock()

	c.logger.Debug("JPL API request successful",
		logger.String("service", service),
		logger.Duration("duration", duration))

	return nil
}

// doRequestWithRetry wraps doRequest with retry logic for transient failures.
// Client errors other than 429 and parse failures are returned immediately.
func (c *Client) doRequestWithRetry(ctx context.Context, service, endpoint string, params url.Values, decode decodeFunc) error {
	attempts := c.config.MaxRetries + 1
	var lastErr error

	for attempt := range attempts {
		err := c.doRequest(ctx, service, endpoint, params, decode)
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) || ctx.Err() != nil {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		delay := time.Duration(attempt+1) * c.config.RetryDelay
		c.logger.Warn("JPL API request failed, retrying",
			logger.String("service", service),
			logger.Int("attempt", attempt+1),
			logger.Int("max_retries", c.config.MaxRetries),
			logger.Duration("delay", delay),
			logger.Error(err))

		c.metrics.mu.Lock()
		c.metrics.retries++
		c.metrics.mu.Unlock()

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return errors.New(ctx.Err()).
				Category(errors.CategoryCancellation).
				Context("service", service).
				Component(component).
				Build()
		}
	}

	return lastErr
}

// isRetryable reports whether a failed request may succeed when repeated
func isRetryable(err error) bool {
	var enhanced *errors.EnhancedError
	if !errors.As(err, &enhanced) {
		return true
	}

	switch enhanced.Category {
	case errors.CategoryConfiguration, errors.CategoryNotFound, errors.CategoryValidation,
		errors.CategoryFileParsing, errors.CategoryCancellation:
		return false
	}

	if statusCode, ok := enhanced.GetContext()["status_code"].(int); ok {
		if statusCode >= 400 && statusCode < 500 && statusCode != http.StatusTooManyRequests {
			return false
		}
	}
	return true
}

// getErrorCategory determines the appropriate error category based on HTTP status code
func getErrorCategory(statusCode int) errors.ErrorCategory {
	switch statusCode {
	case http.StatusBadRequest:
		return errors.CategoryValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.CategoryConfiguration
	case http.StatusNotFound:
		return errors.CategoryNotFound
	case http.StatusTooManyRequests:
		return errors.CategoryLimit
	default:
		return errors.CategoryNetwork
	}
}

// apiErrorMessage extracts the message from a JPL error body. Horizons uses
// {"error": ...}, the SBDB {"message": ...}; anything else is returned trimmed.
func apiErrorMessage(body []byte) string {
	if obj, err := parseObject(body); err == nil {
		for _, key := range []string{"error", "message"} {
			if msg, err := obj.GetString(key); err == nil && msg != "" {
				return strings.TrimSpace(msg)
			}
		}
	}
	return strings.TrimSpace(string(body))
}

func (c *Client) countError() {
	c.metrics.mu.Lock()
	c.metrics.errors++
	c.metrics.mu.Unlock()
}

// GetMetrics returns current client metrics
func (c *Client) GetMetrics() Metrics {
	c.metrics.mu.RLock()
	defer c.metrics.mu.RUnlock()

	return Metrics{
		Requests:      c.metrics.requests,
		Retries:       c.metrics.retries,
		Errors:        c.metrics.errors,
		TotalDuration: c.metrics.totalDuration,
	}
}
