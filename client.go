package veria

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Defaults applied by NewClient when Config leaves them unset.
const (
	DefaultBaseURL = "https://api.veria.cc"
	DefaultTimeout = 30 * time.Second
)

// Config holds the Veria client configuration.
type Config struct {
	APIKey     string        // Required. Get one at https://protocol.veria.cc
	BaseURL    string        // API endpoint (default: https://api.veria.cc)
	Timeout    time.Duration // Request timeout (default: 30s)
	HTTPClient *http.Client  // Custom HTTP client (optional)
}

// Client is the Veria client for screening addresses. It is safe for
// concurrent use; each Screen call is an independent round trip sharing only
// the configuration and the underlying connection pool.
type Client struct {
	config     Config
	httpClient *http.Client
	closed     atomic.Bool
}

// NewClient creates a new Veria client. It fails if no API key is configured
// and opens no network connection until the first Screen call.
func NewClient(config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, newError(ErrConfiguration, CodeInvalidConfig, "API key is required")
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}, nil
}

type screenRequest struct {
	Input string `json:"input"`
}

// Screen screens a wallet address, ENS name, or IBAN for compliance risk.
// It either returns a fully populated ScreenResult or a *Error carrying a
// stable code; it never returns a partial result.
func (c *Client) Screen(ctx context.Context, input string) (*ScreenResult, error) {
	if c.closed.Load() {
		return nil, newError(ErrClientClosed, CodeClientClosed, "client is closed")
	}
	if input == "" {
		return nil, newError(ErrValidation, CodeInvalidInput, "input is required")
	}

	bodyBytes, err := json.Marshal(screenRequest{Input: input})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v1/screen", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "veria-go/"+Version)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp.StatusCode, respBody)
	}

	var result ScreenResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		e := newError(ErrService, CodeServiceError, "malformed response body")
		e.StatusCode = resp.StatusCode
		return nil, e
	}

	return &result, nil
}

// transportError classifies a round-trip failure: deadline expiry is TIMEOUT,
// anything else is NETWORK_ERROR.
func transportError(err error) *Error {
	if isTimeout(err) {
		return newError(ErrTimeout, CodeTimeout, "request timed out")
	}
	return newError(ErrConnection, CodeNetworkError, err.Error())
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Close releases the client's pooled connections. It is idempotent; any
// Screen call after Close fails with CLIENT_CLOSED.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.httpClient.CloseIdleConnections()
	return nil
}
