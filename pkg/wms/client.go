package wms

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/beevik/etree"
)

// ClientConfig contains configuration for the capabilities client.
type ClientConfig struct {
	// Version is the protocol version hint injected into the request URL.
	// Empty means no VERSION parameter is sent and the server decides.
	Version string

	// Fetch retrieves the capabilities document. If nil, a plain HTTP GET
	// with HTTPClient is used.
	Fetch FetchFunc

	// HTTPClient is used by the default fetcher. If nil, a client with a
	// 30s timeout is used. Ignored when Fetch is set.
	HTTPClient *http.Client

	// UserAgent is the User-Agent header sent by the default fetcher.
	UserAgent string

	// Logger receives diagnostics such as download failures.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Client fetches and parses WMS capabilities documents.
type Client struct {
	config ClientConfig
	fetch  FetchFunc
	logger *slog.Logger
}

// NewClient creates a capabilities client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(ClientConfig{})
}

// NewClientWithConfig creates a capabilities client with custom
// configuration. Zero-value fields fall back to their defaults.
func NewClientWithConfig(config ClientConfig) *Client {
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	fetch := config.Fetch
	if fetch == nil {
		fetch = newHTTPFetcher(config.HTTPClient, config.UserAgent)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		config: config,
		fetch:  fetch,
		logger: logger,
	}
}

// GetCapabilities fetches the capabilities document advertised at serviceURL
// and parses it into an immutable model. The fetch happens exactly once; a
// transport failure is terminal for this attempt and is reported as
// ErrDownloadFailed with the cause wrapped. The response stream is closed on
// every path once the document is loaded.
func (c *Client) GetCapabilities(ctx context.Context, serviceURL string) (*Capabilities, error) {
	reqURL := BuildCapabilitiesRequest(serviceURL, c.config.Version)

	body, err := c.fetch(ctx, reqURL)
	if err != nil {
		c.logger.Warn("capabilities download failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("failed to parse capabilities document: %w", err)
	}

	return ParseCapabilities(doc)
}
