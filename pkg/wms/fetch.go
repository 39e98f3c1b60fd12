package wms

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FetchFunc retrieves the document at url and returns its body for reading.
// The client performs exactly one fetch per construction attempt and closes
// the returned stream once the document is loaded, on success and failure
// alike. Substituting a custom FetchFunc is how callers add authentication,
// caching or retry behavior; this layer has no retry policy of its own.
type FetchFunc func(ctx context.Context, url string) (io.ReadCloser, error)

const defaultUserAgent = "mapsui-wms-client/1.0"

// newHTTPFetcher returns the default FetchFunc: a plain HTTP GET with the
// given client, failing on any non-2xx status so that HTML error pages are
// never handed to the XML parser.
func newHTTPFetcher(client *http.Client, userAgent string) FetchFunc {
	return func(ctx context.Context, url string) (io.ReadCloser, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/xml")
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return resp.Body, nil
	}
}
