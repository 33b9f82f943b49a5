package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// LookupResult is the response of a registration-lookup query: suspicious
// domains recently registered around the queried keyword.
type LookupResult struct {
	Domains []string `json:"domains"`
}

// LookupClient queries the newly-registered-domain API, one request per
// watched domain. Requests carry a bounded timeout so a stalled request
// cannot stall the poll pass.
type LookupClient struct {
	baseURL string
	client  *http.Client
}

// NewLookupClient creates a lookup client for the given API base URL
func NewLookupClient(baseURL string, timeout time.Duration) *LookupClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &LookupClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Lookup fetches suspicious registrations for a single watched domain.
// Any non-2xx response is an error; the caller decides what a failure
// means for the pass and the quota.
func (c *LookupClient) Lookup(ctx context.Context, domain string) (*LookupResult, error) {
	reqURL := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(domain))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", domain, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", domain, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("lookup %s: unexpected status %d", domain, resp.StatusCode)
	}

	var res LookupResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode lookup response for %s: %w", domain, err)
	}

	return &res, nil
}
