// Package sheets fetches a published spreadsheet's CSV export over HTTP.
package sheets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ranjidha/myHealth/internal/logcsv"
	"github.com/ranjidha/myHealth/internal/model"
)

type Client struct {
	URL        string
	HTTPClient *http.Client
}

// FetchLogs downloads the published export and decodes it into the
// canonical collection. The raw payload is returned alongside so the
// caller can snapshot it. Network, status, and decode failures all
// propagate; there is no silent empty-collection fallback.
func (c *Client) FetchLogs(ctx context.Context) ([]model.DailyLog, []byte, error) {
	target := strings.TrimSpace(c.URL)
	if target == "" {
		return nil, nil, fmt.Errorf("sheet url is required")
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create sheet request: %w", err)
	}
	req.Header.Set("User-Agent", "myhealth/1.0 (+https://github.com/ranjidha/myHealth)")
	req.Header.Set("Accept", "text/csv")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("execute sheet request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, body, fmt.Errorf("sheet request failed with status %d", resp.StatusCode)
	}

	logs, err := logcsv.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, body, fmt.Errorf("decode sheet csv: %w", err)
	}
	return logs, body, nil
}
