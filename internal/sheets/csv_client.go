package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"shelby-dashboard/internal/config"
)

// CSVClient fetches rows through the spreadsheet's CSV export URLs.
// It needs a configured sheet-name to gid mapping because the export
// endpoint addresses tabs by gid, not by title.
type CSVClient struct {
	httpClient    *http.Client
	baseURL       string
	spreadsheetID string
	gids          map[string]string
	retryBackoff  time.Duration
}

func NewCSVClient(cfg config.Sheets) *CSVClient {
	return &CSVClient{
		httpClient:    &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:       cfg.CSVBaseURL,
		spreadsheetID: cfg.SpreadsheetID,
		gids:          cfg.GIDs,
		retryBackoff:  defaultRetryBackoff,
	}
}

// FetchRows downloads and parses the CSV export of a sheet tab
func (c *CSVClient) FetchRows(ctx context.Context, sheetName string) ([][]string, error) {
	if c.spreadsheetID == "" {
		return nil, ErrNotConfigured
	}

	gid, ok := c.gids[sheetName]
	if !ok {
		return nil, fmt.Errorf("no gid configured for sheet %q: %w", sheetName, ErrSheetNotFound)
	}

	endpoint := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.QueryEscape(gid))

	body, err := c.getWithRetry(ctx, endpoint, sheetName)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(body))
	// Spreadsheet rows routinely have trailing blanks trimmed away
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV export for %q: %w", sheetName, err)
	}

	return rows, nil
}

// SheetNames returns the configured tab names. The CSV export endpoint has
// no metadata call, so the gid map is the source of truth in this mode.
func (c *CSVClient) SheetNames(ctx context.Context) ([]string, error) {
	if c.spreadsheetID == "" {
		return nil, ErrNotConfigured
	}

	names := make([]string, 0, len(c.gids))
	for name := range c.gids {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (c *CSVClient) getWithRetry(ctx context.Context, endpoint, sheetName string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * c.retryBackoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching CSV export for %q: %w", sheetName, err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, readErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			return body, nil
		case http.StatusTooManyRequests:
			lastErr = ErrRateLimited
		case http.StatusNotFound:
			return nil, fmt.Errorf("fetching CSV export for %q: %w", sheetName, ErrSheetNotFound)
		default:
			return nil, fmt.Errorf("fetching CSV export for %q: unexpected status %d", sheetName, resp.StatusCode)
		}
	}

	return nil, fmt.Errorf("fetching CSV export for %q after %d attempts: %w", sheetName, maxFetchAttempts, lastErr)
}
