package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"shelby-dashboard/internal/config"
)

const (
	// maxFetchAttempts bounds the retry loop for rate-limited responses.
	// Only HTTP 429 is retried; every other failure is surfaced immediately.
	maxFetchAttempts = 3

	defaultRetryBackoff = time.Second
)

var (
	ErrNotConfigured = errors.New("spreadsheet access is not configured")
	ErrRateLimited   = errors.New("spreadsheet service rate limited the request")
	ErrSheetNotFound = errors.New("sheet not found")
)

// valuesResponse mirrors the Sheets v4 values API payload
type valuesResponse struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// spreadsheetResponse mirrors the Sheets v4 spreadsheet metadata payload,
// trimmed to the fields the dashboard needs
type spreadsheetResponse struct {
	Sheets []struct {
		Properties struct {
			Title string `json:"title"`
		} `json:"properties"`
	} `json:"sheets"`
}

// Client fetches rows through the Google Sheets v4 values REST API
type Client struct {
	httpClient    *http.Client
	baseURL       string
	spreadsheetID string
	apiKey        string
	retryBackoff  time.Duration
}

func NewClient(cfg config.Sheets) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:       cfg.BaseURL,
		spreadsheetID: cfg.SpreadsheetID,
		apiKey:        cfg.APIKey,
		retryBackoff:  defaultRetryBackoff,
	}
}

// FetchRows fetches the full value range of a sheet tab.
// A missing "values" field (empty sheet) yields an empty slice.
func (c *Client) FetchRows(ctx context.Context, sheetName string) ([][]string, error) {
	if c.spreadsheetID == "" || c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.PathEscape(sheetName),
		url.QueryEscape(c.apiKey))

	body, err := c.getWithRetry(ctx, endpoint, sheetName)
	if err != nil {
		return nil, err
	}

	var payload valuesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding values response for %q: %w", sheetName, err)
	}

	return payload.Values, nil
}

// SheetNames lists the spreadsheet's tab titles
func (c *Client) SheetNames(ctx context.Context) ([]string, error) {
	if c.spreadsheetID == "" || c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s?key=%s",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.QueryEscape(c.apiKey))

	body, err := c.getWithRetry(ctx, endpoint, "spreadsheet metadata")
	if err != nil {
		return nil, err
	}

	var payload spreadsheetResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding spreadsheet metadata: %w", err)
	}

	names := make([]string, 0, len(payload.Sheets))
	for _, sheet := range payload.Sheets {
		names = append(names, sheet.Properties.Title)
	}

	return names, nil
}

// getWithRetry performs a GET, retrying only on HTTP 429 with a fixed
// incremental backoff. Non-200 responses other than 429 fail immediately.
func (c *Client) getWithRetry(ctx context.Context, endpoint, what string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * c.retryBackoff):
			}
		}

		body, status, err := c.get(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", what, err)
		}

		switch {
		case status == http.StatusOK:
			return body, nil
		case status == http.StatusTooManyRequests:
			slog.Warn("sheets API rate limited, retrying",
				"what", what,
				"attempt", attempt,
				"max_attempts", maxFetchAttempts)
			lastErr = ErrRateLimited
		case status == http.StatusNotFound:
			return nil, fmt.Errorf("fetching %s: %w", what, ErrSheetNotFound)
		default:
			return nil, fmt.Errorf("fetching %s: unexpected status %d", what, status)
		}
	}

	return nil, fmt.Errorf("fetching %s after %d attempts: %w", what, maxFetchAttempts, lastErr)
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return body, resp.StatusCode, nil
}
