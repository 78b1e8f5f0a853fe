package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"shelby-dashboard/internal/config"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ClientTestSuite) newClient(serverURL string) *Client {
	client := NewClient(config.Sheets{
		SpreadsheetID:  "sheet-123",
		APIKey:         "key-abc",
		BaseURL:        serverURL,
		RequestTimeout: 5 * time.Second,
	})
	client.retryBackoff = time.Millisecond
	return client
}

func (s *ClientTestSuite) TestFetchRows_Success() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Contains(r.URL.Path, "/v4/spreadsheets/sheet-123/values/")
		s.Equal("key-abc", r.URL.Query().Get("key"))
		fmt.Fprint(w, `{"range":"A1:D3","majorDimension":"ROWS","values":[["Date","Event","Count","Hours"],["2025-03-01","Invasive Removal","45","120"]]}`)
	}))
	defer server.Close()

	rows, err := s.newClient(server.URL).FetchRows(s.ctx, "Volunteer Participation Trends")

	s.NoError(err)
	s.Len(rows, 2)
	s.Equal("Invasive Removal", rows[1][1])
}

func (s *ClientTestSuite) TestFetchRows_EmptySheet() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// an empty sheet has no "values" field at all
		fmt.Fprint(w, `{"range":"A1:A1","majorDimension":"ROWS"}`)
	}))
	defer server.Close()

	rows, err := s.newClient(server.URL).FetchRows(s.ctx, "Most Popular Events")

	s.NoError(err)
	s.Empty(rows)
}

func (s *ClientTestSuite) TestFetchRows_RetriesOnRateLimit() {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"values":[["Date","Acres"],["2025-01-05","2.5"]]}`)
	}))
	defer server.Close()

	rows, err := s.newClient(server.URL).FetchRows(s.ctx, "Acres Cleaned Timeline")

	s.NoError(err)
	s.Len(rows, 2)
	s.Equal(int32(3), atomic.LoadInt32(&calls))
}

func (s *ClientTestSuite) TestFetchRows_RateLimitExhausted() {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).FetchRows(s.ctx, "Acres Cleaned Timeline")

	s.ErrorIs(err, ErrRateLimited)
	s.Equal(int32(3), atomic.LoadInt32(&calls))
}

func (s *ClientTestSuite) TestFetchRows_NotFound() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).FetchRows(s.ctx, "No Such Sheet")

	s.ErrorIs(err, ErrSheetNotFound)
}

func (s *ClientTestSuite) TestFetchRows_ServerErrorNotRetried() {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).FetchRows(s.ctx, "Volunteer Satisfaction")

	s.Error(err)
	s.Equal(int32(1), atomic.LoadInt32(&calls))
}

func (s *ClientTestSuite) TestFetchRows_NotConfigured() {
	client := NewClient(config.Sheets{RequestTimeout: time.Second})

	_, err := client.FetchRows(s.ctx, "Volunteer Participation Trends")

	s.ErrorIs(err, ErrNotConfigured)
}

func (s *ClientTestSuite) TestSheetNames_Success() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v4/spreadsheets/sheet-123", r.URL.Path)
		fmt.Fprint(w, `{"sheets":[{"properties":{"title":"Volunteer Participation Trends"}},{"properties":{"title":"Acres Cleaned Timeline"}}]}`)
	}))
	defer server.Close()

	names, err := s.newClient(server.URL).SheetNames(s.ctx)

	s.NoError(err)
	s.Equal([]string{"Volunteer Participation Trends", "Acres Cleaned Timeline"}, names)
}

func (s *ClientTestSuite) TestSheetNames_MalformedJSON() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"sheets": [`)
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).SheetNames(s.ctx)

	s.Error(err)
}

type CSVClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestCSVClientTestSuite(t *testing.T) {
	suite.Run(t, new(CSVClientTestSuite))
}

func (s *CSVClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *CSVClientTestSuite) newClient(serverURL string) *CSVClient {
	client := NewCSVClient(config.Sheets{
		SpreadsheetID:  "sheet-123",
		CSVBaseURL:     serverURL,
		RequestTimeout: 5 * time.Second,
		GIDs: map[string]string{
			"Acres Cleaned Timeline":         "1807719",
			"Volunteer Participation Trends": "0",
		},
	})
	client.retryBackoff = time.Millisecond
	return client
}

func (s *CSVClientTestSuite) TestFetchRows_Success() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/spreadsheets/d/sheet-123/export", r.URL.Path)
		s.Equal("csv", r.URL.Query().Get("format"))
		s.Equal("1807719", r.URL.Query().Get("gid"))
		fmt.Fprint(w, "Date,Acres Cleaned\n2025-01-05,2.5\n\"2025-02-10\",\"3.75\"\n")
	}))
	defer server.Close()

	rows, err := s.newClient(server.URL).FetchRows(s.ctx, "Acres Cleaned Timeline")

	s.NoError(err)
	s.Len(rows, 3)
	s.Equal([]string{"2025-02-10", "3.75"}, rows[2])
}

func (s *CSVClientTestSuite) TestFetchRows_VariableFieldCounts() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Date,Event,Count,Hours\n2025-03-01,Cleanup\n2025-03-02,Planting,12,30\n")
	}))
	defer server.Close()

	rows, err := s.newClient(server.URL).FetchRows(s.ctx, "Volunteer Participation Trends")

	s.NoError(err)
	s.Len(rows, 3)
	s.Len(rows[1], 2)
	s.Len(rows[2], 4)
}

func (s *CSVClientTestSuite) TestFetchRows_UnknownGID() {
	client := s.newClient("http://127.0.0.1:0")

	_, err := client.FetchRows(s.ctx, "Survey Response Details")

	s.ErrorIs(err, ErrSheetNotFound)
}

func (s *CSVClientTestSuite) TestSheetNames_FromGIDMap() {
	names, err := s.newClient("http://127.0.0.1:0").SheetNames(s.ctx)

	s.NoError(err)
	s.Equal([]string{"Acres Cleaned Timeline", "Volunteer Participation Trends"}, names)
}

func TestNullSource(t *testing.T) {
	source := NewNullSource()

	if _, err := source.FetchRows(context.Background(), "anything"); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := source.SheetNames(context.Background()); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
