package sheets

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ranjidha/myHealth/internal/model"
)

func TestFetchLogsParsesPublishedCSV(t *testing.T) {
	t.Parallel()

	csvBody := "date,weight_lbs,surya_namaskar\n2024-01-05,180.2,12\n2024-01-03,,nan\n"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("expected a User-Agent header")
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csvBody))
	}))
	defer ts.Close()

	client := &Client{URL: ts.URL, HTTPClient: ts.Client()}
	logs, raw, err := client.FetchLogs(context.Background())
	if err != nil {
		t.Fatalf("fetch logs: %v", err)
	}
	if string(raw) != csvBody {
		t.Fatalf("raw payload mismatch: %q", raw)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(logs))
	}
	if !logs[0].Date.Equal(model.NewDate(2024, time.January, 3)) {
		t.Fatalf("expected ascending order, first = %s", logs[0].Date)
	}
	if logs[1].WeightLbs == nil || *logs[1].WeightLbs != 180.2 {
		t.Fatalf("expected weight 180.2, got %v", logs[1].WeightLbs)
	}
}

func TestFetchLogsFailsOnNonSuccessStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := &Client{URL: ts.URL, HTTPClient: ts.Client()}
	if _, _, err := client.FetchLogs(context.Background()); err == nil {
		t.Fatalf("expected error for 503 response")
	}
}

func TestFetchLogsFailsOnMalformedCSV(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("date,notes\n2024-01-01,\"unterminated\n"))
	}))
	defer ts.Close()

	client := &Client{URL: ts.URL, HTTPClient: ts.Client()}
	_, raw, err := client.FetchLogs(context.Background())
	if err == nil {
		t.Fatalf("expected decode error for malformed csv")
	}
	if !bytes.Contains(raw, []byte("unterminated")) {
		t.Fatalf("expected raw body returned alongside decode error")
	}
}

func TestFetchLogsRequiresURL(t *testing.T) {
	t.Parallel()

	client := &Client{}
	if _, _, err := client.FetchLogs(context.Background()); err == nil {
		t.Fatalf("expected error for missing url")
	}
}
