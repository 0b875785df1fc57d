package quote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newStub(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-agent", 5*time.Second)
}

func TestFetchEmptySymbol(t *testing.T) {
	called := false
	c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	if _, err := c.Fetch(context.Background(), "   "); !errors.Is(err, ErrMissingSymbol) {
		t.Fatalf("expected ErrMissingSymbol, got %v", err)
	}
	if called {
		t.Fatalf("empty symbol must not hit the network")
	}
}

func TestFetchSuccess(t *testing.T) {
	c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/v8/finance/chart/AAPL") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"regularMarketPrice":150,"previousClose":100,"currency":"USD"}}]}}`))
	})

	q, err := c.Fetch(context.Background(), "aapl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Symbol != "AAPL" {
		t.Fatalf("symbol not upper-cased: %q", q.Symbol)
	}
	if q.Change != 50.00 {
		t.Fatalf("change = %v, want 50.00", q.Change)
	}
	if q.ChangePercent != 50.00 {
		t.Fatalf("changePercent = %v, want 50.00", q.ChangePercent)
	}
}

func TestFetchChartPreviousCloseFallback(t *testing.T) {
	c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"regularMarketPrice":110,"chartPreviousClose":100}}]}}`))
	})

	q, err := c.Fetch(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.PreviousClose != 100 {
		t.Fatalf("previousClose = %v, want 100", q.PreviousClose)
	}
	if q.Change != 10.00 || q.ChangePercent != 10.00 {
		t.Fatalf("change %v / pct %v", q.Change, q.ChangePercent)
	}
	if q.Currency != "USD" {
		t.Fatalf("currency default missing: %q", q.Currency)
	}
}

func TestFetchNotFound(t *testing.T) {
	c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":[]}}`))
	})

	_, err := c.Fetch(context.Background(), "NOPE123")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !strings.Contains(nf.Error(), "AAPL") {
		t.Fatalf("not-found message should suggest example symbols: %q", nf.Error())
	}
}

func TestFetchUpstreamFailure(t *testing.T) {
	c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Fetch(context.Background(), "AAPL")
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}
