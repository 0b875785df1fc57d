package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mockshot/internal/domain/models"
	xhttp "mockshot/pkg/http"
	"mockshot/pkg/util"
)

// Client fetches quotes from the Yahoo Finance chart API. One attempt per
// call, no caching; every invocation hits the network.
type Client struct {
	baseURL   string
	userAgent string
	http      *xhttp.Client
}

// New creates a quote client against the given chart API base URL.
func New(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type chartMeta struct {
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	PreviousClose      float64 `json:"previousClose"`
	ChartPreviousClose float64 `json:"chartPreviousClose"`
	MarketCap          float64 `json:"marketCap"`
	Currency           string  `json:"currency"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta chartMeta `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch normalizes one quote. Empty symbols are rejected before any I/O.
func (c *Client) Fetch(ctx context.Context, symbol string) (*models.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrMissingSymbol
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, symbol)
	var body chartResponse
	resp, err := c.http.SendRequest(ctx, &xhttp.RequestOptions{
		Method:      http.MethodGet,
		URL:         url,
		Headers:     map[string]string{"User-Agent": c.userAgent},
		QueryParams: map[string][]string{"interval": {"1d"}, "range": {"1d"}},
	})
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &NotFoundError{Symbol: symbol}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &UpstreamError{Message: fmt.Sprintf("quote provider returned status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &UpstreamError{Err: err}
	}
	if body.Chart.Error != nil {
		if body.Chart.Error.Code == "Not Found" {
			return nil, &NotFoundError{Symbol: symbol}
		}
		return nil, &UpstreamError{Message: body.Chart.Error.Description}
	}
	if len(body.Chart.Result) == 0 {
		return nil, &NotFoundError{Symbol: symbol}
	}

	meta := body.Chart.Result[0].Meta
	prevClose := meta.PreviousClose
	if prevClose == 0 {
		prevClose = meta.ChartPreviousClose
	}
	if meta.RegularMarketPrice == 0 && prevClose == 0 {
		return nil, &NotFoundError{Symbol: symbol}
	}

	change := meta.RegularMarketPrice - prevClose
	changePct := 0.0
	if prevClose != 0 {
		changePct = change / prevClose * 100
	}

	currency := meta.Currency
	if currency == "" {
		currency = "USD"
	}

	return &models.Quote{
		Symbol:        symbol,
		CurrentPrice:  meta.RegularMarketPrice,
		PreviousClose: prevClose,
		Change:        util.Round2(change),
		ChangePercent: util.Round2(changePct),
		MarketCap:     meta.MarketCap,
		Currency:      currency,
	}, nil
}
