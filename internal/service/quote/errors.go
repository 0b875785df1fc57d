package quote

import (
	"errors"
	"fmt"
)

// ErrMissingSymbol signals local validation failure; no network call is made.
var ErrMissingSymbol = errors.New("stock symbol is required")

// NotFoundError means the upstream confirmed the symbol does not exist.
type NotFoundError struct {
	Symbol string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("symbol %q not found - try a valid ticker like AAPL, TSLA, or SPY", e.Symbol)
}

// UpstreamError wraps any provider or network failure.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "failed to fetch stock data"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
