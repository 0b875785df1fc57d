package models

// Quote is a normalized stock quote produced fresh per fetch; never cached.
type Quote struct {
	Symbol        string  `json:"symbol"`
	CurrentPrice  float64 `json:"currentPrice"`
	PreviousClose float64 `json:"previousClose"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	MarketCap     float64 `json:"marketCap,omitempty"`
	Currency      string  `json:"currency"`
}
