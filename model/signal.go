package model

import "time"

// GrabEvent is one detected liquidity grab: the bar's wick pierced a prior
// swing low but its body closed back above it.
type GrabEvent struct {
	BarIndex   int       `json:"barIndex"`
	Timestamp  time.Time `json:"timestamp"`
	SwingIndex int       `json:"swingIndex"`
	SwingLow   float64   `json:"swingLow"`
	Depth      float64   `json:"depth"`
	Close      float64   `json:"close"`
}

// Alert is the display row built from a GrabEvent for one symbol.
type Alert struct {
	Symbol    string    `json:"symbol"`
	Timestamp time.Time `json:"timestamp"`
	Close     float64   `json:"close"`
	Depth     float64   `json:"depth"`
	Signal    string    `json:"signal" example:"[1D] RELIANCE @ 12-Aug-2026 | Rs.2890.50 (Depth: 1.05%)"`
}

// FileAlerts groups alerts by symbol within one watchlist file.
type FileAlerts map[string][]Alert

// ScanResult is the aggregate of one batch scan across watchlist files.
type ScanResult struct {
	Files        map[string]FileAlerts `json:"files"`
	TotalSignals int                   `json:"totalSignals"`
	TotalStocks  int                   `json:"totalStocks"`
	TotalFiles   int                   `json:"totalFiles"`
	Warnings     []string              `json:"warnings,omitempty"`
	GeneratedAt  time.Time             `json:"generatedAt"`
}
