package model

import "time"

// Candle is one daily OHLC bar. Series are ordered by Timestamp ascending
// with unique timestamps; the core never mutates them.
type Candle struct {
	Symbol    string    `json:"symbol"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
	Timestamp time.Time `json:"timestamp"`
}
