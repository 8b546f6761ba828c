package customerrors

import "errors"

var (
	ErrEmptySeries         = errors.New("no price data returned for symbol")
	ErrWatchlistNotFound   = errors.New("watchlist file not found")
	ErrInvalidWatchlist    = errors.New("invalid watchlist file name")
	ErrNoScanResult        = errors.New("no scan has been run yet")
	ErrUnknownExportFormat = errors.New("unknown export format")
)
