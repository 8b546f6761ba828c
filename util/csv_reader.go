package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadTickers parses a watchlist CSV into ticker symbols.
// We use io.Reader so it works with file uploads, local files, or strings.
// Watchlist files are headerless with the symbol in the first column;
// blanks and duplicates are dropped, order is preserved.
func ReadTickers(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var tickers []string
	seen := make(map[string]bool)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv record: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		symbol := strings.TrimSpace(record[0])
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		tickers = append(tickers, symbol)
	}

	return tickers, nil
}
