package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"scanner/customerrors"
	"scanner/model"
)

type ExportService interface {
	Export(result *model.ScanResult, format model.ExportFormat) ([]byte, string, error)
}

type ExportServiceImpl struct{}

func NewExportService() ExportService {
	return &ExportServiceImpl{}
}

// Export serializes a scan result. Returns the payload and its content
// type. Rows come out sorted by file then symbol so exports are stable
// across runs.
func (s *ExportServiceImpl) Export(result *model.ScanResult, format model.ExportFormat) ([]byte, string, error) {
	switch format {
	case model.ExportCSV:
		data, err := exportCSV(result)
		return data, "text/csv", err
	case model.ExportJSON:
		data, err := exportJSON(result)
		return data, "application/json", err
	case model.ExportTXT:
		return exportTXT(result), "text/plain", nil
	default:
		return nil, "", fmt.Errorf("%w: %s", customerrors.ErrUnknownExportFormat, format)
	}
}

type exportRow struct {
	File   string
	Symbol string
	Signal string
}

func flatten(result *model.ScanResult) []exportRow {
	var rows []exportRow
	for _, fileName := range SortedFileNames(result) {
		fileAlerts := result.Files[fileName]

		symbols := make([]string, 0, len(fileAlerts))
		for symbol := range fileAlerts {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)

		for _, symbol := range symbols {
			for _, alert := range fileAlerts[symbol] {
				rows = append(rows, exportRow{File: fileName, Symbol: symbol, Signal: alert.Signal})
			}
		}
	}
	return rows
}

func exportCSV(result *model.ScanResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"File", "Stock", "Signal"}); err != nil {
		return nil, err
	}
	for _, row := range flatten(result) {
		if err := writer.Write([]string{row.File, row.Symbol, row.Signal}); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportJSON(result *model.ScanResult) ([]byte, error) {
	// file -> symbol -> alert strings, mirroring the dashboard grouping
	out := make(map[string]map[string][]string, len(result.Files))
	for fileName, fileAlerts := range result.Files {
		group := make(map[string][]string, len(fileAlerts))
		for symbol, alerts := range fileAlerts {
			signals := make([]string, 0, len(alerts))
			for _, alert := range alerts {
				signals = append(signals, alert.Signal)
			}
			group[symbol] = signals
		}
		out[fileName] = group
	}
	return json.MarshalIndent(out, "", "  ")
}

func exportTXT(result *model.ScanResult) []byte {
	var sb strings.Builder
	for _, row := range flatten(result) {
		sb.WriteString(row.File)
		sb.WriteString(" | ")
		sb.WriteString(row.Symbol)
		sb.WriteString(" | ")
		sb.WriteString(row.Signal)
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}
