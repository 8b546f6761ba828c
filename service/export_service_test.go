package service_test

import (
	"encoding/json"
	"strings"
	"testing"

	"scanner/customerrors"
	"scanner/model"
	"scanner/service"
)

func sampleResult() *model.ScanResult {
	return &model.ScanResult{
		Files: map[string]model.FileAlerts{
			"NIFTY50": {
				"TCS":      {{Symbol: "TCS", Signal: "[1D] TCS @ 20-Aug-2026 | Rs.4100.00 (Depth: 0.42%)"}},
				"RELIANCE": {{Symbol: "RELIANCE", Signal: "[1D] RELIANCE @ 21-Aug-2026 | Rs.2890.50 (Depth: 1.05%)"}},
			},
			"BANKNIFTY": {
				"HDFCBANK": {{Symbol: "HDFCBANK", Signal: "[1D] HDFCBANK @ 22-Aug-2026 | Rs.1650.25 (Depth: 0.88%)"}},
			},
		},
		TotalSignals: 3,
		TotalStocks:  3,
		TotalFiles:   2,
	}
}

func TestExport_CSV(t *testing.T) {
	data, contentType, err := service.NewExportService().Export(sampleResult(), model.ExportCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "text/csv" {
		t.Errorf("unexpected content type %q", contentType)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines:\n%s", len(lines), data)
	}
	if lines[0] != "File,Stock,Signal" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	// files then symbols in sorted order
	if !strings.HasPrefix(lines[1], "BANKNIFTY,HDFCBANK,") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "NIFTY50,RELIANCE,") || !strings.HasPrefix(lines[3], "NIFTY50,TCS,") {
		t.Errorf("rows not sorted by file then symbol: %q / %q", lines[2], lines[3])
	}
}

func TestExport_JSON(t *testing.T) {
	data, contentType, err := service.NewExportService().Export(sampleResult(), model.ExportJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "application/json" {
		t.Errorf("unexpected content type %q", contentType)
	}

	var out map[string]map[string][]string
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 file groups, got %d", len(out))
	}
	signals := out["NIFTY50"]["RELIANCE"]
	if len(signals) != 1 || !strings.Contains(signals[0], "RELIANCE") {
		t.Errorf("unexpected NIFTY50/RELIANCE signals: %v", signals)
	}
}

func TestExport_TXT(t *testing.T) {
	data, contentType, err := service.NewExportService().Export(sampleResult(), model.ExportTXT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "text/plain" {
		t.Errorf("unexpected content type %q", contentType)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), data)
	}
	for _, line := range lines {
		if strings.Count(line, " | ") < 2 {
			t.Errorf("line missing 'file | stock | signal' shape: %q", line)
		}
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, _, err := service.NewExportService().Export(sampleResult(), model.ExportFormat("xml"))
	if err == nil || !strings.Contains(err.Error(), customerrors.ErrUnknownExportFormat.Error()) {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}
