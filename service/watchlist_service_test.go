package service_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"scanner/customerrors"
	"scanner/model"
	"scanner/service"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatchlist_ListFiles(t *testing.T) {
	indexDir := t.TempDir()
	writeFile(t, indexDir, "nifty50.csv", "RELIANCE\n")
	writeFile(t, indexDir, "banknifty.csv", "HDFCBANK\n")
	writeFile(t, indexDir, "notes.txt", "ignore me\n")

	svc := service.NewWatchlistService(indexDir, t.TempDir())
	files, err := svc.ListFiles(string(model.ScanIndex))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"banknifty.csv", "nifty50.csv"}) {
		t.Errorf("expected sorted csv files only, got %v", files)
	}
}

func TestWatchlist_LoadTickers(t *testing.T) {
	sectorDir := t.TempDir()
	writeFile(t, sectorDir, "wl_load_test.csv", " RELIANCE \nTCS\n\nRELIANCE\nINFY\n")

	svc := service.NewWatchlistService(t.TempDir(), sectorDir)
	tickers, err := svc.LoadTickers(string(model.ScanSector), "wl_load_test.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(tickers, []string{"RELIANCE", "TCS", "INFY"}) {
		t.Errorf("expected trimmed de-duplicated tickers, got %v", tickers)
	}
}

func TestWatchlist_RejectsPathTraversal(t *testing.T) {
	svc := service.NewWatchlistService(t.TempDir(), t.TempDir())
	_, err := svc.LoadTickers(string(model.ScanIndex), "../secrets.csv")
	if !errors.Is(err, customerrors.ErrInvalidWatchlist) {
		t.Fatalf("expected invalid watchlist error, got %v", err)
	}
}

func TestWatchlist_MissingFile(t *testing.T) {
	svc := service.NewWatchlistService(t.TempDir(), t.TempDir())
	_, err := svc.LoadTickers(string(model.ScanIndex), "wl_missing_test.csv")
	if !errors.Is(err, customerrors.ErrWatchlistNotFound) {
		t.Fatalf("expected watchlist not found error, got %v", err)
	}
}

func TestWatchlist_UnknownScanType(t *testing.T) {
	svc := service.NewWatchlistService(t.TempDir(), t.TempDir())
	if _, err := svc.ListFiles("WEEKLY"); err == nil {
		t.Fatal("expected an error for an unknown scan type")
	}
}
