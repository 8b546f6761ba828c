package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	localCache "scanner/cache"
	"scanner/config"
	"scanner/model"
	"scanner/pattern"
	"scanner/util"
)

// SeriesFetcher supplies a daily price series per symbol. Satisfied by
// client.YahooClient.
type SeriesFetcher interface {
	GetDailySeries(ctx context.Context, symbol string, timeRange model.YahooTimeRange) ([]model.Candle, error)
}

type ScanService interface {
	Run(ctx context.Context, request model.ScanRequest) (*model.ScanResult, error)
}

type ScanServiceImpl struct {
	fetcher    SeriesFetcher
	watchlists WatchlistService
	cfg        *config.SystemConfigs
}

func NewScanService(fetcher SeriesFetcher, watchlists WatchlistService, cfg *config.SystemConfigs) ScanService {
	return &ScanServiceImpl{
		fetcher:    fetcher,
		watchlists: watchlists,
		cfg:        cfg,
	}
}

// Run scans every requested watchlist file and collects liquidity-grab
// alerts from the last request.Days days. One bad ticker or file never
// aborts the batch; failures become warnings and the scan moves on.
func (s *ScanServiceImpl) Run(ctx context.Context, request model.ScanRequest) (*model.ScanResult, error) {
	classifier := pattern.Classifier{
		SwingLeft:       request.SwingLeft,
		SwingRight:      request.SwingRight,
		MinDepthPercent: request.MinDepthPercent,
		LookbackBars:    request.LookbackBars,
	}
	cutoff := time.Now().AddDate(0, 0, -request.Days)

	result := &model.ScanResult{
		Files:       make(map[string]model.FileAlerts),
		GeneratedAt: time.Now(),
	}

	for _, fileName := range request.Files {
		tickers, err := s.watchlists.LoadTickers(request.ScanType, fileName)
		if err != nil {
			log.Warn().Err(err).Str("file", fileName).Msg("Skipping watchlist file")
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", fileName, err))
			continue
		}

		fileAlerts := s.scanFile(ctx, tickers, classifier, cutoff)
		if len(fileAlerts) > 0 {
			result.Files[displayName(fileName)] = fileAlerts
		}
	}

	for _, fileAlerts := range result.Files {
		result.TotalStocks += len(fileAlerts)
		for _, alerts := range fileAlerts {
			result.TotalSignals += len(alerts)
		}
	}
	result.TotalFiles = len(result.Files)

	localCache.SetLastScan(result)
	return result, nil
}

// scanFile fans tickers out to a bounded worker pool. Each worker only
// reads its own series and writes its alerts under the mutex, so workers
// never share state.
func (s *ScanServiceImpl) scanFile(ctx context.Context, tickers []string, classifier pattern.Classifier, cutoff time.Time) model.FileAlerts {
	workers := s.cfg.Config.ScanWorkers
	if workers < 1 {
		workers = 1
	}

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		sem        = make(chan struct{}, workers)
		fileAlerts = make(model.FileAlerts)
	)

	for _, ticker := range tickers {
		wg.Add(1)
		sem <- struct{}{}
		go func(symbol string) {
			defer wg.Done()
			defer func() { <-sem }()

			alerts, err := s.scanTicker(ctx, symbol, classifier)
			if err != nil {
				log.Warn().Err(err).Str("symbol", symbol).Msg("Skipping ticker")
				return
			}

			var recent []model.Alert
			for _, alert := range alerts {
				if !alert.Timestamp.Before(cutoff) {
					recent = append(recent, alert)
				}
			}
			if len(recent) == 0 {
				return
			}

			mu.Lock()
			fileAlerts[symbol] = recent
			mu.Unlock()
		}(ticker)
	}
	wg.Wait()

	return fileAlerts
}

func (s *ScanServiceImpl) scanTicker(ctx context.Context, symbol string, classifier pattern.Classifier) ([]model.Alert, error) {
	series, err := s.fetcher.GetDailySeries(ctx, symbol, model.YahooTimeRange(s.cfg.Config.Period))
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, nil
	}

	swings := pattern.FindSwingLows(series, classifier.SwingLeft, classifier.SwingRight)
	events := classifier.Classify(series, swings)

	alerts := make([]model.Alert, 0, len(events))
	for _, event := range events {
		var alert model.Alert
		copier.Copy(&alert, &event)
		alert.Symbol = symbol
		alert.Signal = FormatAlert(symbol, event)
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

// FormatAlert renders the dashboard alert line for one event.
func FormatAlert(symbol string, event model.GrabEvent) string {
	return fmt.Sprintf("[1D] %s @ %s | Rs.%.2f (Depth: %.2f%%)",
		symbol, util.FormatAlertDate(event.Timestamp), event.Close, event.Depth)
}

// displayName strips the .csv suffix and upper-cases, matching how scan
// results label their file groups.
func displayName(fileName string) string {
	return strings.ToUpper(strings.TrimSuffix(fileName, ".csv"))
}

// SortedFileNames returns a result's file labels in stable display order.
func SortedFileNames(result *model.ScanResult) []string {
	names := make([]string, 0, len(result.Files))
	for name := range result.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
