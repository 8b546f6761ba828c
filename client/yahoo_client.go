package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	gocache "github.com/patrickmn/go-cache"

	localCache "scanner/cache"
	"scanner/customerrors"
	"scanner/database"
	"scanner/middleware"
	"scanner/model"
	"scanner/util"
)

type YahooClient struct {
	client *resty.Client
}

func NewYahooClient() *YahooClient {
	client := resty.New().
		SetBaseURL("https://query1.finance.yahoo.com/v8/finance/chart").
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})

	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &YahooClient{
		client: client,
	}
}

// GetDailySeries fetches the daily candles for an NSE symbol, ascending by
// date. Results are served from the in-process cache first, then Redis
// when configured, and land in both on a fresh fetch.
func (y *YahooClient) GetDailySeries(ctx context.Context, symbol string, timeRange model.YahooTimeRange) ([]model.Candle, error) {
	cacheKey := "yahoo_series_" + symbol + "_" + string(timeRange)
	if cached, found := localCache.SeriesCache.Get(cacheKey); found {
		return cached.([]model.Candle), nil
	}

	var series []model.Candle
	if ok, _ := database.GetAsStruct(cacheKey, &series); ok {
		localCache.SeriesCache.Set(cacheKey, series, gocache.DefaultExpiration)
		return series, nil
	}

	var chartResponse model.YahooChartResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    string(timeRange),
			"interval": string(model.Range1d),
		}).SetResult(&chartResponse).
		Get("/" + symbol + ".NS")

	if err != nil || !resp.IsSuccess() || chartResponse.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo request failed for %s: %v", symbol, err)
	}
	if len(chartResponse.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", customerrors.ErrEmptySeries, symbol)
	}

	result := chartResponse.Chart.Result[0]
	quote := result.Indicators.Quote
	if len(quote) == 0 {
		return nil, fmt.Errorf("%w: %s", customerrors.ErrEmptySeries, symbol)
	}

	series = make([]model.Candle, 0, len(result.Timestamp))
	q := quote[0]
	for i := range result.Timestamp {
		if q.Volume[i] > 0 && q.Open[i] != 0 {
			series = append(series, model.Candle{
				Symbol:    symbol,
				Open:      formatToTwo(q.Open[i]),
				High:      formatToTwo(q.High[i]),
				Low:       formatToTwo(q.Low[i]),
				Close:     formatToTwo(q.Close[i]),
				Volume:    q.Volume[i],
				Timestamp: time.Unix(result.Timestamp[i], 0).In(util.IstLocation),
			})
		}
	}

	if len(series) > 0 {
		localCache.SeriesCache.Set(cacheKey, series, gocache.DefaultExpiration)
		database.SetStruct(cacheKey, series, util.SeriesCacheTTL())
	}

	return series, nil
}

func formatToTwo(n float64) float64 {
	val, _ := strconv.ParseFloat(fmt.Sprintf("%.2f", n), 64)
	return val
}
