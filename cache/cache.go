package cache

import (
	"time"

	"github.com/patrickmn/go-cache"

	"scanner/model"
)

var SeriesCache = cache.New(1*time.Hour, 10*time.Minute)
var WatchlistCache = cache.New(30*time.Minute, 10*time.Minute)
var ScanResultCache = cache.New(cache.NoExpiration, 0)
var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)

const lastScanKey = "last_scan"

func SetLastScan(result *model.ScanResult) {
	ScanResultCache.Set(lastScanKey, result, cache.NoExpiration)
}

func GetLastScan() (*model.ScanResult, bool) {
	raw, found := ScanResultCache.Get(lastScanKey)
	if !found {
		return nil, false
	}
	result, ok := raw.(*model.ScanResult)
	return result, ok
}
