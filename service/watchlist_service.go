package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/patrickmn/go-cache"

	localCache "scanner/cache"
	"scanner/customerrors"
	"scanner/model"
	"scanner/util"
)

type WatchlistService interface {
	ListFiles(scanType string) ([]string, error)
	LoadTickers(scanType, fileName string) ([]string, error)
}

type WatchlistServiceImpl struct {
	indexDir  string
	sectorDir string
}

func NewWatchlistService(indexDir, sectorDir string) WatchlistService {
	return &WatchlistServiceImpl{
		indexDir:  indexDir,
		sectorDir: sectorDir,
	}
}

// ListFiles returns the CSV file names available for a scan type, sorted.
func (s *WatchlistServiceImpl) ListFiles(scanType string) ([]string, error) {
	dir, err := s.dirFor(scanType)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading watchlist dir %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// LoadTickers reads one watchlist file into ticker symbols, cached per file.
func (s *WatchlistServiceImpl) LoadTickers(scanType, fileName string) ([]string, error) {
	if fileName != filepath.Base(fileName) || fileName == "." || fileName == "" {
		return nil, fmt.Errorf("%w: %s", customerrors.ErrInvalidWatchlist, fileName)
	}

	dir, err := s.dirFor(scanType)
	if err != nil {
		return nil, err
	}

	cacheKey := "watchlist_" + scanType + "_" + fileName
	if cached, found := localCache.WatchlistCache.Get(cacheKey); found {
		return cached.([]string), nil
	}

	f, err := os.Open(filepath.Join(dir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", customerrors.ErrWatchlistNotFound, fileName)
		}
		return nil, err
	}
	defer f.Close()

	tickers, err := util.ReadTickers(f)
	if err != nil {
		return nil, fmt.Errorf("parsing watchlist %s: %w", fileName, err)
	}

	localCache.WatchlistCache.Set(cacheKey, tickers, cache.DefaultExpiration)
	return tickers, nil
}

func (s *WatchlistServiceImpl) dirFor(scanType string) (string, error) {
	switch model.ScanType(scanType) {
	case model.ScanSector:
		return s.sectorDir, nil
	case model.ScanIndex, "":
		return s.indexDir, nil
	default:
		return "", fmt.Errorf("unknown scan type: %s", scanType)
	}
}
