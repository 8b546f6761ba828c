package model

// --- SYSTEM CONFIG ---
// EnvConfig holds environment settings for the scanner
// @Description Private configuration (usually not exposed in public endpoints)
type EnvConfig struct {
	Port            string   `json:"port"`
	Environment     string   `json:"environment"`
	FrontendUrls    []string `json:"frontendUrls"`
	RedisUrl        string   `json:"redisUrl"`
	IndexDir        string   `json:"indexDir"`
	SectorDir       string   `json:"sectorDir"`
	Period          string   `json:"period"`
	ScanWorkers     int      `json:"scanWorkers"`
	RateLimiter     bool     `json:"rateLimiter"`
	SwingLeft       int      `json:"swingLeft"`
	SwingRight      int      `json:"swingRight"`
	MinDepthPercent float64  `json:"minDepthPercent"`
	LookbackBars    int      `json:"lookbackBars"`
	AlertDays       int      `json:"alertDays"`
}
