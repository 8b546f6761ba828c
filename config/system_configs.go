package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/joho/godotenv"

	"scanner/model"
	"scanner/pattern"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads the 'config' env var (JSON) after loading .env. An
// empty variable yields the built-in defaults so the scanner runs out of
// the box against the bundled watchlist directories.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	envCfg := defaultConfig()

	rawJson := os.Getenv("config")
	if rawJson != "" {
		if err := json.Unmarshal([]byte(rawJson), envCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
		applyDefaults(envCfg)
	}

	return &SystemConfigs{
		Config: envCfg,
	}, nil
}

func defaultConfig() *model.EnvConfig {
	return &model.EnvConfig{
		Port:            "8080",
		Environment:     "development",
		IndexDir:        "INDEX CSV",
		SectorDir:       "SECTORS CSV",
		Period:          string(model.Range6mo),
		ScanWorkers:     8,
		SwingLeft:       pattern.DefaultSwingLeft,
		SwingRight:      pattern.DefaultSwingRight,
		MinDepthPercent: pattern.DefaultMinDepthPercent,
		LookbackBars:    pattern.DefaultLookbackBars,
		AlertDays:       10,
	}
}

// applyDefaults backfills fields the config JSON left zero-valued.
func applyDefaults(cfg *model.EnvConfig) {
	def := defaultConfig()
	if cfg.Port == "" {
		cfg.Port = def.Port
	}
	if cfg.IndexDir == "" {
		cfg.IndexDir = def.IndexDir
	}
	if cfg.SectorDir == "" {
		cfg.SectorDir = def.SectorDir
	}
	if cfg.Period == "" {
		cfg.Period = def.Period
	}
	if cfg.ScanWorkers <= 0 {
		cfg.ScanWorkers = def.ScanWorkers
	}
	if cfg.SwingLeft <= 0 {
		cfg.SwingLeft = def.SwingLeft
	}
	if cfg.SwingRight <= 0 {
		cfg.SwingRight = def.SwingRight
	}
	if cfg.MinDepthPercent <= 0 {
		cfg.MinDepthPercent = def.MinDepthPercent
	}
	if cfg.LookbackBars <= 0 {
		cfg.LookbackBars = def.LookbackBars
	}
	if cfg.AlertDays <= 0 {
		cfg.AlertDays = def.AlertDays
	}
}

type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.EnvConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.EnvConfig {
	return cm.value.Load().(*model.EnvConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.EnvConfig) {
	cm.value.Store(newCfg)
}
