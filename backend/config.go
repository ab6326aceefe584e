package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

type Config struct {
	Addr          string `json:"addr"`
	SearchDepth   int    `json:"search_depth"`
	SearchWorkers int    `json:"search_workers"`
	Debug         bool   `json:"debug"`
	LogLevel      string `json:"log_level"`
	LogPretty     bool   `json:"log_pretty"`
	PatternsFile  string `json:"patterns_file"`
}

// maxSearchDepth caps the configured lookahead.
const maxSearchDepth = 2

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		SearchDepth: 1,
		// 0 means one worker per CPU
		SearchWorkers: 0,
		Debug:         false,
		LogLevel:      "info",
		LogPretty:     true,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

// LoadConfigFromEnv overlays GOMOKU_* variables on base.
func LoadConfigFromEnv(base Config) Config {
	cfg := base
	cfg.Addr = getenv("GOMOKU_ADDR", cfg.Addr)
	cfg.SearchDepth = clampSearchDepth(getenvInt("GOMOKU_SEARCH_DEPTH", cfg.SearchDepth))
	cfg.SearchWorkers = getenvInt("GOMOKU_SEARCH_WORKERS", cfg.SearchWorkers)
	cfg.Debug = getenvBool("GOMOKU_DEBUG", cfg.Debug)
	cfg.LogLevel = getenv("GOMOKU_LOG_LEVEL", cfg.LogLevel)
	cfg.LogPretty = getenvBool("GOMOKU_LOG_PRETTY", cfg.LogPretty)
	cfg.PatternsFile = getenv("GOMOKU_PATTERNS_FILE", cfg.PatternsFile)
	return cfg
}

func LoadGameSettingsFromEnv(base GameSettings) (GameSettings, error) {
	settings := base
	settings.Height = getenvInt("GOMOKU_BOARD_HEIGHT", settings.Height)
	settings.Width = getenvInt("GOMOKU_BOARD_WIDTH", settings.Width)
	settings.MatchLength = getenvInt("GOMOKU_MATCH_LENGTH", settings.MatchLength)
	if err := settings.Validate(); err != nil {
		return base, fmt.Errorf("game settings from env: %w", err)
	}
	return settings, nil
}

func clampSearchDepth(depth int) int {
	if depth < 0 {
		return 0
	}
	if depth > maxSearchDepth {
		return maxSearchDepth
	}
	return depth
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

// getenvInt accepts zero, since a search depth of 0 is meaningful.
func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}
