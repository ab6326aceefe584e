package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GOMOKU_ADDR", ":9999")
	t.Setenv("GOMOKU_SEARCH_DEPTH", "0")
	t.Setenv("GOMOKU_SEARCH_WORKERS", "3")
	t.Setenv("GOMOKU_DEBUG", "true")
	t.Setenv("GOMOKU_LOG_LEVEL", "debug")
	t.Setenv("GOMOKU_LOG_PRETTY", "false")
	t.Setenv("GOMOKU_PATTERNS_FILE", "/etc/gomoku/patterns.yaml")

	cfg := LoadConfigFromEnv(DefaultConfig())
	require.Equal(t, Config{
		Addr:          ":9999",
		SearchDepth:   0,
		SearchWorkers: 3,
		Debug:         true,
		LogLevel:      "debug",
		LogPretty:     false,
		PatternsFile:  "/etc/gomoku/patterns.yaml",
	}, cfg)
}

func TestLoadConfigFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("GOMOKU_SEARCH_DEPTH", "-2")
	t.Setenv("GOMOKU_SEARCH_WORKERS", "many")
	t.Setenv("GOMOKU_DEBUG", "perhaps")

	cfg := LoadConfigFromEnv(DefaultConfig())
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadGameSettingsFromEnv(t *testing.T) {
	t.Setenv("GOMOKU_BOARD_HEIGHT", "10")
	t.Setenv("GOMOKU_BOARD_WIDTH", "12")
	t.Setenv("GOMOKU_MATCH_LENGTH", "4")
	settings, err := LoadGameSettingsFromEnv(DefaultGameSettings())
	require.NoError(t, err)
	require.Equal(t, GameSettings{Height: 10, Width: 12, MatchLength: 4}, settings)
}

func TestLoadGameSettingsFromEnvRejectsUnplayableBoard(t *testing.T) {
	t.Setenv("GOMOKU_BOARD_HEIGHT", "3")
	t.Setenv("GOMOKU_BOARD_WIDTH", "3")
	settings, err := LoadGameSettingsFromEnv(DefaultGameSettings())
	require.Error(t, err)
	require.Equal(t, DefaultGameSettings(), settings)
}

func TestGameSettingsValidate(t *testing.T) {
	require.NoError(t, DefaultGameSettings().Validate())
	require.NoError(t, GameSettings{Height: 1, Width: 5, MatchLength: 5}.Validate())
	require.Error(t, GameSettings{Height: 0, Width: 5, MatchLength: 5}.Validate())
	require.Error(t, GameSettings{Height: 5, Width: 5, MatchLength: 0}.Validate())
	require.Error(t, GameSettings{Height: 4, Width: 4, MatchLength: 5}.Validate())
}

func TestConfigStoreRoundTrip(t *testing.T) {
	store := &ConfigStore{config: DefaultConfig()}
	cfg := store.Get()
	cfg.SearchDepth = 3
	require.Equal(t, 1, store.Get().SearchDepth)
	store.Update(cfg)
	require.Equal(t, 3, store.Get().SearchDepth)
}

func TestGameSettingsRejectOversizedBoard(t *testing.T) {
	require.Error(t, GameSettings{Height: 100000, Width: 100000, MatchLength: 5}.Validate())
	require.Error(t, GameSettings{Height: maxBoardSide + 1, Width: 8, MatchLength: 5}.Validate())
	require.Error(t, GameSettings{Height: 8, Width: maxBoardSide + 1, MatchLength: 5}.Validate())
	require.NoError(t, GameSettings{Height: maxBoardSide, Width: maxBoardSide, MatchLength: 5}.Validate())
}

func TestSearchDepthFromEnvIsCapped(t *testing.T) {
	t.Setenv("GOMOKU_SEARCH_DEPTH", "40")
	cfg := LoadConfigFromEnv(DefaultConfig())
	require.Equal(t, maxSearchDepth, cfg.SearchDepth)

	require.Equal(t, 0, clampSearchDepth(-1))
	require.Equal(t, 1, clampSearchDepth(1))
	require.Equal(t, maxSearchDepth, clampSearchDepth(maxSearchDepth+5))
}
