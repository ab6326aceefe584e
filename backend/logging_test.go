package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingLevel(t *testing.T) {
	previousLogger := log.Logger
	previousLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previousLogger
		zerolog.SetGlobalLevel(previousLevel)
	})

	setupLogging(Config{LogLevel: "WARN", LogPretty: false})
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	setupLogging(Config{LogLevel: "chatty", LogPretty: true})
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestComponentLoggerTagsComponent(t *testing.T) {
	previousLogger := log.Logger
	t.Cleanup(func() { log.Logger = previousLogger })
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	componentLogger("game").Info().Int("row", 2).Msg("move played")
	require.Contains(t, buf.String(), `"component":"game"`)
	require.Contains(t, buf.String(), `"message":"move played"`)
}

func TestMustMarshalLogsFailure(t *testing.T) {
	previousLogger := log.Logger
	t.Cleanup(func() { log.Logger = previousLogger })
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	require.Nil(t, mustMarshal(make(chan int)))
	require.Contains(t, buf.String(), `"component":"backend"`)
	require.Contains(t, buf.String(), "marshal websocket payload")
	require.JSONEq(t, `{"ok":true}`, string(mustMarshal(map[string]bool{"ok": true})))
}
