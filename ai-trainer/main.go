package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type sparrer struct {
	client *backendClient
	rng    *rand.Rand
	logger zerolog.Logger
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: colorable.NewColorableStdout(), TimeFormat: time.Kitchen}).
		With().Timestamp().Str("component", "sparring").Logger()

	baseURL := getenv("BACKEND_URL", "http://backend:8080")
	games := getenvInt("SPAR_GAMES", 10)
	depth := getenvInt("SPAR_DEPTH", -1)
	seed := int64(getenvInt("SPAR_SEED", int(time.Now().UnixNano()%1_000_000)))
	poll := time.Duration(getenvInt("POLL_INTERVAL_MS", 2000)) * time.Millisecond

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := &sparrer{
		client: newBackendClient(baseURL),
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.Logger,
	}
	s.logger.Info().Str("backend", baseURL).Int("games", games).Int64("seed", seed).Msg("sparring client started")

	if err := s.client.waitReady(ctx, 60*time.Second, poll); err != nil {
		s.logger.Error().Err(err).Msg("backend unavailable")
		os.Exit(1)
	}
	if depth >= 0 {
		if err := s.client.setSearch(depth); err != nil {
			s.logger.Error().Err(err).Int("depth", depth).Msg("could not set search depth")
			os.Exit(1)
		}
	}

	result := s.run(ctx, games)
	s.logger.Info().
		Int("games", result.games()).
		Int("human_wins", result.HumanWins).
		Int("computer_wins", result.ComputerWins).
		Int("draws", result.Draws).
		Int("aborted", result.Aborted).
		Msg("sparring finished")
}

func (s *sparrer) run(ctx context.Context, games int) tally {
	var result tally
	for i := 0; i < games; i++ {
		if ctx.Err() != nil {
			break
		}
		status, err := s.playGame(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Int("game", i+1).Msg("game aborted")
			result.record("")
			continue
		}
		result.record(status)
		s.logger.Info().Int("game", i+1).Str("result", status).Msg("game over")
	}
	return result
}

func (s *sparrer) playGame(ctx context.Context) (string, error) {
	st, err := s.client.startGame()
	if err != nil {
		return "", err
	}
	for st.Status == "running" {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		move, ok := pickMove(st.Board, s.rng)
		if !ok {
			return "", fmt.Errorf("no free cell while game is running")
		}
		started := time.Now()
		st, err = s.client.play(move)
		if err != nil {
			return "", err
		}
		event := s.logger.Debug().Int("row", move.Row).Int("col", move.Col).Dur("reply_in", time.Since(started))
		if st.LastComputer != nil {
			event = event.Int("reply_row", st.LastComputer.Row).Int("reply_col", st.LastComputer.Col)
		}
		event.Msg("turn")
	}
	return st.Status, nil
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
