package main

import (
	"errors"
	"time"
)

// Game is one human-versus-computer match on a single live board.
type Game struct {
	settings  GameSettings
	rules     Rules
	state     GameState
	history   MoveHistory
	computer  *AIPlayer
	turnStart time.Time
}

func NewGame(settings GameSettings, catalog *Catalog) *Game {
	g := &Game{computer: NewAIPlayer(ComputerStone, catalog)}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history.Clear()
	g.computer.Reset()
	g.turnStart = time.Now()
	componentLogger("game").Info().
		Int("height", settings.Height).
		Int("width", settings.Width).
		Int("match_length", settings.MatchLength).
		Msg("new game")
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Status() GameStatus {
	return g.state.Status
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) BoardSnapshot() Board {
	return g.state.Board.Clone()
}

// AttemptPlayerMove places the human stone at (row, col), 0-indexed.
func (g *Game) AttemptPlayerMove(row, col int) MoveResult {
	if g.state.Status != StatusRunning {
		return MoveGameOver
	}
	move := NewMove(row, col)
	err := g.state.Board.Place(move, HumanStone)
	switch {
	case errors.Is(err, ErrOutOfBounds):
		return MoveOutOfBounds
	case errors.Is(err, ErrCellOccupied):
		return MoveOccupied
	case err != nil:
		panic(err)
	}
	g.recordMove(move, HumanStone, false, 0, 0)
	g.updateStatus(move, HumanStone)
	return MoveApplied
}

// ComputerMove searches, applies and returns the computer's move. It returns
// NoMove and false when the board is full or the game is already won.
func (g *Game) ComputerMove() (Move, bool) {
	if g.state.Status == StatusHumanWon || g.state.Status == StatusComputerWon {
		return NoMove, false
	}
	result, ok := g.computer.ChooseMove(g.state.Board, g.rules)
	if !ok {
		g.updateStatus(NoMove, ComputerStone)
		return NoMove, false
	}
	if err := g.state.Board.Place(result.Move, ComputerStone); err != nil {
		panic(err)
	}
	g.recordMove(result.Move, ComputerStone, true, result.Score, result.Depth)
	g.updateStatus(result.Move, ComputerStone)
	return result.Move, true
}

func (g *Game) HasWon(stone Stone) bool {
	return g.rules.IsWin(g.state.Board, stone)
}

func (g *Game) IsDraw() bool {
	return g.rules.IsDraw(g.state.Board)
}

// LastMoveBy is used for highlighting only.
func (g *Game) LastMoveBy(stone Stone) (Move, bool) {
	entry, ok := g.history.LastBy(stone)
	if !ok {
		return NoMove, false
	}
	return entry.Move, true
}

func (g *Game) LastSearch() (SearchResult, bool) {
	return g.computer.LastSearch()
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) recordMove(move Move, stone Stone, isAi bool, score, depth int) {
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	g.history.Push(HistoryEntry{Move: move, Stone: stone, ElapsedMs: elapsedMs, IsAi: isAi, Score: score, Depth: depth})
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.turnStart = time.Now()
	componentLogger("game").Info().
		Str("stone", stone.String()).
		Int("row", move.Row).
		Int("col", move.Col).
		Float64("elapsed_ms", elapsedMs).
		Bool("ai", isAi).
		Msg("move played")
}

func (g *Game) updateStatus(move Move, stone Stone) {
	if g.rules.IsWin(g.state.Board, stone) {
		if line, ok := g.rules.FindRunLine(g.state.Board, move); ok {
			g.state.WinningLine = line
		}
		if stone == HumanStone {
			g.state.Status = StatusHumanWon
		} else {
			g.state.Status = StatusComputerWon
		}
		componentLogger("game").Info().Str("winner", stone.String()).Msg("game won")
		return
	}
	if g.rules.IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		componentLogger("game").Info().Msg("game drawn")
	}
}
