package main

import "sync"

type GameController struct {
	mu   sync.Mutex
	game *Game
}

func NewGameController(settings GameSettings, catalog *Catalog) *GameController {
	return &GameController{game: NewGame(settings, catalog)}
}

// PlayTurn applies the human move and, if the game goes on, the computer's
// reply.
func (gc *GameController) PlayTurn(move Move) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	result := gc.game.AttemptPlayerMove(move.Row, move.Col)
	if result != MoveApplied {
		return false, result.String()
	}
	if gc.game.Status() == StatusRunning {
		gc.game.ComputerMove()
	}
	return true, ""
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings()
}

func (gc *GameController) LastSearch() (SearchResult, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.LastSearch()
}

// GameSnapshot is a consistent view of the game taken under one lock.
type GameSnapshot struct {
	Settings        GameSettings
	State           GameState
	History         MoveHistory
	LastHuman       Move
	HasLastHuman    bool
	LastComputer    Move
	HasLastComputer bool
	TurnStartedAtMs int64
}

func (gc *GameController) Snapshot() GameSnapshot {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	snap := GameSnapshot{
		Settings:        gc.game.Settings(),
		State:           gc.game.State(),
		History:         MoveHistory{entries: gc.game.History().All()},
		TurnStartedAtMs: gc.game.TurnStartedAtMs(),
	}
	snap.LastHuman, snap.HasLastHuman = gc.game.LastMoveBy(HumanStone)
	snap.LastComputer, snap.HasLastComputer = gc.game.LastMoveBy(ComputerStone)
	return snap
}

func (gc *GameController) StartGame(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}
