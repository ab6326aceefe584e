package main

type GameStatus int

const (
	StatusRunning GameStatus = iota
	StatusHumanWon
	StatusComputerWon
	StatusDraw
)

// MoveResult is the outcome of a human move attempt.
type MoveResult int

const (
	MoveApplied MoveResult = iota
	MoveOutOfBounds
	MoveOccupied
	MoveGameOver
)

type GameState struct {
	Board       Board
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	WinningLine []Move
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewBoard(settings.Height, settings.Width)
	s.Status = StatusRunning
	s.HasLastMove = false
	s.LastMove = NoMove
	s.WinningLine = nil
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.WinningLine = append([]Move(nil), s.WinningLine...)
	return clone
}

func (s GameStatus) String() string {
	switch s {
	case StatusHumanWon:
		return "human_won"
	case StatusComputerWon:
		return "computer_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func (r MoveResult) String() string {
	switch r {
	case MoveApplied:
		return "applied"
	case MoveOutOfBounds:
		return "out of bounds"
	case MoveOccupied:
		return "occupied"
	default:
		return "game over"
	}
}
