package main

import "math/rand"

// pickMove chooses a free cell for the sparring side. Cells touching an
// existing stone are preferred so games stay compact; on an empty board the
// centre is played.
func pickMove(board [][]int, rng *rand.Rand) (moveJSON, bool) {
	var near, free []moveJSON
	stones := 0
	for row, line := range board {
		for col, cell := range line {
			if cell != 0 {
				stones++
				continue
			}
			move := moveJSON{Row: row, Col: col}
			free = append(free, move)
			if hasNeighbour(board, row, col) {
				near = append(near, move)
			}
		}
	}
	if len(free) == 0 {
		return moveJSON{}, false
	}
	if stones == 0 {
		return moveJSON{Row: len(board) / 2, Col: len(board[0]) / 2}, true
	}
	if len(near) > 0 {
		return near[rng.Intn(len(near))], true
	}
	return free[rng.Intn(len(free))], true
}

func hasNeighbour(board [][]int, row, col int) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || r >= len(board) || c < 0 || c >= len(board[r]) {
				continue
			}
			if board[r][c] != 0 {
				return true
			}
		}
	}
	return false
}

type tally struct {
	HumanWins    int
	ComputerWins int
	Draws        int
	Aborted      int
}

func (t *tally) record(status string) {
	switch status {
	case "human_won":
		t.HumanWins++
	case "computer_won":
		t.ComputerWins++
	case "draw":
		t.Draws++
	default:
		t.Aborted++
	}
}

func (t tally) games() int {
	return t.HumanWins + t.ComputerWins + t.Draws + t.Aborted
}
