package main

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

func (r Rules) IsLegal(board Board, move Move) (bool, string) {
	if !move.IsValid(board.Height(), board.Width()) {
		return false, "out of bounds"
	}
	if !board.IsEmpty(move.Row, move.Col) {
		return false, "occupied"
	}
	return true, ""
}

// IsWin reports whether stone has a run of the configured length anywhere.
func (r Rules) IsWin(board Board, stone Stone) bool {
	return HasRun(board, stone, r.settings.MatchLength)
}

// IsDraw is true once no free cell is left and neither side has a run.
func (r Rules) IsDraw(board Board) bool {
	if board.FreeCount() > 0 {
		return false
	}
	return !r.IsWin(board, StonePlayer) && !r.IsWin(board, StoneOpponent)
}

func (r Rules) MatchLength() int {
	return r.settings.MatchLength
}

func (r Rules) FindRunLine(board Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid(board.Height(), board.Width()) {
		return nil, false
	}
	if board.At(lastMove.Row, lastMove.Col) == StoneNone {
		return nil, false
	}
	for _, dir := range lineDirections {
		line := collectLine(board, lastMove, dir)
		if len(line) >= r.settings.MatchLength {
			return line, true
		}
	}
	return nil, false
}

// HasRun scans every row, column and diagonal for length consecutive cells
// holding stone.
func HasRun(board Board, stone Stone, length int) bool {
	if length <= 0 || stone == StoneNone {
		return false
	}
	for _, dir := range lineDirections {
		for row := 0; row < board.height; row++ {
			endRow := row + (length-1)*dir.dRow
			if endRow >= board.height {
				break
			}
			for col := 0; col < board.width; col++ {
				endCol := col + (length-1)*dir.dCol
				if endCol < 0 || endCol >= board.width {
					continue
				}
				if runAt(board, stone, length, row, col, dir) {
					return true
				}
			}
		}
	}
	return false
}

func runAt(board Board, stone Stone, length, row, col int, dir direction) bool {
	for i := 0; i < length; i++ {
		if board.cells[(row+i*dir.dRow)*board.width+col+i*dir.dCol] != stone {
			return false
		}
	}
	return true
}

// CompletesRun reports whether the stone at move is part of a run of at
// least length cells.
func CompletesRun(board Board, move Move, length int) bool {
	if length <= 0 || !move.IsValid(board.height, board.width) {
		return false
	}
	if board.At(move.Row, move.Col) == StoneNone {
		return false
	}
	for _, dir := range lineDirections {
		count := 1
		count += countDirection(board, move, dir.dRow, dir.dCol)
		count += countDirection(board, move, -dir.dRow, -dir.dCol)
		if count >= length {
			return true
		}
	}
	return false
}

func countDirection(board Board, start Move, dRow, dCol int) int {
	target := board.At(start.Row, start.Col)
	row := start.Row + dRow
	col := start.Col + dCol
	count := 0
	for board.InBounds(row, col) && board.At(row, col) == target {
		count++
		row += dRow
		col += dCol
	}
	return count
}

func collectLine(board Board, start Move, dir direction) []Move {
	line := []Move{}
	target := board.At(start.Row, start.Col)
	row := start.Row
	col := start.Col
	for board.InBounds(row-dir.dRow, col-dir.dCol) && board.At(row-dir.dRow, col-dir.dCol) == target {
		row -= dir.dRow
		col -= dir.dCol
	}
	for board.InBounds(row, col) && board.At(row, col) == target {
		line = append(line, Move{Row: row, Col: col})
		row += dir.dRow
		col += dir.dCol
	}
	return line
}
