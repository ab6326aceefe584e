package main

type direction struct {
	dRow int
	dCol int
}

// Rows, columns, down-right and down-left diagonals.
var lineDirections = [4]direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// EvaluateBoard scores board for perspective: every catalog pattern and its
// mirror is matched at every start along every direction, and each match
// adds the pattern's score. Overlapping matches all count.
func EvaluateBoard(board Board, catalog *Catalog, perspective Stone) int {
	score := 0
	for _, pattern := range catalog.patterns {
		score += scanPattern(board, pattern, perspective)
		score += scanPattern(board, pattern.Mirror(), perspective)
	}
	return score
}

// scanPatterns is the one-sided form of EvaluateBoard: patterns are matched
// as given, without their mirrors.
func scanPatterns(board Board, catalog *Catalog, perspective Stone) int {
	score := 0
	for _, pattern := range catalog.patterns {
		score += scanPattern(board, pattern, perspective)
	}
	return score
}

func scanPattern(board Board, pattern Pattern, perspective Stone) int {
	want := pattern.Stones(perspective)
	matches := 0
	for _, dir := range lineDirections {
		matches += countMatches(board, want, dir)
	}
	return matches * pattern.Score
}

func countMatches(board Board, want []Stone, dir direction) int {
	n := len(want)
	if n == 0 {
		return 0
	}
	count := 0
	for row := 0; row < board.height; row++ {
		endRow := row + (n-1)*dir.dRow
		if endRow < 0 || endRow >= board.height {
			continue
		}
		for col := 0; col < board.width; col++ {
			endCol := col + (n-1)*dir.dCol
			if endCol < 0 || endCol >= board.width {
				continue
			}
			if matchAt(board, want, row, col, dir) {
				count++
			}
		}
	}
	return count
}

func matchAt(board Board, want []Stone, row, col int, dir direction) bool {
	for i, stone := range want {
		if board.cells[(row+i*dir.dRow)*board.width+col+i*dir.dCol] != stone {
			return false
		}
	}
	return true
}
