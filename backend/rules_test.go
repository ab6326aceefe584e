package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasRunAllDirections(t *testing.T) {
	cases := []struct {
		name  string
		start Move
		dir   direction
	}{
		{name: "row", start: Move{Row: 3, Col: 1}, dir: direction{0, 1}},
		{name: "column", start: Move{Row: 0, Col: 6}, dir: direction{1, 0}},
		{name: "down-right", start: Move{Row: 1, Col: 0}, dir: direction{1, 1}},
		{name: "down-left", start: Move{Row: 0, Col: 7}, dir: direction{1, -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			five := NewBoard(8, 8)
			four := NewBoard(8, 8)
			for i := 0; i < 5; i++ {
				move := Move{Row: tc.start.Row + i*tc.dir.dRow, Col: tc.start.Col + i*tc.dir.dCol}
				require.NoError(t, five.Place(move, StoneOpponent))
				if i < 4 {
					require.NoError(t, four.Place(move, StoneOpponent))
				}
			}
			require.True(t, HasRun(five, StoneOpponent, 5))
			require.False(t, HasRun(five, StonePlayer, 5))
			require.False(t, HasRun(four, StoneOpponent, 5))
			require.True(t, HasRun(four, StoneOpponent, 4))

			last := Move{Row: tc.start.Row + 4*tc.dir.dRow, Col: tc.start.Col + 4*tc.dir.dCol}
			require.True(t, CompletesRun(five, last, 5))
			require.True(t, CompletesRun(five, tc.start, 5))
		})
	}
}

func TestHasRunIgnoresBrokenLines(t *testing.T) {
	board := boardWith(t, 1, 8, rowOf(StonePlayer, 0, 0, 1, 2, 4, 5, 6))
	require.False(t, HasRun(board, StonePlayer, 5))
	require.NoError(t, board.Place(Move{Row: 0, Col: 3}, StonePlayer))
	require.True(t, HasRun(board, StonePlayer, 5))
	require.True(t, CompletesRun(board, Move{Row: 0, Col: 3}, 5))
}

func TestRulesWinAndDraw(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := boardWith(t, 8, 8, rowOf(StonePlayer, 7, 2, 3, 4, 5, 6))
	require.True(t, rules.IsWin(board, StonePlayer))
	require.False(t, rules.IsWin(board, StoneOpponent))
	require.False(t, rules.IsDraw(board))

	line, ok := rules.FindRunLine(board, Move{Row: 7, Col: 4})
	require.True(t, ok)
	require.Equal(t, []Move{{7, 2}, {7, 3}, {7, 4}, {7, 5}, {7, 6}}, line)

	full := drawnBoard(t, 8, 8)
	require.True(t, rules.IsDraw(full))
}

func TestRulesIsLegal(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := boardWith(t, 8, 8, map[Move]Stone{{0, 0}: StonePlayer})
	ok, reason := rules.IsLegal(board, Move{Row: 0, Col: 0})
	require.False(t, ok)
	require.Equal(t, "occupied", reason)
	ok, reason = rules.IsLegal(board, Move{Row: 8, Col: 0})
	require.False(t, ok)
	require.Equal(t, "out of bounds", reason)
	ok, _ = rules.IsLegal(board, Move{Row: 1, Col: 1})
	require.True(t, ok)
}

// drawnBoard fills every cell in 2x1 bricks so no side ever lines up three.
func drawnBoard(t *testing.T, height, width int) Board {
	t.Helper()
	board := NewBoard(height, width)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			stone := StonePlayer
			if (col/2+row)%2 == 1 {
				stone = StoneOpponent
			}
			require.NoError(t, board.Place(Move{Row: row, Col: col}, stone))
		}
	}
	require.Zero(t, board.FreeCount())
	return board
}
