package main

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

type Stone uint8

const (
	StoneNone Stone = iota
	StonePlayer
	StoneOpponent
)

// The human always plays StonePlayer, the engine StoneOpponent.
const (
	HumanStone    = StonePlayer
	ComputerStone = StoneOpponent
)

var (
	ErrOutOfBounds  = errors.New("out of bounds")
	ErrCellOccupied = errors.New("occupied")
	ErrInvalidStone = errors.New("invalid stone")
)

// Board is a height x width grid plus the ordered list of cells that are
// still empty. The free list keeps the row-major order of the empty board;
// removals never reorder it, so move generation is reproducible.
type Board struct {
	height int
	width  int
	cells  []Stone
	free   []Move
}

func NewBoard(height, width int) Board {
	b := Board{}
	b.Reset(height, width)
	return b
}

func (b *Board) Reset(height, width int) {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	b.height = height
	b.width = width
	b.cells = make([]Stone, height*width)
	b.free = make([]Move, 0, height*width)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			b.free = append(b.free, Move{Row: row, Col: col})
		}
	}
}

func (b Board) At(row, col int) Stone {
	return b.cells[b.index(row, col)]
}

// Place puts stone on an empty in-bounds cell and drops the cell from the
// free list. Occupied cells are never overwritten.
func (b *Board) Place(move Move, stone Stone) error {
	if stone != StonePlayer && stone != StoneOpponent {
		return fmt.Errorf("place %s at (%d,%d): %w", stone, move.Row, move.Col, ErrInvalidStone)
	}
	if !b.InBounds(move.Row, move.Col) {
		return fmt.Errorf("place at (%d,%d): %w", move.Row, move.Col, ErrOutOfBounds)
	}
	idx := b.index(move.Row, move.Col)
	if b.cells[idx] != StoneNone {
		return fmt.Errorf("place at (%d,%d): %w", move.Row, move.Col, ErrCellOccupied)
	}
	b.cells[idx] = stone
	if pos := slices.Index(b.free, move); pos >= 0 {
		b.free = slices.Delete(b.free, pos, pos+1)
	}
	return nil
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.height && col < b.width
}

func (b Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.At(row, col) == StoneNone
}

// FreeCells returns a copy of the free list in its fixed order.
func (b Board) FreeCells() []Move {
	return slices.Clone(b.free)
}

func (b Board) FreeCount() int {
	return len(b.free)
}

func (b Board) Height() int {
	return b.height
}

func (b Board) Width() int {
	return b.width
}

func (b Board) Clone() Board {
	clone := Board{height: b.height, width: b.width}
	clone.cells = make([]Stone, len(b.cells))
	copy(clone.cells, b.cells)
	clone.free = slices.Clone(b.free)
	return clone
}

// Cells returns a row-major copy of the grid for rendering.
func (b Board) Cells() [][]Stone {
	rows := make([][]Stone, b.height)
	for row := 0; row < b.height; row++ {
		rows[row] = make([]Stone, b.width)
		copy(rows[row], b.cells[row*b.width:(row+1)*b.width])
	}
	return rows
}

func (b Board) index(row, col int) int {
	return row*b.width + col
}

func (s Stone) Opponent() Stone {
	switch s {
	case StonePlayer:
		return StoneOpponent
	case StoneOpponent:
		return StonePlayer
	default:
		return StoneNone
	}
}

func (s Stone) String() string {
	switch s {
	case StonePlayer:
		return "Player"
	case StoneOpponent:
		return "Opponent"
	default:
		return "None"
	}
}
