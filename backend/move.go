package main

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned when the board has no free cell left.
var NoMove = Move{Row: -1, Col: -1}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) IsValid(height, width int) bool {
	return m.Row >= 0 && m.Col >= 0 && m.Row < height && m.Col < width
}

