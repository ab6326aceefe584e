package main

import "fmt"

// maxBoardSide bounds each board dimension.
const maxBoardSide = 19

type GameSettings struct {
	Height      int `json:"height"`
	Width       int `json:"width"`
	MatchLength int `json:"match_length"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		Height:      8,
		Width:       8,
		MatchLength: 5,
	}
}

func (s GameSettings) Validate() error {
	if s.Height < 1 || s.Width < 1 {
		return fmt.Errorf("board %dx%d must be at least 1x1", s.Height, s.Width)
	}
	if s.Height > maxBoardSide || s.Width > maxBoardSide {
		return fmt.Errorf("board %dx%d exceeds %dx%d", s.Height, s.Width, maxBoardSide, maxBoardSide)
	}
	if s.MatchLength < 1 {
		return fmt.Errorf("match length %d must be positive", s.MatchLength)
	}
	if s.MatchLength > s.Height && s.MatchLength > s.Width {
		return fmt.Errorf("match length %d does not fit a %dx%d board", s.MatchLength, s.Height, s.Width)
	}
	return nil
}
