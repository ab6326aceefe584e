package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Marker uint8

const (
	MarkerEmpty Marker = iota
	MarkerSelf
	MarkerOpponent
)

const maxPatternLength = 6

// PatternType classifies a pattern. Scoring ignores it.
type PatternType int

const (
	PatternOpen PatternType = iota
	PatternBlock
	PatternNone
)

type Pattern struct {
	Markers []Marker
	Type    PatternType
	Score   int
}

// Mirror swaps self and opponent markers and negates the score.
func (p Pattern) Mirror() Pattern {
	markers := make([]Marker, len(p.Markers))
	for i, m := range p.Markers {
		switch m {
		case MarkerSelf:
			markers[i] = MarkerOpponent
		case MarkerOpponent:
			markers[i] = MarkerSelf
		default:
			markers[i] = m
		}
	}
	return Pattern{Markers: markers, Type: p.Type, Score: -p.Score}
}

func (p Pattern) Len() int {
	return len(p.Markers)
}

// Stones maps the markers onto concrete stones for perspective.
func (p Pattern) Stones(perspective Stone) []Stone {
	stones := make([]Stone, len(p.Markers))
	for i, m := range p.Markers {
		switch m {
		case MarkerSelf:
			stones[i] = perspective
		case MarkerOpponent:
			stones[i] = perspective.Opponent()
		default:
			stones[i] = StoneNone
		}
	}
	return stones
}

func (p Pattern) String() string {
	var sb strings.Builder
	for _, m := range p.Markers {
		sb.WriteByte('0' + byte(m))
	}
	return fmt.Sprintf("%s(%s,%d)", sb.String(), p.Type, p.Score)
}

func (t PatternType) String() string {
	switch t {
	case PatternOpen:
		return "open"
	case PatternBlock:
		return "block"
	default:
		return "none"
	}
}

func parsePatternType(value string) (PatternType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "open", "":
		return PatternOpen, true
	case "block":
		return PatternBlock, true
	case "none":
		return PatternNone, true
	default:
		return PatternNone, false
	}
}

// Catalog is the ordered, immutable list of scoring patterns.
type Catalog struct {
	patterns []Pattern
}

func (c *Catalog) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	copy(out, c.patterns)
	return out
}

func (c *Catalog) Len() int {
	return len(c.patterns)
}

// Mirrored returns a catalog holding the mirror of every pattern, in order.
func (c *Catalog) Mirrored() *Catalog {
	out := &Catalog{patterns: make([]Pattern, len(c.patterns))}
	for i, p := range c.patterns {
		out.patterns[i] = p.Mirror()
	}
	return out
}

// patternSpec is the declarative form of a pattern, used both for the
// built-in table and for catalog files.
type patternSpec struct {
	Markers []int  `json:"markers" yaml:"markers"`
	Length  int    `json:"length" yaml:"length"`
	Type    string `json:"type" yaml:"type"`
	Score   int    `json:"score" yaml:"score"`
}

type catalogFile struct {
	Patterns []patternSpec `json:"patterns" yaml:"patterns"`
}

// ConfigurationError reports a malformed catalog entry.
type ConfigurationError struct {
	Index  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("pattern catalog: %s", e.Reason)
	}
	return fmt.Sprintf("pattern catalog: entry %d: %s", e.Index, e.Reason)
}

func NewCatalog(specs []patternSpec) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, &ConfigurationError{Index: -1, Reason: "no patterns"}
	}
	catalog := &Catalog{patterns: make([]Pattern, 0, len(specs))}
	for i, spec := range specs {
		pattern, err := spec.build(i)
		if err != nil {
			return nil, err
		}
		catalog.patterns = append(catalog.patterns, pattern)
	}
	return catalog, nil
}

func mustNewCatalog(specs []patternSpec) *Catalog {
	catalog, err := NewCatalog(specs)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (s patternSpec) build(index int) (Pattern, error) {
	if s.Length != len(s.Markers) {
		return Pattern{}, &ConfigurationError{Index: index, Reason: fmt.Sprintf("declared length %d but %d markers", s.Length, len(s.Markers))}
	}
	if len(s.Markers) == 0 || len(s.Markers) > maxPatternLength {
		return Pattern{}, &ConfigurationError{Index: index, Reason: fmt.Sprintf("length %d outside 1..%d", len(s.Markers), maxPatternLength)}
	}
	patternType, ok := parsePatternType(s.Type)
	if !ok {
		return Pattern{}, &ConfigurationError{Index: index, Reason: fmt.Sprintf("unknown type %q", s.Type)}
	}
	markers := make([]Marker, len(s.Markers))
	stones := 0
	for i, value := range s.Markers {
		if value < int(MarkerEmpty) || value > int(MarkerOpponent) {
			return Pattern{}, &ConfigurationError{Index: index, Reason: fmt.Sprintf("marker %d at position %d not in {0,1,2}", value, i)}
		}
		if value != int(MarkerEmpty) {
			stones++
		}
		markers[i] = Marker(value)
	}
	// An all-empty pattern would score the empty board.
	if stones == 0 {
		return Pattern{}, &ConfigurationError{Index: index, Reason: "pattern has no stones"}
	}
	return Pattern{Markers: markers, Type: patternType, Score: s.Score}, nil
}

// LoadCatalogFile reads a JSON or YAML catalog, chosen by file extension.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern catalog: %w", err)
	}
	var file catalogFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, &ConfigurationError{Index: -1, Reason: fmt.Sprintf("decode %s: %v", filepath.Base(path), err)}
	}
	return NewCatalog(file.Patterns)
}

// Markers: 0 empty, 1 the side being scored, 2 its opponent.
var defaultPatternSpecs = []patternSpec{
	// Defensive: opponent lines next to our stones.
	{Markers: []int{1, 2, 2, 2, 2, 1}, Length: 6, Type: "open", Score: 9000},
	{Markers: []int{2, 2, 2, 2, 1}, Length: 5, Type: "open", Score: 8000},
	{Markers: []int{1, 2, 2, 2, 2}, Length: 5, Type: "open", Score: 8000},
	{Markers: []int{2, 2, 1, 2, 2}, Length: 5, Type: "open", Score: 7500},
	{Markers: []int{2, 2, 1, 2}, Length: 4, Type: "open", Score: 7000},
	{Markers: []int{2, 1, 2, 2}, Length: 4, Type: "open", Score: 7000},
	{Markers: []int{1, 2, 2, 2}, Length: 4, Type: "open", Score: 6000},
	{Markers: []int{2, 2, 2, 1}, Length: 4, Type: "open", Score: 6000},
	{Markers: []int{1, 2, 2, 2, 1}, Length: 5, Type: "open", Score: 1000},

	// Offensive: our own lines.
	{Markers: []int{0, 1, 1, 1, 1, 0}, Length: 6, Type: "open", Score: 9000},
	{Markers: []int{1, 1, 1, 1, 0}, Length: 5, Type: "open", Score: 5000},
	{Markers: []int{0, 1, 1, 1, 1}, Length: 5, Type: "open", Score: 5000},
	{Markers: []int{0, 1, 1, 1, 0}, Length: 5, Type: "open", Score: 3000},
	{Markers: []int{0, 0, 1, 1, 1}, Length: 5, Type: "open", Score: 3000},
	{Markers: []int{1, 1, 1, 0, 0}, Length: 5, Type: "open", Score: 2000},
	{Markers: []int{1, 1, 0, 1, 0}, Length: 5, Type: "open", Score: 1500},
	{Markers: []int{0, 1, 1, 0, 1}, Length: 5, Type: "open", Score: 1200},
	{Markers: []int{1, 1, 0, 1}, Length: 4, Type: "open", Score: 400},
	{Markers: []int{1, 1, 0, 1, 1}, Length: 5, Type: "open", Score: 400},
	{Markers: []int{1, 1, 0, 0, 0}, Length: 5, Type: "open", Score: 225},
	{Markers: []int{0, 0, 0, 1, 1}, Length: 5, Type: "open", Score: 225},

	// Low priority.
	{Markers: []int{1, 2, 2}, Length: 3, Type: "open", Score: 100},
	{Markers: []int{2, 2, 1}, Length: 3, Type: "open", Score: 100},
}

var defaultCatalog = mustNewCatalog(defaultPatternSpecs)

func DefaultCatalog() *Catalog {
	return defaultCatalog
}
