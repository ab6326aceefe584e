package main

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// WinScore outranks any heuristic total the catalog can produce on boards of
// practical size.
const WinScore = 1 << 30

type SearchSettings struct {
	Depth       int
	MatchLength int
	Workers     int
	Catalog     *Catalog
	Stats       *SearchStats
}

type SearchStats struct {
	Start      time.Time
	Elapsed    time.Duration
	Nodes      atomic.Int64
	Leaves     atomic.Int64
	Candidates int
}

// CandidateScore is the searched value of one top-level move.
type CandidateScore struct {
	Move  Move `json:"move"`
	Score int  `json:"score"`
}

type SearchResult struct {
	Move       Move             `json:"move"`
	Score      int              `json:"score"`
	Depth      int              `json:"depth"`
	Candidates []CandidateScore `json:"candidates"`
}

type searchContext struct {
	catalog     *Catalog
	matchLength int
	perspective Stone
	stats       *SearchStats
}

// CandidateMoves lists the free cells in the board's fixed order.
func CandidateMoves(board Board) []Move {
	return board.FreeCells()
}

// ChooseComputerMove searches every free cell for stone in parallel and
// returns the highest scoring one; ties go to the earliest cell in free-list
// order. ok is false when the board is full.
func ChooseComputerMove(board Board, stone Stone, settings SearchSettings) (SearchResult, bool) {
	if settings.Catalog == nil {
		settings.Catalog = DefaultCatalog()
	}
	if settings.Depth < 0 {
		settings.Depth = 0
	}
	stats := settings.Stats
	if stats == nil {
		stats = &SearchStats{}
	}
	stats.Start = time.Now()
	defer func() { stats.Elapsed = time.Since(stats.Start) }()

	candidates := CandidateMoves(board)
	stats.Candidates = len(candidates)
	if len(candidates) == 0 {
		return SearchResult{Move: NoMove, Depth: settings.Depth}, false
	}
	ctx := searchContext{
		catalog:     settings.Catalog,
		matchLength: settings.MatchLength,
		perspective: stone,
		stats:       stats,
	}

	scores := make([]int, len(candidates))
	tasks := make(chan int, len(candidates))
	for i := range candidates {
		tasks <- i
	}
	close(tasks)

	var wg sync.WaitGroup
	for w := 0; w < searchWorkerCount(settings.Workers, len(candidates)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				scores[i] = scoreRootMove(board, candidates[i], settings.Depth, ctx)
			}
		}()
	}
	wg.Wait()

	result := SearchResult{Depth: settings.Depth, Candidates: make([]CandidateScore, len(candidates))}
	best := -1
	for i, move := range candidates {
		result.Candidates[i] = CandidateScore{Move: move, Score: scores[i]}
		if best < 0 || scores[i] > scores[best] {
			best = i
		}
	}
	result.Move = candidates[best]
	result.Score = scores[best]
	return result, true
}

func scoreRootMove(board Board, move Move, depth int, ctx searchContext) int {
	child := board.Clone()
	if err := child.Place(move, ctx.perspective); err != nil {
		// Candidates come from the free list, so this is a defect.
		panic(err)
	}
	ctx.stats.Nodes.Add(1)
	if CompletesRun(child, move, ctx.matchLength) {
		return WinScore + depth + 1
	}
	return searchMinimax(child, depth, false, ctx)
}

// searchMinimax values board for ctx.perspective. At maximizing nodes the
// perspective side moves and the best child is kept; at minimizing nodes the
// opponent moves and the worst child is kept. depth <= 0 is a plain
// evaluation.
func searchMinimax(board Board, depth int, maximizing bool, ctx searchContext) int {
	if depth <= 0 {
		ctx.stats.Leaves.Add(1)
		return EvaluateBoard(board, ctx.catalog, ctx.perspective)
	}
	if HasRun(board, ctx.perspective, ctx.matchLength) {
		return WinScore + depth
	}
	if HasRun(board, ctx.perspective.Opponent(), ctx.matchLength) {
		return -(WinScore + depth)
	}
	moves := CandidateMoves(board)
	if len(moves) == 0 {
		ctx.stats.Leaves.Add(1)
		return EvaluateBoard(board, ctx.catalog, ctx.perspective)
	}

	mover := ctx.perspective
	if !maximizing {
		mover = ctx.perspective.Opponent()
	}
	best := 0
	for i, move := range moves {
		child := board.Clone()
		if err := child.Place(move, mover); err != nil {
			panic(err)
		}
		ctx.stats.Nodes.Add(1)
		var value int
		if CompletesRun(child, move, ctx.matchLength) {
			value = WinScore + depth
			if !maximizing {
				value = -value
			}
		} else {
			value = searchMinimax(child, depth-1, !maximizing, ctx)
		}
		if i == 0 || (maximizing && value > best) || (!maximizing && value < best) {
			best = value
		}
	}
	return best
}

func searchWorkerCount(configured, tasks int) int {
	workers := configured
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > tasks {
		workers = tasks
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
