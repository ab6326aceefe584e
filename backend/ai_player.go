package main

import "sync"

type AIPlayer struct {
	stone      Stone
	catalog    *Catalog
	searchMu   sync.Mutex
	lastSearch SearchResult
	hasSearch  bool
}

func NewAIPlayer(stone Stone, catalog *Catalog) *AIPlayer {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &AIPlayer{stone: stone, catalog: catalog}
}

// ChooseMove runs the search against the current config. The per-candidate
// scores are kept only when debug is on.
func (a *AIPlayer) ChooseMove(board Board, rules Rules) (SearchResult, bool) {
	config := GetConfig()
	stats := &SearchStats{}
	settings := SearchSettings{
		Depth:       config.SearchDepth,
		MatchLength: rules.MatchLength(),
		Workers:     config.SearchWorkers,
		Catalog:     a.catalog,
		Stats:       stats,
	}
	result, ok := ChooseComputerMove(board, a.stone, settings)
	logSearchStats("choose", stats, settings, result, ok)
	if config.Debug {
		logCandidateScores(result)
	}

	a.searchMu.Lock()
	if config.Debug && ok {
		a.lastSearch = result
		a.hasSearch = true
	} else {
		a.lastSearch = SearchResult{}
		a.hasSearch = false
	}
	a.searchMu.Unlock()
	return result, ok
}

func (a *AIPlayer) LastSearch() (SearchResult, bool) {
	a.searchMu.Lock()
	defer a.searchMu.Unlock()
	if !a.hasSearch {
		return SearchResult{}, false
	}
	out := a.lastSearch
	out.Candidates = append([]CandidateScore(nil), a.lastSearch.Candidates...)
	return out, true
}

func (a *AIPlayer) Reset() {
	a.searchMu.Lock()
	a.lastSearch = SearchResult{}
	a.hasSearch = false
	a.searchMu.Unlock()
}

func logSearchStats(tag string, stats *SearchStats, settings SearchSettings, result SearchResult, ok bool) {
	if stats == nil {
		return
	}
	logger := componentLogger("ai")
	if !ok {
		logger.Debug().Str("tag", tag).Msg("no free cell, nothing to search")
		return
	}
	nps := 0.0
	if stats.Elapsed > 0 {
		nps = float64(stats.Nodes.Load()) / stats.Elapsed.Seconds()
	}
	logger.Debug().
		Str("tag", tag).
		Int("depth", settings.Depth).
		Int("candidates", stats.Candidates).
		Int64("nodes", stats.Nodes.Load()).
		Int64("leaves", stats.Leaves.Load()).
		Float64("nps", nps).
		Dur("elapsed", stats.Elapsed).
		Int("row", result.Move.Row).
		Int("col", result.Move.Col).
		Int("score", result.Score).
		Msg("search complete")
}

func logCandidateScores(result SearchResult) {
	logger := componentLogger("ai")
	for i, candidate := range result.Candidates {
		logger.Info().
			Int("index", i).
			Int("row", candidate.Move.Row).
			Int("col", candidate.Move.Col).
			Int("score", candidate.Score).
			Msg("candidate")
	}
}
