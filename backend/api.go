package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type StatusResponse struct {
	Settings        GameSettings      `json:"settings"`
	Config          Config            `json:"config"`
	Board           [][]int           `json:"board"`
	Status          string            `json:"status"`
	Winner          int               `json:"winner"`
	FreeCells       int               `json:"free_cells"`
	LastHuman       *Move             `json:"last_human,omitempty"`
	LastComputer    *Move             `json:"last_computer,omitempty"`
	WinningLine     []Move            `json:"winning_line"`
	History         []historyEntryDTO `json:"history"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type apiMove struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type historyEntryDTO struct {
	Row       int     `json:"row"`
	Col       int     `json:"col"`
	Stone     int     `json:"stone"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsAi      bool    `json:"is_ai"`
	Score     int     `json:"score,omitempty"`
	Depth     int     `json:"depth,omitempty"`
}

// newRouter wires the REST and websocket endpoints around controller.
func newRouter(controller *GameController, hub *Hub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettings `json:"settings"`
		}
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
				return
			}
		}
		settings := controller.Settings()
		if payload.Settings != nil {
			settings = *payload.Settings
		}
		if err := settings.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		controller.StartGame(settings)
		status := controllerStatus(controller)
		hub.Reset(status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.PlayTurn(Move{Row: payload.Row, Col: payload.Col})
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		status := controllerStatus(controller)
		hub.Status(status)
		if search, ok := controller.LastSearch(); ok {
			hub.Search(search)
		}
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Config *Config `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			updated := GetConfig()
			updated.SearchDepth = clampSearchDepth(payload.Config.SearchDepth)
			updated.SearchWorkers = payload.Config.SearchWorkers
			updated.Debug = payload.Config.Debug
			configStore.Update(updated)
		}
		status := controllerStatus(controller)
		hub.Status(status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Get("/api/search", func(w http.ResponseWriter, r *http.Request) {
		search, ok := controller.LastSearch()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no search recorded, enable debug"})
			return
		}
		writeJSON(w, http.StatusOK, search)
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		componentLogger("backend").Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Msg("request")
	})
}

func controllerStatus(controller *GameController) StatusResponse {
	snap := controller.Snapshot()
	status := StatusResponse{
		Settings:        snap.Settings,
		Config:          GetConfig(),
		Board:           boardToSlice(snap.State.Board),
		Status:          snap.State.Status.String(),
		Winner:          winnerFromStatus(snap.State.Status),
		FreeCells:       snap.State.Board.FreeCount(),
		WinningLine:     snap.State.WinningLine,
		History:         historyToDTO(snap.History),
		TurnStartedAtMs: snap.TurnStartedAtMs,
	}
	if snap.HasLastHuman {
		move := snap.LastHuman
		status.LastHuman = &move
	}
	if snap.HasLastComputer {
		move := snap.LastComputer
		status.LastComputer = &move
	}
	return status
}

func boardToSlice(board Board) [][]int {
	cells := board.Cells()
	rows := make([][]int, len(cells))
	for row, line := range cells {
		rows[row] = make([]int, len(line))
		for col, stone := range line {
			rows[row][col] = int(stone)
		}
	}
	return rows
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusHumanWon:
		return int(HumanStone)
	case StatusComputerWon:
		return int(ComputerStone)
	default:
		return 0
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryDTO{
			Row:       entry.Move.Row,
			Col:       entry.Move.Col,
			Stone:     int(entry.Stone),
			ElapsedMs: entry.ElapsedMs,
			IsAi:      entry.IsAi,
			Score:     entry.Score,
			Depth:     entry.Depth,
		})
	}
	return result
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		componentLogger("backend").Error().Err(err).Msg("marshal websocket payload")
		return nil
	}
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
