package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *GameController, *Hub) {
	t.Helper()
	withConfig(t, func(c *Config) {
		c.SearchDepth = 0
		c.Debug = false
	})
	controller := NewGameController(smallSettings(), nil)
	hub := NewHub()
	server := httptest.NewServer(newRouter(controller, hub))
	t.Cleanup(server.Close)
	return server, controller, hub
}

func postJSON(t *testing.T, url string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestPingAndStatus(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/ping")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	require.Equal(t, "running", status.Status)
	require.Len(t, status.Board, 6)
	require.Equal(t, 36, status.FreeCells)
	require.Nil(t, status.LastHuman)
}

func TestMoveEndpoint(t *testing.T) {
	server, controller, _ := newTestServer(t)

	resp, out := postJSON(t, server.URL+"/api/move", apiMove{Row: 3, Col: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(34), out["free_cells"])
	require.Len(t, out["history"], 2)
	require.Equal(t, map[string]any{"row": float64(3), "col": float64(3)}, out["last_human"])
	require.NotNil(t, out["last_computer"])

	resp, out = postJSON(t, server.URL+"/api/move", apiMove{Row: 3, Col: 3})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "occupied", out["error"])

	resp, out = postJSON(t, server.URL+"/api/move", apiMove{Row: -1, Col: 0})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "out of bounds", out["error"])
	require.Equal(t, 2, controller.Snapshot().History.Size())
}

func TestStartEndpoint(t *testing.T) {
	server, controller, _ := newTestServer(t)
	applied, _ := controller.PlayTurn(Move{Row: 0, Col: 0})
	require.True(t, applied)

	resp, out := postJSON(t, server.URL+"/api/start", map[string]any{
		"settings": GameSettings{Height: 9, Width: 9, MatchLength: 5},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(81), out["free_cells"])
	require.Zero(t, controller.Snapshot().History.Size())

	resp, out = postJSON(t, server.URL+"/api/start", map[string]any{
		"settings": GameSettings{Height: 3, Width: 3, MatchLength: 5},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, out["error"], "does not fit")
	require.Equal(t, 9, controller.Settings().Height)
}

func TestSettingsAndSearchEndpoints(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/search")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = postJSON(t, server.URL+"/api/settings", map[string]any{
		"config": map[string]any{"search_depth": -4, "search_workers": 2, "debug": true},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cfg := GetConfig()
	require.Zero(t, cfg.SearchDepth)
	require.Equal(t, 2, cfg.SearchWorkers)
	require.True(t, cfg.Debug)

	resp, _ = postJSON(t, server.URL+"/api/move", apiMove{Row: 1, Col: 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/search")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var search SearchResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&search))
	require.Len(t, search.Candidates, 35)
}

func TestMoveEndpointRejectsBadPayload(t *testing.T) {
	server, _, _ := newTestServer(t)
	resp, err := http.Post(server.URL+"/api/move", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSettingsAndStartEnforceLimits(t *testing.T) {
	server, controller, _ := newTestServer(t)

	resp, _ := postJSON(t, server.URL+"/api/settings", map[string]any{
		"config": map[string]any{"search_depth": 12},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, maxSearchDepth, GetConfig().SearchDepth)

	resp, out := postJSON(t, server.URL+"/api/start", map[string]any{
		"settings": GameSettings{Height: 100000, Width: 100000, MatchLength: 5},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, out["error"], "exceeds")
	require.Equal(t, smallSettings(), controller.Settings())
}
