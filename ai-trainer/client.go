package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type backendClient struct {
	http    *http.Client
	baseURL string
}

type moveJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type statusResponse struct {
	Board     [][]int `json:"board"`
	Status    string  `json:"status"`
	Winner    int     `json:"winner"`
	FreeCells int     `json:"free_cells"`
	Settings  struct {
		Height      int `json:"height"`
		Width       int `json:"width"`
		MatchLength int `json:"match_length"`
	} `json:"settings"`
	Config       map[string]any `json:"config"`
	LastComputer *moveJSON      `json:"last_computer,omitempty"`
}

func newBackendClient(baseURL string) *backendClient {
	return &backendClient{
		http:    &http.Client{Timeout: 2 * time.Minute},
		baseURL: baseURL,
	}
}

func (c *backendClient) waitReady(ctx context.Context, timeout, poll time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if err := c.ping(); err == nil {
			return nil
		}
		if !sleepWithContext(ctx, poll) {
			return ctx.Err()
		}
	}
	return fmt.Errorf("backend not ready after %s", timeout)
}

func (c *backendClient) ping() error {
	return c.getJSON("/api/ping", &struct{}{})
}

func (c *backendClient) status() (statusResponse, error) {
	var st statusResponse
	err := c.getJSON("/api/status", &st)
	return st, err
}

func (c *backendClient) startGame() (statusResponse, error) {
	var st statusResponse
	err := c.postJSON("/api/start", map[string]any{}, &st)
	return st, err
}

func (c *backendClient) play(move moveJSON) (statusResponse, error) {
	var st statusResponse
	err := c.postJSON("/api/move", move, &st)
	return st, err
}

// setSearch overrides depth and debug on the backend, keeping its other
// config fields.
func (c *backendClient) setSearch(depth int) error {
	st, err := c.status()
	if err != nil {
		return err
	}
	cfg := st.Config
	if cfg == nil {
		cfg = map[string]any{}
	}
	cfg["search_depth"] = depth
	return c.postJSON("/api/settings", map[string]any{"config": cfg}, nil)
}

func (c *backendClient) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("GET %s -> %d: %s", path, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *backendClient) postJSON(path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("POST %s -> %d: %s", path, resp.StatusCode, string(respBody))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
