package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"deepduck/communication"
)

// ErrServer is wrapped around every non-2xx answer.
var ErrServer = errors.New("server error")

// Client talks to a deepduck server over its JSON API.
type Client struct {
	serverURL string
	http      *http.Client
}

func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		http:      &http.Client{Timeout: time.Minute},
	}
}

func (c *Client) Analyze(ctx context.Context, fen string, depth int) (communication.AnalyzeResponse, error) {
	var out communication.AnalyzeResponse
	err := c.do(ctx, http.MethodPost, "/api/analyze", communication.AnalyzeRequest{FEN: fen, Depth: depth}, &out)
	return out, err
}

func (c *Client) NewGame(ctx context.Context, fen string) (communication.GameView, error) {
	var out communication.GameView
	err := c.do(ctx, http.MethodPost, "/api/games", communication.NewGameRequest{FEN: fen}, &out)
	return out, err
}

func (c *Client) Game(ctx context.Context, id string) (communication.GameView, error) {
	var out communication.GameView
	err := c.do(ctx, http.MethodGet, "/api/games/"+id, nil, &out)
	return out, err
}

func (c *Client) Play(ctx context.Context, id, move string) (communication.GameView, error) {
	var out communication.GameView
	err := c.do(ctx, http.MethodPost, "/api/games/"+id+"/moves", communication.ActionRequest{Move: move}, &out)
	return out, err
}

func (c *Client) EngineMove(ctx context.Context, id string, depth int) (communication.GameView, error) {
	var out communication.GameView
	err := c.do(ctx, http.MethodPost, "/api/games/"+id+"/engine", communication.EngineRequest{Depth: depth}, &out)
	return out, err
}

func (c *Client) Undo(ctx context.Context, id string) (communication.GameView, error) {
	var out communication.GameView
	err := c.do(ctx, http.MethodPost, "/api/games/"+id+"/undo", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var e communication.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) != nil || e.Error == "" {
			e.Error = resp.Status
		}
		return fmt.Errorf("%w: %s %s: %s", ErrServer, method, path, e.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
