package engine

import (
	"context"
	"fmt"
	"time"

	"deepduck/communication/client"
	"deepduck/experiments/metrics"
	"deepduck/game"
	"deepduck/searcher"
)

// RemoteAgent asks a deepduck server to analyze each position. Answers are
// checked against the local board before they are played.
type RemoteAgent struct {
	Client *client.Client
	Depth  int
}

func (a RemoteAgent) FindMove(board *game.Board) (searcher.Evaluation, metrics.SearchMetric, error) {
	start := time.Now()
	resp, err := a.Client.Analyze(context.Background(), board.FEN(), max(a.Depth, 1))
	if err != nil {
		return searcher.Evaluation{}, metrics.SearchMetric{}, err
	}
	metric := metrics.SearchMetric{Depth: resp.Depth, Nodes: resp.Nodes, Duration: time.Since(start)}
	if resp.Move == "" {
		return searcher.Evaluation{Score: resp.Score}, metric, nil
	}

	skeleton, err := game.ParseMovement(resp.Move)
	if err != nil {
		return searcher.Evaluation{}, metric, fmt.Errorf("agent answered %q: %w", resp.Move, err)
	}
	move, err := game.ValidateAction(board, skeleton)
	if err != nil {
		return searcher.Evaluation{}, metric, fmt.Errorf("agent answered %q: %w", resp.Move, err)
	}
	return searcher.Evaluation{Movement: &move, Score: resp.Score, Depth: resp.Depth}, metric, nil
}

// RemoteEngine plays a game between the servers at whiteURL and blackURL.
func RemoteEngine(board *game.Board, whiteURL, blackURL string, depth int) *Engine {
	return NewEngine(
		board.Clone(),
		RemoteAgent{Client: client.NewClient(whiteURL), Depth: depth},
		RemoteAgent{Client: client.NewClient(blackURL), Depth: depth},
	)
}
