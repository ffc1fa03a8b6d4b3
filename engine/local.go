package engine

import (
	"deepduck/experiments/metrics"
	"deepduck/game"
	"deepduck/searcher"
)

// SearchAgent runs a negamax search in-process.
type SearchAgent struct {
	Searcher *searcher.Negamax
	Depth    int
}

func (a SearchAgent) FindMove(board *game.Board) (searcher.Evaluation, metrics.SearchMetric, error) {
	evaluation, metric := a.Searcher.Analyze(board, max(a.Depth, 1))
	return evaluation, metric, nil
}

// NewAgent builds a search agent for an experiment configuration.
func NewAgent(config metrics.AgentConfig) SearchAgent {
	options := []searcher.Option{searcher.WithMetrics()}
	if !config.Cache {
		options = append(options, searcher.WithoutCache())
	}
	if !config.Intercept {
		options = append(options, searcher.WithoutInterception())
	}
	return SearchAgent{Searcher: searcher.NewNegamax(options...), Depth: config.Depth}
}

// LocalEngine pits two in-process searchers against each other from board.
func LocalEngine(board *game.Board, white, black metrics.AgentConfig) *Engine {
	return NewEngine(board.Clone(), NewAgent(white), NewAgent(black))
}
