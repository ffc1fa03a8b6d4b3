package engine

import (
	"fmt"
	"time"

	"deepduck/experiments/metrics"
	"deepduck/game"
	"deepduck/meta"
	"deepduck/searcher"

	"github.com/rs/zerolog/log"
)

// Agent chooses the full action for the side to move.
type Agent interface {
	FindMove(board *game.Board) (searcher.Evaluation, metrics.SearchMetric, error)
}

// Engine plays one game between two agents until a king is captured or the
// move limit is reached.
type Engine struct {
	Board    *game.Board
	Agents   map[game.Color]Agent
	MaxMoves int
}

func NewEngine(board *game.Board, white, black Agent) *Engine {
	if white == nil || black == nil {
		panic("need an agent for each side")
	}
	return &Engine{
		Board:    board,
		Agents:   map[game.Color]Agent{game.White: white, game.Black: black},
		MaxMoves: meta.MAX_MOVES,
	}
}

// Run plays until there is a winner. The winner is "" when the move limit was
// reached or the side to move had no action left.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.Active().String(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%s is starting", e.Board.Active())

	step := 1
	for ; step <= e.MaxMoves; step++ {
		if _, over := e.Board.Winner(); over {
			break
		}

		mover := e.Board.Active()
		evaluation, searchMetric, err := e.Agents[mover].FindMove(e.Board)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("%s failed to move at step %d: %w", mover, step, err)
		}
		if evaluation.Movement == nil {
			log.Warn().Msgf("%s has no action at step %d", mover, step)
			break
		}

		e.Board.Apply(*evaluation.Movement)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			Move:         evaluation.Movement.String(),
			Score:        evaluation.Score,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %s played %s (%d)", step, mover, evaluation.Movement, evaluation.Score)
	}

	if winner, ok := e.Board.Winner(); ok {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("game ended with a winner: %s", winner)
	} else {
		log.Info().Msgf("stopped after %d moves (no winner)", len(moveMetrics))
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
