package experiments

import (
	"fmt"

	"deepduck/config"
	"deepduck/engine"
	"deepduck/experiments/metrics"
	"deepduck/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// OpeningPlies random full actions are played before the agents take over, so
// that games between deterministic searchers differ.
const OpeningPlies = 2

// RunDepthExperiment pairs every configured depth against every other, each
// side playing White in turn, and stores the records under cfg.OutDir. It
// returns the directory the records were written to.
func RunDepthExperiment(cfg config.ExperimentsConfig, seed uint64) (string, error) {
	configs := make([]metrics.AgentConfig, 0, len(cfg.Depths))
	for i, depth := range cfg.Depths {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Depth: depth, Cache: true, Intercept: true})
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, white := range configs {
		for _, black := range configs {
			if white.ID != black.ID || len(configs) == 1 {
				matchUps = append(matchUps, []metrics.AgentConfig{white, black})
			}
		}
	}

	return runExperiment("depth", cfg, seed, configs, matchUps)
}

func runExperiment(name string, cfg config.ExperimentsConfig, seed uint64, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	rng := rand.New(rand.NewSource(seed))
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		white, black := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(matchUps), white, black)

		for i := 0; i < cfg.Games; i++ {
			board := randomOpening(rng, game.MustParseFEN(game.StartFEN), OpeningPlies)
			e := engine.LocalEngine(board, white, black)
			if cfg.MaxMoves > 0 {
				e.MaxMoves = cfg.MaxMoves
			}

			winner, gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: mm})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// randomOpening plays plies random full actions on board, stopping early if a
// king falls.
func randomOpening(rng *rand.Rand, board *game.Board, plies int) *game.Board {
	for range plies {
		if _, over := board.Winner(); over {
			break
		}
		moves := game.AvailableMoves(board)
		if len(moves) == 0 {
			break
		}
		m := moves[rng.Intn(len(moves))]

		// The duck may take any square left empty by the move, other than its own
		after := board.CopyAndApply(m)
		ducks := []game.Position{}
		for i := range 64 {
			pos := game.Position{File: i % 8, Rank: i / 8}
			if pos != m.DuckOrigin && (pos == m.Origin || after.Get(pos).Empty()) {
				ducks = append(ducks, pos)
			}
		}
		board.Apply(m.WithDuck(ducks[rng.Intn(len(ducks))]))
	}
	return board
}
