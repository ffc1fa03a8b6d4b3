package experiments

import (
	"fmt"

	"deepduck/experiments/metrics"
	"deepduck/game"
	"deepduck/searcher"

	"github.com/rs/zerolog/log"
)

// Strategy is a named searcher configuration compared by the throughput experiment.
type Strategy struct {
	Name    string
	Options []searcher.Option
}

var Strategies = []Strategy{
	{Name: "default"},
	{Name: "cloning", Options: []searcher.Option{searcher.WithCloning()}},
	{Name: "no_cache", Options: []searcher.Option{searcher.WithoutCache()}},
	{Name: "no_interception", Options: []searcher.Option{searcher.WithoutInterception()}},
}

var ThroughputFENs = []string{
	game.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"4k3/8/5r2/2KN4/8/8/8/8 w - - 0 1",
}

// RunThroughputExperiment searches each position at depth with every strategy
// and stores the search metrics under outDir.
func RunThroughputExperiment(outDir string, depth int, fens []string) (string, error) {
	records := []metrics.SearchRecord{}

	log.Info().Msg("starting throughput experiment...")

	for _, fen := range fens {
		board, err := game.ParseFEN(fen)
		if err != nil {
			return "", fmt.Errorf("throughput position: %w", err)
		}
		for _, strategy := range Strategies {
			options := append([]searcher.Option{searcher.WithMetrics()}, strategy.Options...)
			evaluation, metric := searcher.NewNegamax(options...).Analyze(board, depth)

			record := metrics.SearchRecord{Strategy: strategy.Name, FEN: fen, Score: evaluation.Score, SearchMetric: metric}
			if evaluation.Movement != nil {
				record.Move = evaluation.Movement.String()
			}
			records = append(records, record)

			log.Info().Msgf("%s searched %d nodes in %s", strategy.Name, metric.Nodes, metric.Duration)
		}
	}

	writer, err := metrics.NewWriter(outDir, "throughput")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSearchRecords(records); err != nil {
		return "", err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}
