package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deepduck/communication/server"
	"deepduck/config"
	"deepduck/engine"
	"deepduck/experiments"
	"deepduck/experiments/metrics"
	"deepduck/game"
	"deepduck/gamemaster"
	"deepduck/player"
	"deepduck/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "shell", "One of shell, serve, selfplay, remote, experiment, throughput, perft")
	configPath := flag.String("config", "deepduck.yaml", "Path to the YAML configuration")
	depth := flag.Int("depth", 0, "Search depth, overrides the configuration")
	fen := flag.String("fen", game.StartFEN, "Starting position")
	white := flag.String("white", "", "Server URL playing White in remote mode")
	black := flag.String("black", "", "Server URL playing Black in remote mode")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	if *depth > 0 {
		cfg.Depth = *depth
	}

	if err := run(*mode, cfg, *fen, *white, *black); err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("failed")
	}
}

func run(mode string, cfg config.Config, fen, white, black string) error {
	s := searcher.NewNegamax(searcher.WithSeed(cfg.Seed), searcher.WithMetrics())

	switch mode {
	case "shell":
		console, err := player.NewConsole(os.Stdin, os.Stdout, gamemaster.NewGameMaster(s), cfg.Depth)
		if err != nil {
			return err
		}
		return console.Run()

	case "serve":
		srv := server.New(gamemaster.NewGameMaster(s), s, cfg.Server, cfg.Depth)
		go func() {
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			log.Info().Msg("shutting down")
			if err := srv.Shutdown(); err != nil {
				log.Error().Err(err).Msg("shutdown failed")
			}
		}()
		return srv.Listen(cfg.Server.Addr)

	case "selfplay":
		board, err := game.ParseFEN(fen)
		if err != nil {
			return err
		}
		agent := metrics.AgentConfig{ID: 1, Depth: cfg.Depth, Cache: true, Intercept: true}
		e := engine.LocalEngine(board, agent, agent)
		e.MaxMoves = cfg.Experiments.MaxMoves
		return report(e)

	case "remote":
		if white == "" || black == "" {
			return fmt.Errorf("remote mode needs -white and -black server URLs")
		}
		board, err := game.ParseFEN(fen)
		if err != nil {
			return err
		}
		e := engine.RemoteEngine(board, white, black, cfg.Depth)
		e.MaxMoves = cfg.Experiments.MaxMoves
		return report(e)

	case "experiment":
		_, err := experiments.RunDepthExperiment(cfg.Experiments, cfg.Seed)
		return err

	case "throughput":
		_, err := experiments.RunThroughputExperiment(cfg.Experiments.OutDir, cfg.Depth, experiments.ThroughputFENs)
		return err

	case "perft":
		board, err := game.ParseFEN(fen)
		if err != nil {
			return err
		}
		for d := 1; d <= cfg.Depth; d++ {
			start := time.Now()
			nodes := game.Perft(board, d)
			fmt.Printf("depth %d: %d nodes in %s\n", d, nodes, time.Since(start))
		}
		return nil

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

func report(e *engine.Engine) error {
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	fmt.Println(e.Board)
	if winner == "" {
		winner = "nobody"
	}
	fmt.Printf("%s won after %d moves in %s\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}
