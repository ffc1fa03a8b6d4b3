package server

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"deepduck/communication"
	"deepduck/config"
	"deepduck/game"
	"deepduck/gamemaster"
	"deepduck/searcher"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"
)

// Server exposes analysis and game sessions over HTTP and pushes game updates
// over websockets.
type Server struct {
	app      *fiber.App
	master   *gamemaster.GameMaster
	searcher *searcher.Negamax
	slots    chan struct{} // Bounds concurrent searches
	depth    int
	maxDepth int
}

func New(master *gamemaster.GameMaster, s *searcher.Negamax, cfg config.ServerConfig, depth int) *Server {
	srv := &Server{
		master:   master,
		searcher: s,
		slots:    make(chan struct{}, max(cfg.MaxSearches, 1)),
		depth:    max(depth, 1),
		maxDepth: max(cfg.MaxDepth, 1),
	}

	app := fiber.New(fiber.Config{
		AppName:               "deepduck",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ", "),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	app.Use(requestLogger())

	api := app.Group("/api")
	api.Post("/analyze", srv.analyze)
	api.Get("/perft", srv.perft)

	games := api.Group("/games")
	games.Post("/", srv.createGame)
	games.Get("/:id", srv.getGame)
	games.Delete("/:id", srv.deleteGame)
	games.Post("/:id/moves", srv.playMove)
	games.Post("/:id/engine", srv.engineMove)
	games.Post("/:id/undo", srv.undoMove)

	app.Get("/ws/games/:id", srv.upgrade, websocket.New(srv.streamGame))

	srv.app = app
	return srv
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	log.Info().Msgf("listening on %s", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// acquire blocks until a search slot is free and returns its release.
func (s *Server) acquire() func() {
	s.slots <- struct{}{}
	return func() { <-s.slots }
}

func (s *Server) resolveDepth(requested int) (int, error) {
	if requested == 0 {
		return min(s.depth, s.maxDepth), nil
	}
	if requested < 1 || requested > s.maxDepth {
		return 0, fiber.NewError(fiber.StatusBadRequest, "depth must be between 1 and "+strconv.Itoa(s.maxDepth))
	}
	return requested, nil
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("request")
		return err
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		status = fe.Code
	case errors.Is(err, gamemaster.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrInvalidFEN), errors.Is(err, game.ErrInvalidPosition):
		status = fiber.StatusBadRequest
	case errors.Is(err, gamemaster.ErrGameOver), errors.Is(err, gamemaster.ErrNoAction), errors.Is(err, gamemaster.ErrNothingToUndo):
		status = fiber.StatusConflict
	}

	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(status).JSON(communication.ErrorResponse{Error: err.Error()})
}
