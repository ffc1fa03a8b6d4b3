package server

import (
	"deepduck/communication"
	"deepduck/game"
	"deepduck/gamemaster"
	"deepduck/searcher"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) analyze(c *fiber.Ctx) error {
	var req communication.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body: "+err.Error())
	}
	board, err := game.ParseFEN(req.FEN)
	if err != nil {
		return err
	}
	depth, err := s.resolveDepth(req.Depth)
	if err != nil {
		return err
	}

	release := s.acquire()
	evaluation, metric := s.searcher.Analyze(board, depth)
	release()

	resp := communication.AnalyzeResponse{
		Score:    evaluation.Score,
		Depth:    depth,
		Nodes:    metric.Nodes,
		Duration: metric.Duration.String(),
		Mate:     mate(evaluation),
	}
	if evaluation.Movement != nil {
		resp.Move = evaluation.Movement.String()
	}
	return c.JSON(resp)
}

func (s *Server) perft(c *fiber.Ctx) error {
	fen := c.Query("fen", game.StartFEN)
	board, err := game.ParseFEN(fen)
	if err != nil {
		return err
	}
	depth, err := s.resolveDepth(c.QueryInt("depth", 1))
	if err != nil {
		return err
	}

	release := s.acquire()
	nodes := game.Perft(board, depth)
	release()

	return c.JSON(communication.PerftResponse{FEN: board.FEN(), Depth: depth, Nodes: nodes})
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req communication.NewGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body: "+err.Error())
		}
	}
	session, err := s.master.NewGame(req.FEN)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(view(session.Snapshot()))
}

func (s *Server) getGame(c *fiber.Ctx) error {
	session, err := s.master.Game(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(view(session.Snapshot()))
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.master.Remove(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) playMove(c *fiber.Ctx) error {
	session, err := s.master.Game(c.Params("id"))
	if err != nil {
		return err
	}
	var req communication.ActionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body: "+err.Error())
	}
	m, err := game.ParseMovement(req.Move)
	if err != nil {
		return err
	}
	if _, err := session.Play(m); err != nil {
		return err
	}
	return c.JSON(view(session.Snapshot()))
}

func (s *Server) engineMove(c *fiber.Ctx) error {
	session, err := s.master.Game(c.Params("id"))
	if err != nil {
		return err
	}
	var req communication.EngineRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body: "+err.Error())
		}
	}
	depth, err := s.resolveDepth(req.Depth)
	if err != nil {
		return err
	}

	release := s.acquire()
	_, err = session.EngineMove(depth)
	release()
	if err != nil {
		return err
	}
	return c.JSON(view(session.Snapshot()))
}

func (s *Server) undoMove(c *fiber.Ctx) error {
	session, err := s.master.Game(c.Params("id"))
	if err != nil {
		return err
	}
	if _, err := session.Undo(); err != nil {
		return err
	}
	return c.JSON(view(session.Snapshot()))
}

func view(snapshot gamemaster.Snapshot) communication.GameView {
	history := make([]string, 0, len(snapshot.History))
	for _, m := range snapshot.History {
		history = append(history, m.String())
	}
	v := communication.GameView{
		ID:      snapshot.ID,
		FEN:     snapshot.Board.FEN(),
		Active:  snapshot.Board.Active().String(),
		History: history,
	}
	if snapshot.Winner != nil {
		v.Winner = snapshot.Winner.String()
	}
	return v
}

func mate(e searcher.Evaluation) *int {
	if plies, ok := e.Mate(); ok {
		return &plies
	}
	return nil
}
