package server

import (
	"deepduck/communication"
	"deepduck/gamemaster"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"
)

// upgrade resolves the game before the connection is upgraded so unknown
// games get a plain 404.
func (s *Server) upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	session, err := s.master.Game(c.Params("id"))
	if err != nil {
		return err
	}
	c.Locals("session", session)
	return c.Next()
}

// streamGame sends the current position, then every update until either side
// goes away. Messages from the client are ignored.
func (s *Server) streamGame(c *websocket.Conn) {
	session := c.Locals("session").(*gamemaster.Session)
	updates, cancel := session.Subscribe()
	defer cancel()

	logger := log.With().Str("game", session.ID).Logger()
	logger.Debug().Msg("subscriber connected")
	defer logger.Debug().Msg("subscriber disconnected")

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	snapshot := session.Snapshot()
	first := communication.Update{Kind: "state", FEN: snapshot.Board.FEN()}
	if snapshot.Winner != nil {
		first.Winner = snapshot.Winner.String()
	}
	if err := c.WriteJSON(first); err != nil {
		return
	}

	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return
			}
			if err := c.WriteJSON(message(u)); err != nil {
				logger.Debug().Err(err).Msg("write failed")
				return
			}
		case <-closed:
			return
		}
	}
}

func message(u gamemaster.Update) communication.Update {
	msg := communication.Update{
		Kind: string(u.Kind),
		Move: u.Move.String(),
		FEN:  u.Board.FEN(),
	}
	if u.Winner != nil {
		msg.Winner = u.Winner.String()
	}
	return msg
}
