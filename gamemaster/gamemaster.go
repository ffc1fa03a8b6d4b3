package gamemaster

import (
	"fmt"
	"sync"

	"deepduck/game"
	"deepduck/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GameMaster keeps the sessions of every running game in memory.
type GameMaster struct {
	searcher *searcher.Negamax

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewGameMaster(s *searcher.Negamax) *GameMaster {
	if s == nil {
		s = searcher.NewNegamax()
	}
	return &GameMaster{
		searcher: s,
		sessions: make(map[string]*Session),
	}
}

// NewGame starts a session from fen, or from the standard arrangement when fen is empty.
func (gm *GameMaster) NewGame(fen string) (*Session, error) {
	if fen == "" {
		fen = game.StartFEN
	}
	board, err := game.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	session := NewSession(uuid.NewString(), board, gm.searcher)

	gm.mu.Lock()
	gm.sessions[session.ID] = session
	gm.mu.Unlock()

	log.Info().Str("game", session.ID).Msg("game created")
	return session, nil
}

func (gm *GameMaster) Game(id string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, ok := gm.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return session, nil
}

func (gm *GameMaster) Remove(id string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, ok := gm.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(gm.sessions, id)
	log.Info().Str("game", id).Msg("game removed")
	return nil
}

func (gm *GameMaster) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.sessions)
}
