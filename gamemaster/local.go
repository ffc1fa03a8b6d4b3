package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"deepduck/game"
	"deepduck/searcher"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrGameOver      = errors.New("game is over")
	ErrNoAction      = errors.New("no action available")
	ErrNothingToUndo = errors.New("nothing to undo")
)

type UpdateKind string

const (
	MoveUpdate UpdateKind = "move"
	UndoUpdate UpdateKind = "undo"
)

// Update describes one change to a session. Board is a private copy.
type Update struct {
	Kind   UpdateKind
	Move   game.Movement
	Board  *game.Board
	Winner *game.Color
}

// Snapshot is a consistent copy of a session's state.
type Snapshot struct {
	ID      string
	Board   *game.Board
	History []game.Movement
	Winner  *game.Color
}

// Session is one game played through the server or the console. All methods
// are safe for concurrent use.
type Session struct {
	ID string

	mu          sync.Mutex
	board       *game.Board
	history     []game.Movement
	searcher    *searcher.Negamax
	subscribers map[int]chan Update
	nextID      int
}

func NewSession(id string, board *game.Board, s *searcher.Negamax) *Session {
	return &Session{
		ID:          id,
		board:       board.Clone(),
		history:     []game.Movement{},
		searcher:    s,
		subscribers: make(map[int]chan Update),
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:      s.ID,
		Board:   s.board.Clone(),
		History: append([]game.Movement{}, s.history...),
		Winner:  winner(s.board),
	}
}

// Play validates a full action from the side to move and applies it.
func (s *Session) Play(m game.Movement) (game.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, over := s.board.Winner(); over {
		return game.Movement{}, ErrGameOver
	}
	action, err := game.ValidateAction(s.board, m)
	if err != nil {
		return game.Movement{}, err
	}
	s.apply(action)
	return action, nil
}

// EngineMove lets the searcher play for the side to move.
func (s *Session) EngineMove(depth int) (searcher.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, over := s.board.Winner(); over {
		return searcher.Evaluation{}, ErrGameOver
	}
	evaluation := s.searcher.Evaluate(s.board, max(depth, 1))
	if evaluation.Movement == nil {
		return evaluation, fmt.Errorf("%w for %s", ErrNoAction, s.board.Active())
	}
	s.apply(*evaluation.Movement)
	return evaluation, nil
}

// Evaluate searches the current position without playing.
func (s *Session) Evaluate(depth int) searcher.Evaluation {
	s.mu.Lock()
	board := s.board.Clone()
	s.mu.Unlock()
	return s.searcher.Evaluate(board, depth)
}

// Undo takes back the last action.
func (s *Session) Undo() (game.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return game.Movement{}, ErrNothingToUndo
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.board.Undo(last)
	s.publish(Update{Kind: UndoUpdate, Move: last, Board: s.board.Clone(), Winner: winner(s.board)})
	return last, nil
}

// Subscribe returns a channel of updates and a function that ends the
// subscription. Slow subscribers miss updates instead of blocking the game.
func (s *Session) Subscribe() (<-chan Update, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Update, 16)
	s.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
			close(ch)
		})
	}
}

func (s *Session) apply(m game.Movement) {
	s.board.Apply(m)
	s.history = append(s.history, m)
	s.publish(Update{Kind: MoveUpdate, Move: m, Board: s.board.Clone(), Winner: winner(s.board)})
}

func (s *Session) publish(u Update) {
	for _, ch := range s.subscribers {
		select {
		case ch <- u:
		default:
		}
	}
}

func winner(b *game.Board) *game.Color {
	if c, ok := b.Winner(); ok {
		return &c
	}
	return nil
}
