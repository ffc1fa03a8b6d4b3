package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIllegalMove = errors.New("illegal move")

// Movement is one full turn: a piece goes from Origin to Target, then the duck
// goes from DuckOrigin to DuckTarget. Generated piece-only movements leave
// DuckTarget on Origin until a duck square has been chosen.
type Movement struct {
	Origin     Position
	Target     Position
	DuckOrigin Position
	DuckTarget Position
	Moved      Kind
	Captured   Kind
	Promotion  Kind
}

// WithDuck returns the movement with the duck sent to target.
func (m Movement) WithDuck(target Position) Movement {
	m.DuckTarget = target
	return m
}

// String renders the movement as origin, target, optional promotion letter and
// the duck square, e.g. "e7e8q@d4".
func (m Movement) String() string {
	var sb strings.Builder
	sb.WriteString(m.Origin.String())
	sb.WriteString(m.Target.String())
	if m.Promotion != None {
		sb.WriteByte(Piece{Kind: m.Promotion, Color: Black}.Symbol())
	}
	sb.WriteByte('@')
	sb.WriteString(m.DuckTarget.String())
	return sb.String()
}

var (
	straight = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royal    = append(append([][2]int{}, straight...), diagonal...)
	jumps    = [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// AvailableMoves lists every piece-only movement of the side to move. An empty
// list means the game is over: the side to move has lost its king.
func AvailableMoves(b *Board) []Movement {
	if !b.HasKing(b.Active()) {
		return nil
	}
	moves := []Movement{}
	for piece := range b.Pieces() {
		if piece.Color != b.Active() {
			continue
		}
		moves = append(moves, PieceMoves(b, piece.Pos)...)
	}
	return moves
}

// PieceMoves lists the movements of the piece at origin, with the duck left on
// the vacated origin square.
func PieceMoves(b *Board, origin Position) []Movement {
	piece := b.Get(origin)
	switch piece.Kind {
	case Rook:
		return slideMoves(b, piece, straight)
	case Bishop:
		return slideMoves(b, piece, diagonal)
	case Queen:
		return slideMoves(b, piece, royal)
	case Knight:
		return jumpMoves(b, piece, jumps)
	case King:
		return jumpMoves(b, piece, royal)
	case Pawn:
		return pawnMoves(b, piece)
	case Duck, None:
		return nil
	default:
		panic(fmt.Sprintf("unexpected piece kind %d", piece.Kind))
	}
}

func newMovement(b *Board, piece Piece, target Position) Movement {
	duck, ok := b.Duck()
	if !ok {
		duck = NoSquare
	}
	return Movement{
		Origin:     piece.Pos,
		Target:     target,
		DuckOrigin: duck,
		DuckTarget: piece.Pos,
		Moved:      piece.Kind,
		Captured:   b.Get(target).Kind,
	}
}

// capturable reports whether piece may land on target: empty, or an enemy that is not the duck.
func capturable(b *Board, piece Piece, target Position) bool {
	occupant := b.Get(target)
	return occupant.Empty() || (occupant.Color != piece.Color && occupant.Kind != Duck)
}

func slideMoves(b *Board, piece Piece, directions [][2]int) []Movement {
	moves := []Movement{}
	for _, dir := range directions {
		target := piece.Pos.Offset(dir[0], dir[1])
		for target.Valid() {
			if capturable(b, piece, target) {
				moves = append(moves, newMovement(b, piece, target))
			}
			if !b.Get(target).Empty() {
				break
			}
			target = target.Offset(dir[0], dir[1])
		}
	}
	return moves
}

func jumpMoves(b *Board, piece Piece, offsets [][2]int) []Movement {
	moves := []Movement{}
	for _, offset := range offsets {
		target := piece.Pos.Offset(offset[0], offset[1])
		if target.Valid() && capturable(b, piece, target) {
			moves = append(moves, newMovement(b, piece, target))
		}
	}
	return moves
}

func pawnMoves(b *Board, piece Piece) []Movement {
	forward, startRank, lastRank := 1, 1, 7
	if piece.Color == Black {
		forward, startRank, lastRank = -1, 6, 0
	}

	targets := []Position{}
	one := piece.Pos.Offset(0, forward)
	if one.Valid() && b.Get(one).Empty() {
		targets = append(targets, one)
		two := one.Offset(0, forward)
		if piece.Pos.Rank == startRank && b.Get(two).Empty() {
			targets = append(targets, two)
		}
	}
	for _, side := range []int{-1, 1} {
		target := piece.Pos.Offset(side, forward)
		if !target.Valid() {
			continue
		}
		occupant := b.Get(target)
		if !occupant.Empty() && occupant.Color != piece.Color && occupant.Kind != Duck {
			targets = append(targets, target)
		}
	}

	moves := make([]Movement, 0, len(targets))
	for _, target := range targets {
		move := newMovement(b, piece, target)
		if target.Rank != lastRank {
			moves = append(moves, move)
			continue
		}
		for _, promotion := range []Kind{Knight, Queen} {
			move.Promotion = promotion
			moves = append(moves, move)
		}
	}
	return moves
}

// ValidateAction checks an externally supplied full turn against the board:
// the piece move must be generated for the side to move and the duck must land
// on a different square that is empty once the piece has moved.
func ValidateAction(b *Board, m Movement) (Movement, error) {
	if !m.Origin.Valid() || !m.Target.Valid() || !m.DuckTarget.Valid() {
		return Movement{}, fmt.Errorf("%w: %s is off the board", ErrIllegalMove, m)
	}
	piece := b.Get(m.Origin)
	if piece.Empty() || piece.Color != b.Active() {
		return Movement{}, fmt.Errorf("%w: no %s piece on %s", ErrIllegalMove, b.Active(), m.Origin)
	}

	var matched *Movement
	for _, candidate := range AvailableMoves(b) {
		if candidate.Origin == m.Origin && candidate.Target == m.Target && candidate.Promotion == m.Promotion {
			matched = &candidate
			break
		}
	}
	if matched == nil {
		return Movement{}, fmt.Errorf("%w: %s cannot go from %s to %s", ErrIllegalMove, piece.Kind, m.Origin, m.Target)
	}

	action := matched.WithDuck(m.DuckTarget)
	if action.DuckTarget == action.DuckOrigin {
		return Movement{}, fmt.Errorf("%w: the duck must leave %s", ErrIllegalMove, action.DuckOrigin)
	}
	if action.DuckTarget == action.Target {
		return Movement{}, fmt.Errorf("%w: the duck cannot land on the moved %s", ErrIllegalMove, piece.Kind)
	}
	if action.DuckTarget != action.Origin && !b.Get(action.DuckTarget).Empty() {
		return Movement{}, fmt.Errorf("%w: duck square %s is occupied", ErrIllegalMove, action.DuckTarget)
	}
	return action, nil
}

// ParseMovement reads "e2e4@e3" or "e7e8q@d5" into a movement skeleton that
// ValidateAction completes against a board.
func ParseMovement(s string) (Movement, error) {
	s = strings.TrimSpace(s)
	squares, duck, found := strings.Cut(s, "@")
	if !found || len(squares) < 4 || len(squares) > 5 {
		return Movement{}, fmt.Errorf("%w: %q, expected e.g. e2e4@e3", ErrIllegalMove, s)
	}
	origin, err := ParseSquare(squares[0:2])
	if err != nil {
		return Movement{}, err
	}
	target, err := ParseSquare(squares[2:4])
	if err != nil {
		return Movement{}, err
	}
	duckTarget, err := ParseSquare(duck)
	if err != nil {
		return Movement{}, err
	}

	m := Movement{Origin: origin, Target: target, DuckOrigin: NoSquare, DuckTarget: duckTarget}
	if len(squares) == 5 {
		_, kind, ok := pieceFromSymbol(squares[4])
		if !ok || (kind != Knight && kind != Queen) {
			return Movement{}, fmt.Errorf("%w: promotion %q, expected n or q", ErrIllegalMove, squares[4:])
		}
		m.Promotion = kind
	}
	return m, nil
}
