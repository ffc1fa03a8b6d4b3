package game

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrOccupied = errors.New("square already occupied")

// Board is the mutable state of a duck chess game. It is owned by a single
// search or session at a time and never shared between goroutines.
type Board struct {
	squares     [64]Piece
	duck        Position // NoSquare when the duck is off the board
	active      Color
	moveCounter int
}

// NewEmptyBoard returns a board with no pieces and White to move.
func NewEmptyBoard() *Board {
	return &Board{duck: NoSquare, active: White}
}

// NewBoard builds a board from a decoded piece placement and the side to move.
func NewBoard(pieces []Piece, active Color) (*Board, error) {
	if active != White && active != Black {
		return nil, fmt.Errorf("active color must be white or black, got %s", active)
	}
	b := NewEmptyBoard()
	b.active = active
	kings := map[Color]int{}
	for _, piece := range pieces {
		if !piece.Pos.Valid() {
			return nil, fmt.Errorf("%w: %s at (%d, %d)", ErrInvalidPosition, piece.Kind, piece.Pos.File, piece.Pos.Rank)
		}
		if piece.Empty() {
			continue
		}
		if !b.Get(piece.Pos).Empty() {
			return nil, fmt.Errorf("%w: %s", ErrOccupied, piece.Pos)
		}
		switch piece.Kind {
		case Duck:
			if b.duck.Valid() {
				return nil, fmt.Errorf("more than one duck: %s and %s", b.duck, piece.Pos)
			}
			piece.Color = Yellow
		case King:
			kings[piece.Color]++
			if kings[piece.Color] > 1 {
				return nil, fmt.Errorf("more than one %s king", piece.Color)
			}
		}
		b.Set(piece)
	}
	return b, nil
}

// Placement serializes the board back to its decoded fields.
func (b *Board) Placement() ([]Piece, Color) {
	pieces := []Piece{}
	for piece := range b.Pieces() {
		pieces = append(pieces, piece)
	}
	return pieces, b.active
}

func (b *Board) Get(pos Position) Piece {
	return b.squares[pos.Index()]
}

func (b *Board) Clear(pos Position) {
	if b.duck == pos {
		b.duck = NoSquare
	}
	b.squares[pos.Index()] = Piece{}
}

// Set writes the piece at its own position, tracking the duck.
func (b *Board) Set(piece Piece) {
	index := piece.Pos.Index()
	if b.duck == piece.Pos && piece.Kind != Duck {
		b.duck = NoSquare
	}
	if piece.Kind == Duck {
		b.duck = piece.Pos
	}
	b.squares[index] = piece
}

// Duck returns the duck's square and whether it is on the board.
func (b *Board) Duck() (Position, bool) {
	return b.duck, b.duck.Valid()
}

func (b *Board) Active() Color {
	return b.active
}

func (b *Board) MoveCounter() int {
	return b.moveCounter
}

// Pieces yields every occupied square, file varying fastest then rank.
func (b *Board) Pieces() iter.Seq[Piece] {
	return func(yield func(Piece) bool) {
		for _, piece := range b.squares {
			if piece.Empty() {
				continue
			}
			if !yield(piece) {
				return
			}
		}
	}
}

// HasKing reports whether the color still has its king.
func (b *Board) HasKing(color Color) bool {
	for piece := range b.Pieces() {
		if piece.Kind == King && piece.Color == color {
			return true
		}
	}
	return false
}

// Winner returns the color whose opponent lost its king, if any.
func (b *Board) Winner() (Color, bool) {
	white, black := b.HasKing(White), b.HasKing(Black)
	switch {
	case white && !black:
		return White, true
	case black && !white:
		return Black, true
	}
	return White, false
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Apply plays a full turn in place: the piece move, the duck relocation and the
// promotion, then passes the turn.
func (b *Board) Apply(m Movement) {
	b.drag(m.Origin, m.Target)

	if duck, ok := b.Duck(); ok {
		b.Clear(duck)
	}
	if m.DuckTarget.Valid() {
		b.Set(Piece{Pos: m.DuckTarget, Color: Yellow, Kind: Duck})
	}

	if m.Promotion != None {
		piece := b.Get(m.Target)
		piece.Kind = m.Promotion
		b.Set(piece)
	}

	b.active = b.active.Opponent()
	b.moveCounter++
}

// Undo reverts Apply for the same movement.
func (b *Board) Undo(m Movement) {
	b.active = b.active.Opponent()
	b.moveCounter--

	if m.DuckTarget.Valid() {
		b.Clear(m.DuckTarget)
	}

	b.drag(m.Target, m.Origin)
	if m.Promotion != None {
		piece := b.Get(m.Origin)
		piece.Kind = Pawn
		b.Set(piece)
	}
	if m.Captured != None {
		b.Set(Piece{Pos: m.Target, Color: b.active.Opponent(), Kind: m.Captured})
	}

	if m.DuckOrigin.Valid() {
		b.Set(Piece{Pos: m.DuckOrigin, Color: Yellow, Kind: Duck})
	}
}

// CopyAndApply leaves the receiver untouched and returns the board after m.
func (b *Board) CopyAndApply(m Movement) *Board {
	clone := b.Clone()
	clone.Apply(m)
	return clone
}

func (b *Board) drag(origin, target Position) {
	piece := b.Get(origin)
	if piece.Empty() {
		panic(fmt.Sprintf("no piece to move at %s", origin))
	}
	b.Clear(origin)
	piece.Pos = target
	b.Set(piece)
}

// String draws the board from White's side, rank 8 on top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteByte(b.squares[file+8*rank].Symbol())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
