package game

import (
	"errors"
	"fmt"
)

var ErrInvalidPosition = errors.New("invalid position")

// Position is a square on the board: file 0-7 (a-h), rank 0-7 (1-8).
type Position struct {
	File int
	Rank int
}

// NoSquare marks an absent square (no duck yet, duck removed). It must never be indexed.
var NoSquare = Position{File: -1, Rank: -1}

// NewPosition validates the coordinates before handing out a Position.
func NewPosition(file, rank int) (Position, error) {
	pos := Position{File: file, Rank: rank}
	if !pos.Valid() {
		return NoSquare, fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, file, rank)
	}
	return pos, nil
}

// ParseSquare reads a square in algebraic form, e.g. "e4".
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return NewPosition(int(s[0])-'a', int(s[1])-'1')
}

func (p Position) Valid() bool {
	return p.File >= 0 && p.File < 8 && p.Rank >= 0 && p.Rank < 8
}

// Index maps the position to its slot in the board array. Callers must validate first.
func (p Position) Index() int {
	if !p.Valid() {
		panic(fmt.Sprintf("indexing off-board position (%d, %d)", p.File, p.Rank))
	}
	return p.File + 8*p.Rank
}

// Offset returns the position shifted by (df, dr); the result may be off-board.
func (p Position) Offset(df, dr int) Position {
	return Position{File: p.File + df, Rank: p.Rank + dr}
}

func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + p.File), byte('1' + p.Rank)})
}

type Color int

const (
	White Color = iota
	Black
	Yellow // Owner of the duck, never a mover
)

func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		panic("the duck has no opponent")
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "yellow"
	}
}

type Kind int

const (
	None Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	Duck
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Duck:
		return "duck"
	default:
		return "none"
	}
}

// Piece is the content of a square. The zero Piece is an empty square.
type Piece struct {
	Pos   Position
	Color Color
	Kind  Kind
}

func (p Piece) Empty() bool {
	return p.Kind == None
}

// Symbol returns the FEN letter of the piece ('*' for the duck).
func (p Piece) Symbol() byte {
	var symbol byte
	switch p.Kind {
	case Pawn:
		symbol = 'p'
	case Rook:
		symbol = 'r'
	case Knight:
		symbol = 'n'
	case Bishop:
		symbol = 'b'
	case Queen:
		symbol = 'q'
	case King:
		symbol = 'k'
	case Duck:
		return '*'
	default:
		return '.'
	}
	if p.Color == White {
		symbol -= 'a' - 'A'
	}
	return symbol
}

func pieceFromSymbol(symbol byte) (Color, Kind, bool) {
	if symbol == '*' {
		return Yellow, Duck, true
	}
	color := Black
	if symbol >= 'A' && symbol <= 'Z' {
		color = White
		symbol += 'a' - 'A'
	}
	switch symbol {
	case 'p':
		return color, Pawn, true
	case 'r':
		return color, Rook, true
	case 'n':
		return color, Knight, true
	case 'b':
		return color, Bishop, true
	case 'q':
		return color, Queen, true
	case 'k':
		return color, King, true
	}
	return White, None, false
}
