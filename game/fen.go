package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// StartFEN is the standard arrangement, with the duck not yet placed.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ParseFEN decodes the placement and active color fields. The duck is written
// as '*'. Castling, en passant and the clocks are accepted but ignored, except
// the full-move number which seeds the move counter.
func ParseFEN(notation string) (*Board, error) {
	fields := strings.Fields(notation)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: %q needs placement and active color", ErrInvalidFEN, notation)
	}

	pieces, err := decodePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	var active Color
	switch fields[1] {
	case "w":
		active = White
	case "b":
		active = Black
	default:
		return nil, fmt.Errorf("%w: active color %q", ErrInvalidFEN, fields[1])
	}

	b, err := NewBoard(pieces, active)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}

	if len(fields) >= 6 {
		if fullMove, err := strconv.Atoi(fields[5]); err == nil && fullMove > 0 {
			b.moveCounter = 2 * (fullMove - 1)
			if active == Black {
				b.moveCounter++
			}
		}
	}
	return b, nil
}

// MustParseFEN is ParseFEN for notation known to be valid.
func MustParseFEN(notation string) *Board {
	b, err := ParseFEN(notation)
	if err != nil {
		panic(err)
	}
	return b
}

func decodePlacement(placement string) ([]Piece, error) {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("%w: %d ranks in %q", ErrInvalidFEN, len(rows), placement)
	}

	pieces := []Piece{}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			color, kind, ok := pieceFromSymbol(c)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, c)
			}
			pos, err := NewPosition(file, rank)
			if err != nil {
				return nil, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			pieces = append(pieces, Piece{Pos: pos, Color: color, Kind: kind})
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}
	return pieces, nil
}

// FEN encodes the board. Castling and en passant are not modelled and always read "-".
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.squares[file+8*rank]
			if piece.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	color := "w"
	if b.active == Black {
		color = "b"
	}
	fmt.Fprintf(&sb, " %s - - 0 %d", color, b.moveCounter/2+1)
	return sb.String()
}
