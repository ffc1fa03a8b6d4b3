package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const tacticalFEN = "r3k2r/pPp1*ppp/8/8/3n4/8/P1PP1pPP/R3K2R w - - 0 1"

var undoFENs = []string{
	StartFEN,
	tacticalFEN,
	"r3k2r/pPp1*ppp/8/8/3n4/8/P1PP1pPP/R3K2R b - - 0 7",
	"4k3/8/5r2/2KN4/8/8/8/8 w - - 0 1",
	"8/3*4/8/8/8/4K3/8/7k w - - 0 1",
	"3r3r/pp6/2pk1pp1/3p4/5P1p/P5nP/1P4PK/2RB*q2 b - - 0 1",
}

func TestBoardApplyUndo(t *testing.T) {
	for _, fen := range undoFENs {
		t.Run("undo restores "+fen, func(t *testing.T) {
			b := MustParseFEN(fen)
			before := *b

			moves := AvailableMoves(b)
			require.NotEmpty(t, moves, "Position should have legal moves")
			for _, move := range moves {
				b.Apply(move)
				require.Equal(t, before.active.Opponent(), b.Active(), "Apply should pass the turn")
				require.Equal(t, before.moveCounter+1, b.MoveCounter(), "Apply should count the move")
				b.Undo(move)
				require.Equal(t, before, *b, "Undo should restore the board after %s", move)
			}
		})

		t.Run("copy and apply leaves the parent untouched "+fen, func(t *testing.T) {
			b := MustParseFEN(fen)
			before := *b

			for _, move := range AvailableMoves(b) {
				mutated := b.Clone()
				mutated.Apply(move)
				copied := b.CopyAndApply(move)

				require.Equal(t, *mutated, *copied, "Both paths should produce the same board after %s", move)
				require.Equal(t, before, *b, "Parent board should not change")
			}
		})
	}
}

func TestBoardApply(t *testing.T) {
	t.Run("moving a piece drags it and relocates the duck", func(t *testing.T) {
		b := MustParseFEN("4k3/8/8/8/8/2*5/8/R3K3 w - - 0 1")
		a1, _ := ParseSquare("a1")
		a7, _ := ParseSquare("a7")
		c3, _ := ParseSquare("c3")
		h5, _ := ParseSquare("h5")
		move := Movement{Origin: a1, Target: a7, DuckOrigin: c3, DuckTarget: h5, Moved: Rook}

		b.Apply(move)

		require.True(t, b.Get(a1).Empty(), "Origin should be empty")
		require.Equal(t, Piece{Pos: a7, Color: White, Kind: Rook}, b.Get(a7), "Rook should stand on its target")
		require.True(t, b.Get(c3).Empty(), "Old duck square should be empty")
		duck, ok := b.Duck()
		require.True(t, ok, "Duck should still be on the board")
		require.Equal(t, h5, duck, "Duck should be on its new square")
		require.Equal(t, Duck, b.Get(h5).Kind, "Duck square should hold the duck")
		require.Equal(t, Black, b.Active(), "Turn should pass to black")
	})

	t.Run("a duck target of no square removes the duck", func(t *testing.T) {
		b := MustParseFEN("4k3/8/8/8/8/2*5/8/R3K3 w - - 0 1")
		before := *b
		a1, _ := ParseSquare("a1")
		a2, _ := ParseSquare("a2")
		c3, _ := ParseSquare("c3")
		move := Movement{Origin: a1, Target: a2, DuckOrigin: c3, DuckTarget: NoSquare, Moved: Rook}

		b.Apply(move)
		_, ok := b.Duck()
		require.False(t, ok, "Duck should be gone")

		b.Undo(move)
		require.Equal(t, before, *b, "Undo should put the duck back")
	})

	t.Run("promotion rewrites the pawn and undo reverts it", func(t *testing.T) {
		b := MustParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
		before := *b
		a7, _ := ParseSquare("a7")
		a8, _ := ParseSquare("a8")
		move := Movement{Origin: a7, Target: a8, DuckOrigin: NoSquare, DuckTarget: a7, Moved: Pawn, Promotion: Queen}

		b.Apply(move)
		require.Equal(t, Queen, b.Get(a8).Kind, "Pawn should be promoted")

		b.Undo(move)
		require.Equal(t, before, *b, "Undo should restore the pawn")
	})
}

func TestNewBoard(t *testing.T) {
	e1 := Position{File: 4, Rank: 0}
	e8 := Position{File: 4, Rank: 7}
	d4 := Position{File: 3, Rank: 3}

	t.Run("round trips its placement", func(t *testing.T) {
		pieces := []Piece{
			{Pos: e1, Color: White, Kind: King},
			{Pos: d4, Color: Yellow, Kind: Duck},
			{Pos: e8, Color: Black, Kind: King},
		}
		b, err := NewBoard(pieces, Black)
		require.NoError(t, err)

		gotPieces, gotActive := b.Placement()
		require.Equal(t, pieces, gotPieces, "Placement should list pieces in square order")
		require.Equal(t, Black, gotActive)
		duck, ok := b.Duck()
		require.True(t, ok)
		require.Equal(t, d4, duck, "Duck index should be tracked")
	})

	t.Run("rejects two pieces on one square", func(t *testing.T) {
		_, err := NewBoard([]Piece{{Pos: e1, Color: White, Kind: King}, {Pos: e1, Color: Black, Kind: Rook}}, White)
		require.ErrorIs(t, err, ErrOccupied)
	})

	t.Run("rejects off-board pieces", func(t *testing.T) {
		_, err := NewBoard([]Piece{{Pos: Position{File: 8, Rank: 0}, Color: White, Kind: King}}, White)
		require.ErrorIs(t, err, ErrInvalidPosition)
	})

	t.Run("rejects two kings of one color", func(t *testing.T) {
		_, err := NewBoard([]Piece{{Pos: e1, Color: White, Kind: King}, {Pos: e8, Color: White, Kind: King}}, White)
		require.Error(t, err)
	})

	t.Run("rejects the duck as the side to move", func(t *testing.T) {
		_, err := NewBoard(nil, Yellow)
		require.Error(t, err)
	})
}

func TestPosition(t *testing.T) {
	t.Run("rejects off-board coordinates", func(t *testing.T) {
		for _, coords := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
			_, err := NewPosition(coords[0], coords[1])
			require.ErrorIs(t, err, ErrInvalidPosition, "(%d, %d) should be rejected", coords[0], coords[1])
		}
	})

	t.Run("panics when indexing an invalid position", func(t *testing.T) {
		require.Panics(t, func() { NoSquare.Index() })
		require.Panics(t, func() { NewEmptyBoard().Get(Position{File: 0, Rank: 8}) })
	})

	t.Run("parses and prints algebraic squares", func(t *testing.T) {
		pos, err := ParseSquare("e4")
		require.NoError(t, err)
		require.Equal(t, Position{File: 4, Rank: 3}, pos)
		require.Equal(t, "e4", pos.String())
		require.Equal(t, 28, pos.Index())

		_, err = ParseSquare("i9")
		require.ErrorIs(t, err, ErrInvalidPosition)
	})
}

func TestBoardPieces(t *testing.T) {
	t.Run("yields pieces file first then rank and can be restarted", func(t *testing.T) {
		b := MustParseFEN("4k3/8/8/8/8/8/8/R3K2R w - - 0 1")

		first := []string{}
		for piece := range b.Pieces() {
			first = append(first, piece.Pos.String())
		}
		second := []string{}
		for piece := range b.Pieces() {
			second = append(second, piece.Pos.String())
		}

		require.Equal(t, []string{"a1", "e1", "h1", "e8"}, first)
		require.Equal(t, first, second, "Traversal should be restartable")
	})

	t.Run("reports the winner once a king is gone", func(t *testing.T) {
		b := MustParseFEN("8/8/8/8/8/8/8/R3K3 b - - 0 1")
		winner, ok := b.Winner()
		require.True(t, ok)
		require.Equal(t, White, winner)

		_, ok = MustParseFEN(StartFEN).Winner()
		require.False(t, ok, "Both kings on the board means no winner")
	})
}
