package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerft(t *testing.T) {
	t.Run("matches reference counts from the start position", func(t *testing.T) {
		b := MustParseFEN(StartFEN)
		before := *b

		require.Equal(t, 20, Perft(b, 1))
		require.Equal(t, 400, Perft(b, 2))
		require.Equal(t, 8902, Perft(b, 3))
		require.Equal(t, before, *b, "Perft should leave the board as it found it")
	})

	t.Run("mutate and clone enumeration agree", func(t *testing.T) {
		for _, fen := range undoFENs {
			b := MustParseFEN(fen)
			require.Equal(t, PerftClone(b, 3), Perft(b, 3), "Perft mismatch for %s", fen)
		}
	})
}
