package player

import (
	"bytes"
	"strings"
	"testing"

	"deepduck/game"
	"deepduck/gamemaster"

	"github.com/stretchr/testify/require"
)

func newConsole(t *testing.T, input string) (*Console, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	c, err := NewConsole(strings.NewReader(input), out, gamemaster.NewGameMaster(nil), 2)
	require.NoError(t, err)
	return c, out
}

func TestConsole(t *testing.T) {
	t.Run("runs until exit", func(t *testing.T) {
		c, out := newConsole(t, "board\nexit\nboard\n")

		require.NoError(t, c.Run())

		require.Contains(t, out.String(), "These are the available commands")
		require.Equal(t, 1, strings.Count(out.String(), "a b c d e f g h"), "Commands after exit are not read")
	})

	t.Run("stops at the end of input", func(t *testing.T) {
		c, _ := newConsole(t, "help\n")

		require.NoError(t, c.Run())
	})

	t.Run("rejects unknown commands", func(t *testing.T) {
		c, out := newConsole(t, "")

		require.False(t, c.Execute("castle"))
		require.False(t, c.Execute("depth many"))
		require.False(t, c.Execute("   "))

		require.Equal(t, 2, strings.Count(out.String(), "Invalid command"))
	})

	t.Run("plays, prints and takes back actions", func(t *testing.T) {
		c, out := newConsole(t, "")

		c.Execute("move e2e4@e6")
		c.Execute("fen")
		require.Contains(t, out.String(), "rnbqkbnr/pppppppp/4*3/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1")

		c.Execute("undo")
		require.Contains(t, out.String(), "Took back e2e4@e6")
		require.Equal(t, game.StartFEN, c.session.Snapshot().Board.FEN())

		c.Execute("move e2e4@d2")
		require.Contains(t, out.String(), "illegal move")
	})

	t.Run("loads positions and lets the engine move", func(t *testing.T) {
		c, out := newConsole(t, "")

		c.Execute("fen 8/8/8/R6k/8/8/8/K2*4 w - - 0 1")
		c.Execute("suggest")
		require.Contains(t, out.String(), "Move: a5 to h5")

		c.Execute("play")
		require.Contains(t, out.String(), "Computer moved: a5 to h5")
		require.Contains(t, out.String(), "white wins")

		c.Execute("play")
		require.Contains(t, out.String(), "There are no movements for this position.")
	})

	t.Run("reports a mate for the side that has it", func(t *testing.T) {
		c, out := newConsole(t, "")

		c.Execute("fen 8/8/8/r6K/8/8/8/k2*4 b - - 0 1")
		c.Execute("evaluate")

		require.Contains(t, out.String(), "Black has a mate")
		require.Contains(t, out.String(), strings.Repeat("○", 20))
	})

	t.Run("restart keeps a single game alive", func(t *testing.T) {
		c, _ := newConsole(t, "")

		c.Execute("fen 8/8/8/R6k/8/8/8/K2*4 w - - 0 1")
		c.Execute("restart")

		require.Equal(t, game.StartFEN, c.session.Snapshot().Board.FEN())
		require.Equal(t, 1, c.master.Len())
	})

	t.Run("changes the depth", func(t *testing.T) {
		c, out := newConsole(t, "")

		c.Execute("depth 3")
		c.Execute("depth")
		require.Contains(t, out.String(), "Depth: 3")

		c.Execute("depth 9")
		require.Contains(t, out.String(), "eternity")
		require.Equal(t, 9, c.depth)
	})
}

func TestBar(t *testing.T) {
	t.Run("fills with White's advantage", func(t *testing.T) {
		require.Equal(t, strings.Repeat("●", 10)+strings.Repeat("○", 10), bar(0))
		require.Equal(t, strings.Repeat("●", 20), bar(1_000_000))
		require.Equal(t, strings.Repeat("○", 20), bar(-1_000_000))
		require.Equal(t, strings.Repeat("●", 16)+strings.Repeat("○", 4), bar(550))
	})
}
