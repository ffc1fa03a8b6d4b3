package searcher

import (
	"testing"

	"deepduck/game"

	"github.com/stretchr/testify/require"
)

func TestIntercept(t *testing.T) {
	// White's last move parked the duck on e2, it previously stood on h3
	played := func(t *testing.T) game.Movement {
		return game.Movement{
			Origin:     sq(t, "e2"),
			Target:     sq(t, "e3"),
			DuckOrigin: sq(t, "h3"),
			DuckTarget: sq(t, "e2"),
			Moved:      game.King,
		}
	}

	t.Run("blocks a slide next to the attacker", func(t *testing.T) {
		b := game.MustParseFEN("r3k3/8/8/8/8/4K3/8/Q7 b - - 0 1")
		threat := game.Movement{Origin: sq(t, "a8"), Target: sq(t, "a1"), DuckTarget: sq(t, "a8"), Moved: game.Rook, Captured: game.Queen}

		require.Equal(t, []game.Position{sq(t, "a7")}, intercept(b, played(t), threat))
	})

	t.Run("blocks a slide next to the victim when the attacker is boxed in", func(t *testing.T) {
		b := game.MustParseFEN("r3k3/p7/8/8/8/4K3/8/Q7 b - - 0 1")
		threat := game.Movement{Origin: sq(t, "a8"), Target: sq(t, "a1"), DuckTarget: sq(t, "a8"), Moved: game.Rook, Captured: game.Queen}

		require.Equal(t, []game.Position{sq(t, "a2")}, intercept(b, played(t), threat))
	})

	t.Run("blocks diagonal slides", func(t *testing.T) {
		b := game.MustParseFEN("4k3/8/8/3b4/8/4K3/8/Q7 b - - 0 1")
		threat := game.Movement{Origin: sq(t, "d5"), Target: sq(t, "a2"), DuckTarget: sq(t, "d5"), Moved: game.Bishop}

		require.Equal(t, []game.Position{sq(t, "c4")}, intercept(b, played(t), threat))
	})

	t.Run("occupies the landing square of a quiet jump", func(t *testing.T) {
		b := game.MustParseFEN("1n2k3/8/8/8/8/4K3/8/8 b - - 0 1")
		threat := game.Movement{Origin: sq(t, "b8"), Target: sq(t, "c6"), DuckTarget: sq(t, "b8"), Moved: game.Knight}

		require.Equal(t, []game.Position{sq(t, "c6")}, intercept(b, played(t), threat))
	})

	t.Run("cannot stop a capturing jump", func(t *testing.T) {
		b := game.MustParseFEN("1n2k3/8/2P5/8/8/4K3/8/8 b - - 0 1")
		threat := game.Movement{Origin: sq(t, "b8"), Target: sq(t, "c6"), DuckTarget: sq(t, "b8"), Moved: game.Knight, Captured: game.Pawn}

		require.Empty(t, intercept(b, played(t), threat))
	})

	t.Run("offers the square the opponent's duck would take", func(t *testing.T) {
		b := game.MustParseFEN("1n2k3/8/8/8/8/4K3/8/8 b - - 0 1")
		threat := game.Movement{Origin: sq(t, "b8"), Target: sq(t, "c6"), DuckTarget: sq(t, "d4"), Moved: game.Knight}

		require.Equal(t, []game.Position{sq(t, "d4"), sq(t, "c6")}, intercept(b, played(t), threat))
	})

	t.Run("never returns to the previous duck square", func(t *testing.T) {
		b := game.MustParseFEN("1n2k3/8/8/8/8/4K3/8/8 b - - 0 1")
		threat := game.Movement{Origin: sq(t, "b8"), Target: sq(t, "h3"), DuckTarget: sq(t, "e2"), Moved: game.Knight}

		require.Empty(t, intercept(b, played(t), threat), "Neither the old duck square nor the parked one is new")
	})

	t.Run("a duck threat cannot be blocked", func(t *testing.T) {
		b := game.MustParseFEN("4k3/8/8/8/8/4K3/8/8 b - - 0 1")
		_, ok := block(b, game.Movement{Origin: sq(t, "a1"), Target: sq(t, "a2"), Moved: game.Duck})

		require.False(t, ok)
	})
}
