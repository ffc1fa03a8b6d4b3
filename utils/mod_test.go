package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("finds the first match", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	})

	t.Run("returns -1 when missing", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
		require.Equal(t, -1, FindIndex(nil, 3))
	})
}

func TestSplitCommand(t *testing.T) {
	t.Run("separates the command from its argument", func(t *testing.T) {
		key, arg := SplitCommand("  fen   8/8/8/8/8/8/8/8 w - - 0 1 ")
		require.Equal(t, "fen", key)
		require.Equal(t, "8/8/8/8/8/8/8/8 w - - 0 1", arg)
	})

	t.Run("handles a bare command and an empty line", func(t *testing.T) {
		key, arg := SplitCommand("undo")
		require.Equal(t, "undo", key)
		require.Empty(t, arg)

		key, arg = SplitCommand("   ")
		require.Empty(t, key)
		require.Empty(t, arg)
	})
}
