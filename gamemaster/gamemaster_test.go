package gamemaster

import (
	"sync"
	"testing"

	"deepduck/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameMaster(t *testing.T) {
	t.Run("creates games from the start position by default", func(t *testing.T) {
		gm := NewGameMaster(nil)

		session, err := gm.NewGame("")

		require.NoError(t, err)
		require.NotEmpty(t, session.ID)
		require.Equal(t, game.StartFEN, session.Snapshot().Board.FEN())

		found, err := gm.Game(session.ID)
		require.NoError(t, err)
		require.Same(t, session, found)
	})

	t.Run("rejects a malformed fen", func(t *testing.T) {
		_, err := NewGameMaster(nil).NewGame("not a board")

		require.ErrorIs(t, err, game.ErrInvalidFEN)
	})

	t.Run("reports unknown and removed games", func(t *testing.T) {
		gm := NewGameMaster(nil)
		session, err := gm.NewGame("")
		require.NoError(t, err)

		_, err = gm.Game("missing")
		require.ErrorIs(t, err, ErrGameNotFound)

		require.NoError(t, gm.Remove(session.ID))
		require.ErrorIs(t, gm.Remove(session.ID), ErrGameNotFound)
		require.Zero(t, gm.Len())
	})

	t.Run("creates games concurrently with distinct ids", func(t *testing.T) {
		gm := NewGameMaster(nil)

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := gm.NewGame("")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		require.Equal(t, 20, gm.Len())
	})
}
