package searcher

import (
	"testing"

	"deepduck/game"

	"github.com/stretchr/testify/require"
)

func TestZobristTable(t *testing.T) {
	t.Run("same seed hashes identically", func(t *testing.T) {
		b := game.MustParseFEN(game.StartFEN)

		require.Equal(t, NewZobristTable(7).Hash(b), NewZobristTable(7).Hash(b))
		require.NotEqual(t, NewZobristTable(7).Hash(b), NewZobristTable(8).Hash(b))
	})

	t.Run("empty board with White to move hashes to zero", func(t *testing.T) {
		require.Zero(t, NewZobristTable(1).Hash(game.NewEmptyBoard()))
	})

	t.Run("side to move changes the hash", func(t *testing.T) {
		table := NewZobristTable(1)
		white := game.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
		black := game.MustParseFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")

		require.NotEqual(t, table.Hash(white), table.Hash(black))
	})

	t.Run("undo restores the hash", func(t *testing.T) {
		table := NewZobristTable(1)
		b := game.MustParseFEN(tacticalFEN)
		before := table.Hash(b)

		for _, m := range game.AvailableMoves(b) {
			b.Apply(m)
			require.NotEqual(t, before, table.Hash(b), "%s should change the hash", m)
			b.Undo(m)
			require.Equal(t, before, table.Hash(b), "%s undo should restore the hash", m)
		}
	})

	t.Run("duck placement is part of the position", func(t *testing.T) {
		table := NewZobristTable(1)
		b := game.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
		m := game.AvailableMoves(b)[0]

		parked := b.CopyAndApply(m)
		elsewhere := b.CopyAndApply(m.WithDuck(game.Position{File: 0, Rank: 3}))

		require.NotEqual(t, table.Hash(parked), table.Hash(elsewhere))
	})
}

const tacticalFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1"

func TestCache(t *testing.T) {
	t.Run("misses an unknown board", func(t *testing.T) {
		cache := NewCache(NewZobristTable(1))

		_, ok := cache.Get(game.MustParseFEN(game.StartFEN))

		require.False(t, ok)
		require.Zero(t, cache.Len())
	})

	t.Run("returns the inserted evaluation", func(t *testing.T) {
		cache := NewCache(NewZobristTable(1))
		b := game.MustParseFEN(game.StartFEN)
		m := game.AvailableMoves(b)[0]

		cache.Insert(b, Evaluation{Movement: &m, Score: 42, Depth: 3})

		got, ok := cache.Get(b)
		require.True(t, ok)
		require.Equal(t, 42, got.Score)
		require.Equal(t, 3, got.Depth)
		require.Equal(t, m, *got.Movement)
	})

	t.Run("a later insert overwrites", func(t *testing.T) {
		cache := NewCache(NewZobristTable(1))
		b := game.MustParseFEN(game.StartFEN)

		cache.Insert(b, Evaluation{Score: 1, Depth: 1})
		cache.Insert(b, Evaluation{Score: 2, Depth: 2})

		got, ok := cache.Get(b)
		require.True(t, ok)
		require.Equal(t, 2, got.Score)
		require.Equal(t, 1, cache.Len())
	})

	t.Run("keys by position not by board instance", func(t *testing.T) {
		table := NewZobristTable(1)
		cache := NewCache(table)
		b := game.MustParseFEN(tacticalFEN)

		cache.Insert(b, Evaluation{Score: 7})

		got, ok := cache.Get(b.Clone())
		require.True(t, ok)
		require.Equal(t, 7, got.Score)
	})
}
