package searcher

import (
	"deepduck/game"

	"golang.org/x/exp/rand"
)

const zobristSize = 64 * 7 * 3 // squares * kinds * colors

// ZobristTable holds one random value per (square, color, kind) and one for
// Black to move. Tables built from the same seed hash identically.
type ZobristTable struct {
	values [zobristSize]uint64
	side   uint64
}

func NewZobristTable(seed uint64) *ZobristTable {
	rng := rand.New(rand.NewSource(seed))
	table := &ZobristTable{}
	for i := range table.values {
		table.values[i] = rng.Uint64()
	}
	table.side = rng.Uint64()
	return table
}

// Hash XORs the values of every occupied square. It is recomputed from scratch
// on every call.
func (z *ZobristTable) Hash(b *game.Board) uint64 {
	var hash uint64
	for piece := range b.Pieces() {
		hash ^= z.value(piece)
	}
	if b.Active() == game.Black {
		hash ^= z.side
	}
	return hash
}

func (z *ZobristTable) value(piece game.Piece) uint64 {
	kind := int(piece.Kind) - int(game.Pawn)
	index := piece.Pos.Index() + 64*int(piece.Color) + 64*3*kind
	return z.values[index]
}

type entry struct {
	Evaluation
	bound bound
}

// Cache memoizes evaluations by board hash for the lifetime of one search.
// Colliding hashes are not detected: a later insert overwrites, and a lookup
// trusts whatever entry is stored under the hash.
type Cache struct {
	table *ZobristTable
	data  map[uint64]entry
}

func NewCache(table *ZobristTable) *Cache {
	return &Cache{
		table: table,
		data:  make(map[uint64]entry),
	}
}

func (c *Cache) Get(b *game.Board) (Evaluation, bool) {
	e, ok := c.probe(c.table.Hash(b))
	return e.Evaluation, ok
}

// Insert stores an exact evaluation for the board, replacing any previous entry.
func (c *Cache) Insert(b *game.Board, evaluation Evaluation) {
	c.store(c.table.Hash(b), entry{Evaluation: evaluation, bound: exact})
}

func (c *Cache) Len() int {
	return len(c.data)
}

func (c *Cache) probe(hash uint64) (entry, bool) {
	e, ok := c.data[hash]
	return e, ok
}

func (c *Cache) store(hash uint64, e entry) {
	c.data[hash] = e
}
