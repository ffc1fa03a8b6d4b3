package game

// Perft counts the leaf positions reached by full-width enumeration of
// piece-only movements, mutating and restoring b along the way.
func Perft(b *Board, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, move := range AvailableMoves(b) {
		b.Apply(move)
		nodes += Perft(b, depth-1)
		b.Undo(move)
	}
	return nodes
}

// PerftClone is Perft exploring each branch on its own copy of the board.
func PerftClone(b *Board, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, move := range AvailableMoves(b) {
		nodes += PerftClone(b.CopyAndApply(move), depth-1)
	}
	return nodes
}
