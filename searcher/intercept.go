package searcher

import (
	"deepduck/game"

	"golang.org/x/exp/slices"
)

// intercept lists the duck squares worth trying against threat, the reply the
// opponent found to m. b is the board after m, with the duck still parked on
// m's origin. The duck never stays where it was before m.
func intercept(b *game.Board, m game.Movement, threat game.Movement) []game.Position {
	ducks := []game.Position{}
	consider := func(pos game.Position) {
		if !pos.Valid() || pos == m.DuckTarget || pos == m.DuckOrigin {
			return
		}
		if !b.Get(pos).Empty() || slices.Contains(ducks, pos) {
			return
		}
		ducks = append(ducks, pos)
	}

	consider(threat.DuckTarget)
	if pos, ok := block(b, threat); ok {
		consider(pos)
	}
	return ducks
}

// block finds the square that stops threat, if it can be stopped at all.
func block(b *game.Board, threat game.Movement) (game.Position, bool) {
	switch threat.Moved {
	case game.Pawn, game.Knight, game.King:
		// Jumps cannot be blocked, only denied their landing square
		if threat.Captured == game.None {
			return threat.Target, true
		}
		return game.NoSquare, false
	case game.Rook, game.Bishop, game.Queen:
		df := sign(threat.Target.File - threat.Origin.File)
		dr := sign(threat.Target.Rank - threat.Origin.Rank)
		nearAttacker := threat.Origin.Offset(df, dr)
		if nearAttacker.Valid() && b.Get(nearAttacker).Empty() {
			return nearAttacker, true
		}
		nearVictim := threat.Target.Offset(-df, -dr)
		if nearVictim.Valid() && b.Get(nearVictim).Empty() {
			return nearVictim, true
		}
		return game.NoSquare, false
	case game.Duck, game.None:
		return game.NoSquare, false
	default:
		panic("unexpected piece kind")
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
