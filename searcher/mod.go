package searcher

import (
	"math"

	"deepduck/game"
)

// Infinity bounds every reachable score and survives negation.
const Infinity = math.MaxInt32

// MateThreshold separates material scores from lines where a king falls.
const MateThreshold = game.KingValue / 2

// Evaluation is a searched score from the mover's perspective. Depth counts
// the plies searched below the position that produced it.
type Evaluation struct {
	Movement *game.Movement
	Score    int
	Depth    int
}

// IsMate reports whether the score comes from a line that captures a king.
func IsMate(score int) bool {
	return score >= MateThreshold || score <= -MateThreshold
}

// Mate returns the plies until a king is captured when the evaluation is a forced mate.
func (e Evaluation) Mate() (plies int, ok bool) {
	if !IsMate(e.Score) {
		return 0, false
	}
	return e.Depth, true
}

type window struct {
	alpha int
	beta  int
}

var fullWindow = window{alpha: -Infinity, beta: Infinity}

func (w window) invert() window {
	return window{alpha: -w.beta, beta: -w.alpha}
}

type bound uint8

const (
	exact bound = iota
	lower       // fail-high: the true score is at least Score
	upper       // fail-low: the true score is at most Score
)

func (b bound) flip() bound {
	switch b {
	case lower:
		return upper
	case upper:
		return lower
	default:
		return exact
	}
}

type result struct {
	Evaluation
	bound bound
}
