package searcher

import (
	"cmp"

	"deepduck/experiments/metrics"
	"deepduck/game"
	"deepduck/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(n *Negamax)

// Negamax is a reusable search configuration. Every call owns its own copy of
// the board, cache and metrics, so one Negamax may serve concurrent callers.
type Negamax struct {
	zobrist   *ZobristTable
	caching   bool
	pruning   bool
	intercept bool
	cloning   bool
	metrics   bool
}

// WithSeed draws the zobrist table from seed.
func WithSeed(seed uint64) Option {
	return func(n *Negamax) {
		n.zobrist = NewZobristTable(seed)
	}
}

func WithZobrist(table *ZobristTable) Option {
	return func(n *Negamax) {
		if table != nil {
			n.zobrist = table
		}
	}
}

func WithoutCache() Option {
	return func(n *Negamax) {
		n.caching = false
	}
}

// WithoutPruning searches every node with the full window, for verification.
func WithoutPruning() Option {
	return func(n *Negamax) {
		n.pruning = false
	}
}

// WithoutInterception keeps the duck on the vacated square instead of trying
// squares that block the opponent's best reply.
func WithoutInterception() Option {
	return func(n *Negamax) {
		n.intercept = false
	}
}

// WithCloning explores each branch on a copy of the board instead of
// applying and undoing movements in place.
func WithCloning() Option {
	return func(n *Negamax) {
		n.cloning = true
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = true
	}
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{ // Default values
		caching:   true,
		pruning:   true,
		intercept: true,
	}
	for _, option := range options {
		option(n)
	}
	if n.zobrist == nil {
		n.zobrist = NewZobristTable(meta.Seed)
	}
	return n
}

// Search returns the best full action for the side to move, or false when it
// has no legal response because its king is gone.
func (n *Negamax) Search(board *game.Board, depth int) (game.Movement, bool) {
	evaluation, _ := n.Analyze(board, max(depth, 1))
	if evaluation.Movement == nil {
		return game.Movement{}, false
	}
	return *evaluation.Movement, true
}

func (n *Negamax) Evaluate(board *game.Board, depth int) Evaluation {
	evaluation, _ := n.Analyze(board, depth)
	return evaluation
}

// Analyze searches depth plies and reports the evaluation with the metrics of the search.
func (n *Negamax) Analyze(board *game.Board, depth int) (Evaluation, metrics.SearchMetric) {
	if depth < 0 {
		panic("search depth cannot be negative")
	}

	s := &search{Negamax: n, metrics: metrics.NewDummyCollector()}
	if n.metrics {
		s.metrics = metrics.NewCollector()
	}
	if n.caching {
		s.cache = NewCache(n.zobrist)
	}

	s.metrics.Start(depth)
	r := s.negamax(board.Clone(), depth, fullWindow)
	metric := s.metrics.Complete(s.cacheEntries())

	log.Debug().
		Int("depth", depth).
		Int("score", r.Score).
		Int("nodes", metric.Nodes).
		Int("cache_hits", metric.CacheHits).
		Dur("duration", metric.Duration).
		Msg("search completed")

	return r.Evaluation, metric
}

type search struct {
	*Negamax
	cache   *Cache
	metrics metrics.Collector
}

func (s *search) cacheEntries() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

func (s *search) negamax(b *game.Board, depth int, w window) result {
	s.metrics.AddNode()
	if depth == 0 {
		return s.leaf(b)
	}

	alpha := w.alpha
	best := result{Evaluation: Evaluation{Score: alpha, Depth: depth}, bound: upper}

	var hash uint64
	if s.cache != nil {
		hash = s.cache.table.Hash(b)
		if cached, ok := s.cache.probe(hash); ok && cached.Depth >= depth && cached.bound != upper {
			s.metrics.AddCacheHit()
			if cached.Score >= w.beta {
				s.metrics.AddCacheCutoff()
				return result{Evaluation: Evaluation{Movement: cached.Movement, Score: w.beta, Depth: cached.Depth}, bound: lower}
			}
			if cached.Score > alpha {
				alpha = cached.Score
				best = result{Evaluation: cached.Evaluation, bound: cached.bound}
			}
		}
	}

	moves := game.AvailableMoves(b)
	if len(moves) == 0 {
		return s.leaf(b)
	}
	order(moves)

	for _, move := range moves {
		childWindow := window{alpha: alpha, beta: w.beta}
		if best.bound == exact && best.Movement != nil && best.Score >= MateThreshold {
			// Let equal mates come back exact so the shorter one can win the tie
			childWindow.alpha--
		}
		if !s.pruning {
			childWindow = fullWindow
		}

		threat, ducks := s.reply(b, move, depth-1, childWindow.invert(), s.intercept)
		for _, duck := range ducks {
			s.metrics.AddInterception()
			alternative := move.WithDuck(duck)
			alternativeThreat, _ := s.reply(b, alternative, depth-1, childWindow.invert(), false)
			if alternativeThreat.Score < threat.Score {
				threat = alternativeThreat
				move = alternative
			}
		}

		chosen := move
		candidate := result{
			Evaluation: Evaluation{Movement: &chosen, Score: -threat.Score, Depth: threat.Depth + 1},
			bound:      threat.bound.flip(),
		}

		if s.pruning && candidate.Score >= w.beta {
			s.metrics.AddBetaCutoff()
			candidate.Score = w.beta
			candidate.bound = lower
			return s.store(hash, candidate)
		}

		switch {
		case candidate.Score > alpha:
			alpha = candidate.Score
			best = candidate
		case shorterMate(candidate, best):
			best = candidate
		}
	}

	return s.store(hash, best)
}

// reply searches the opponent's answer to m and, when asked, the duck squares
// that could intercept that answer.
func (s *search) reply(b *game.Board, m game.Movement, depth int, w window, intercepting bool) (result, []game.Position) {
	next := b
	if s.cloning {
		next = b.CopyAndApply(m)
	} else {
		b.Apply(m)
		defer b.Undo(m)
	}

	threat := s.negamax(next, depth, w)
	if !intercepting || threat.Movement == nil {
		return threat, nil
	}
	return threat, intercept(next, m, *threat.Movement)
}

func (s *search) leaf(b *game.Board) result {
	s.metrics.AddLeaf()
	return result{Evaluation: Evaluation{Score: game.Evaluate(b)}, bound: exact}
}

func (s *search) store(hash uint64, r result) result {
	if s.cache != nil {
		s.cache.store(hash, entry{Evaluation: r.Evaluation, bound: r.bound})
	}
	return r
}

// shorterMate prefers a forced win that captures the king sooner than the current best.
func shorterMate(candidate, best result) bool {
	return candidate.bound == exact && best.bound == exact && best.Movement != nil &&
		candidate.Score == best.Score && candidate.Score >= MateThreshold &&
		candidate.Depth < best.Depth
}

// order sorts the most promising movements first: captures of valuable
// pieces, promotions, central and long moves.
func order(moves []game.Movement) {
	slices.SortStableFunc(moves, func(a, b game.Movement) int {
		return cmp.Compare(estimate(b), estimate(a))
	})
}

func estimate(m game.Movement) int {
	score := -game.PieceValue(m.Moved)

	file, rank := m.Target.File, m.Target.Rank
	score += file*(7-file) + rank*(7-rank)

	// Long moves keep pieces from being boxed in by the duck
	score += abs(m.Target.File-m.Origin.File) + abs(m.Target.Rank-m.Origin.Rank)

	if m.Captured != game.None {
		score += 10 * game.PieceValue(m.Captured)
	}
	if m.Promotion != game.None {
		score += 20 * game.PieceValue(m.Promotion)
	}
	return score
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
