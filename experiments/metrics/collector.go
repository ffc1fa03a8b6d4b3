package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth         int
	Duration      time.Duration
	Nodes         int
	Leaves        int
	CacheHits     int
	CacheCutoffs  int
	BetaCutoffs   int
	Interceptions int
	CacheEntries  int
}

type MoveMetric struct {
	Step   int
	Player string // Color of the mover
	Move   string
	Score  int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" when the game hit the move limit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCacheHit()
	AddCacheCutoff()
	AddBetaCutoff()
	AddInterception()
	Complete(cacheEntries int) SearchMetric
}

type collector struct {
	depth         int
	startTime     time.Time
	nodes         atomic.Int64
	leaves        atomic.Int64
	cacheHits     atomic.Int64
	cacheCutoffs  atomic.Int64
	betaCutoffs   atomic.Int64
	interceptions atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) AddCacheCutoff() {
	m.cacheCutoffs.Add(1)
}

func (m *collector) AddBetaCutoff() {
	m.betaCutoffs.Add(1)
}

func (m *collector) AddInterception() {
	m.interceptions.Add(1)
}

func (m *collector) Complete(cacheEntries int) SearchMetric {
	return SearchMetric{
		Depth:         m.depth,
		Duration:      time.Since(m.startTime),
		Nodes:         int(m.nodes.Load()),
		Leaves:        int(m.leaves.Load()),
		CacheHits:     int(m.cacheHits.Load()),
		CacheCutoffs:  int(m.cacheCutoffs.Load()),
		BetaCutoffs:   int(m.betaCutoffs.Load()),
		Interceptions: int(m.interceptions.Load()),
		CacheEntries:  cacheEntries,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                        {}
func (m *dummyCollector) AddNode()                               {}
func (m *dummyCollector) AddLeaf()                               {}
func (m *dummyCollector) AddCacheHit()                           {}
func (m *dummyCollector) AddCacheCutoff()                        {}
func (m *dummyCollector) AddBetaCutoff()                         {}
func (m *dummyCollector) AddInterception()                       {}
func (m *dummyCollector) Complete(cacheEntries int) SearchMetric { return SearchMetric{} }
