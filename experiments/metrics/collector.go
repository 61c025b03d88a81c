package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // Boards expanded, root included
	Ties     int // Moves sharing the best score at the root
	Score    int
}

type MoveMetric struct {
	Step     int
	Player   int // Side that moved
	Move     string
	Fallback bool // Agent move was rejected and replaced
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer int
	Winner         int // Side that won, 0 on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Captured       [2]int // Pieces lost by side B, then side A
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddTies(count int)
	Complete(score int) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	ties      atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.ties.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTies(count int) {
	m.ties.Store(int32(count))
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Ties:     int(m.ties.Load()),
		Score:    score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddTies(count int)               {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{} }
