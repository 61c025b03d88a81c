package engine

import "checkers/experiments/metrics"

type Runner interface {
	// Run plays a game till one side wins, the game is drawn or a max number of turns is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
