package metrics

// AgentConfig describes one player of an experiment.
type AgentConfig struct {
	ID         int
	Kind       string // "minimax" or "random"
	Difficulty int    // Search depth, unused by random agents
	Seed       uint64
}
