package game

const (
	// DefaultMaxTicks is the tick ceiling when the caller does not set one
	DefaultMaxTicks = 100

	MinAgents = 1
	MaxAgents = 8
)
