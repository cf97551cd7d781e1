package domain

// RunStatus tracks the lifecycle of a crafting run.
type RunStatus int

const (
	// RunActive has steps left to apply in the current round.
	RunActive RunStatus = iota
	// RunExhausted has applied every step; a reset starts the next round.
	RunExhausted
	// RunAbandoned was given up by the user.
	RunAbandoned
)

// String returns a human-readable run status.
func (s RunStatus) String() string {
	switch s {
	case RunActive:
		return "active"
	case RunExhausted:
		return "exhausted"
	case RunAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}
