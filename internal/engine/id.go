package engine

import "github.com/google/uuid"

// newRunID returns a random UUID for a run.
func newRunID() string {
	return uuid.NewString()
}
