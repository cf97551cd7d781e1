package engine

import (
	"context"
	"time"

	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/plan"
	"github.com/hammamikhairi/ottocraft/internal/stockpile"
)

// Run is one playthrough of a plan: a cursor over freshly built recipes,
// the stockpile it draws from and the number of rounds played.
type Run struct {
	ID       string
	PlanID   string
	PlanName string
	Cursor   *plan.Cursor
	// Stock is nil when the run plays without materials.
	Stock  *stockpile.Stockpile
	Round  int
	Status domain.RunStatus
	// Last is the outcome of the most recent step this round, if any.
	Last      *domain.Outcome
	StartedAt time.Time
	UpdatedAt time.Time
}

// Progress reports the current step (1-based, capped at the length) and
// the number of steps.
func (r *Run) Progress() (step, total int) {
	total = r.Cursor.Len()
	step = r.Cursor.Step() + 1
	if step > total {
		step = total
	}
	return step, total
}

// refresh derives the status from the cursor. Abandoned runs stay
// abandoned.
func (r *Run) refresh(now time.Time) {
	r.UpdatedAt = now
	if r.Status == domain.RunAbandoned {
		return
	}
	if r.Cursor.Exhausted() {
		r.Status = domain.RunExhausted
	} else {
		r.Status = domain.RunActive
	}
}

// RunStore persists runs.
type RunStore interface {
	Save(ctx context.Context, run *Run) error
	Load(ctx context.Context, id string) (*Run, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*Run, error)
}
