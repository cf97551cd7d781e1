// Package engine runs crafting plans. It builds a cursor from a plan in
// the recipe book, steps it against the plan's stockpile and keeps every
// run in a RunStore.
package engine

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/hammamikhairi/ottocraft/internal/craft"
	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/logger"
	"github.com/hammamikhairi/ottocraft/internal/plan"
	"github.com/hammamikhairi/ottocraft/internal/stockpile"
)

// Option configures the engine.
type Option func(*Engine)

// WithRoller sets the roller every built recipe uses. The default is
// craft.DefaultRoller.
func WithRoller(r domain.Roller) Option {
	return func(e *Engine) {
		e.roller = r
	}
}

// WithStock makes every new run start from stock instead of the plan's
// own starting stock.
func WithStock(stock map[string]float64) Option {
	return func(e *Engine) {
		e.stock = maps.Clone(stock)
	}
}

// Engine manages crafting runs. It depends only on interfaces and is fully
// testable with in-memory implementations.
type Engine struct {
	book   domain.PlanBook
	store  RunStore
	log    *logger.Logger
	roller domain.Roller
	stock  map[string]float64
	now    func() time.Time
}

// New creates an engine with the given dependencies and options.
func New(book domain.PlanBook, store RunStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		book:   book,
		store:  store,
		log:    log,
		roller: craft.DefaultRoller,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ListPlans returns all available plans.
func (e *Engine) ListPlans(ctx context.Context) ([]domain.PlanSummary, error) {
	return e.book.List(ctx)
}

// SearchPlans returns plans matching query.
func (e *Engine) SearchPlans(ctx context.Context, query string) ([]domain.PlanSummary, error) {
	return e.book.Search(ctx, query)
}

// GetPlan returns a full plan by ID.
func (e *Engine) GetPlan(ctx context.Context, id string) (*domain.PlanSpec, error) {
	return e.book.Get(ctx, id)
}

// buildRecipe looks up a recipe by name and builds a fresh instance.
func (e *Engine) buildRecipe(ctx context.Context, name string) (*craft.Recipe, error) {
	spec, err := e.book.Recipe(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("getting recipe %q: %w", name, err)
	}
	return craft.FromSpec(*spec, craft.WithRoller(e.roller))
}

// buildSequence builds a fresh recipe for every step of spec, so
// repeated steps level up independently.
func (e *Engine) buildSequence(ctx context.Context, spec *domain.PlanSpec) (*plan.Sequence, error) {
	seq := plan.NewSequence()
	for _, name := range spec.Steps {
		r, err := e.buildRecipe(ctx, name)
		if err != nil {
			return nil, err
		}
		seq.Add(r)
	}
	return seq, nil
}

// Preview builds the sequence a new run of the plan would play, without
// starting a run.
func (e *Engine) Preview(ctx context.Context, planID string) (*plan.Sequence, error) {
	spec, err := e.book.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("getting plan: %w", err)
	}
	return e.buildSequence(ctx, spec)
}

// StartRun begins a new run of the given plan, starting from the plan's
// stock unless WithStock overrides it.
func (e *Engine) StartRun(ctx context.Context, planID string) (*Run, error) {
	spec, err := e.book.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("getting plan: %w", err)
	}
	seq, err := e.buildSequence(ctx, spec)
	if err != nil {
		return nil, err
	}
	cursor := plan.CursorOver(seq)

	stock := spec.Stock
	if e.stock != nil {
		stock = e.stock
	}
	var pile *stockpile.Stockpile
	if stock != nil {
		if pile, err = stockpile.From(stock); err != nil {
			return nil, fmt.Errorf("building stockpile: %w", err)
		}
	}

	now := e.now()
	run := &Run{
		ID:        newRunID(),
		PlanID:    spec.ID,
		PlanName:  spec.Name,
		Cursor:    cursor,
		Stock:     pile,
		Round:     1,
		StartedAt: now,
	}
	run.refresh(now)

	if err := e.store.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}

	e.log.Info("started run %s for plan %q (%d steps)", run.ID, spec.Name, cursor.Len())
	return run, nil
}

// load fetches a run and rejects abandoned ones.
func (e *Engine) load(ctx context.Context, runID string) (*Run, error) {
	run, err := e.store.Load(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("loading run: %w", err)
	}
	if run.Status == domain.RunAbandoned {
		return nil, domain.ErrRunNotActive
	}
	return run, nil
}

func (e *Engine) save(ctx context.Context, run *Run) error {
	run.refresh(e.now())
	if err := e.store.Save(ctx, run); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Current describes the recipe at the run's current step. It fails with
// domain.ErrOutOfRange once the round is exhausted.
func (e *Engine) Current(ctx context.Context, runID string) (string, error) {
	run, err := e.load(ctx, runID)
	if err != nil {
		return "", err
	}
	return run.Cursor.Query()
}

// Step applies the current recipe and advances. With a stockpile the
// inputs are withdrawn first and the yields deposited; a shortage fails
// with domain.ErrInsufficientStock and leaves the run untouched.
func (e *Engine) Step(ctx context.Context, runID string) (domain.Outcome, error) {
	run, err := e.load(ctx, runID)
	if err != nil {
		return domain.Outcome{}, err
	}

	index := run.Cursor.Step()
	var out domain.Outcome
	if run.Stock != nil {
		out, err = run.Cursor.ApplyWith(run.Stock)
	} else {
		out, err = run.Cursor.ApplyCurrent()
	}
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			e.log.Warn("run %s stalled at step %d: %v", runID, index+1, err)
		}
		return domain.Outcome{}, err
	}

	run.Last = &out
	if err := e.save(ctx, run); err != nil {
		return domain.Outcome{}, err
	}

	e.log.Debug("run %s applied step %d/%d: %s", runID, index+1, run.Cursor.Len(), out.Tier)
	if run.Status == domain.RunExhausted {
		e.log.Info("run %s finished round %d", runID, run.Round)
	}
	return out, nil
}

// Reset starts the next round once the current one is exhausted and
// reports whether it did. The round counter only moves on an effective
// reset. The stockpile carries over between rounds.
func (e *Engine) Reset(ctx context.Context, runID string) (bool, error) {
	run, err := e.load(ctx, runID)
	if err != nil {
		return false, err
	}
	if !run.Cursor.Reset() {
		e.log.Debug("run %s reset ignored at step %d", runID, run.Cursor.Step()+1)
		return false, nil
	}

	run.Round++
	run.Last = nil
	if err := e.save(ctx, run); err != nil {
		return false, err
	}
	e.log.Info("run %s starting round %d", runID, run.Round)
	return true, nil
}

// Add appends the named recipe to the run.
func (e *Engine) Add(ctx context.Context, runID, recipe string) error {
	run, err := e.load(ctx, runID)
	if err != nil {
		return err
	}
	r, err := e.buildRecipe(ctx, recipe)
	if err != nil {
		return err
	}
	run.Cursor.Add(r)
	e.log.Debug("run %s added %q as step %d", runID, recipe, run.Cursor.Len())
	return e.save(ctx, run)
}

// Replace swaps the step at index (0-based) for the named recipe. Steps
// already applied this round cannot be replaced.
func (e *Engine) Replace(ctx context.Context, runID string, index int, recipe string) error {
	run, err := e.load(ctx, runID)
	if err != nil {
		return err
	}
	r, err := e.buildRecipe(ctx, recipe)
	if err != nil {
		return err
	}
	if err := run.Cursor.Replace(r, index); err != nil {
		return err
	}
	e.log.Debug("run %s replaced step %d with %q", runID, index+1, recipe)
	return e.save(ctx, run)
}

// Remove drops the run's last step, provided it has not been applied.
func (e *Engine) Remove(ctx context.Context, runID string) error {
	run, err := e.load(ctx, runID)
	if err != nil {
		return err
	}
	if err := run.Cursor.Remove(); err != nil {
		return err
	}
	e.log.Debug("run %s removed its last step, %d left", runID, run.Cursor.Len())
	return e.save(ctx, run)
}

// Fork copies a run into a new, independent run at the same step and
// round with its own stockpile.
func (e *Engine) Fork(ctx context.Context, runID string) (*Run, error) {
	src, err := e.load(ctx, runID)
	if err != nil {
		return nil, err
	}

	now := e.now()
	run := &Run{
		ID:        newRunID(),
		PlanID:    src.PlanID,
		PlanName:  src.PlanName,
		Cursor:    src.Cursor.DeepCopy(),
		Round:     src.Round,
		StartedAt: now,
	}
	if src.Stock != nil {
		run.Stock = src.Stock.DeepCopy()
	}
	if src.Last != nil {
		last := *src.Last
		run.Last = &last
	}
	if err := e.save(ctx, run); err != nil {
		return nil, err
	}

	e.log.Info("forked run %s into %s", runID, run.ID)
	return run, nil
}

// Status returns the full run state.
func (e *Engine) Status(ctx context.Context, runID string) (*Run, error) {
	return e.store.Load(ctx, runID)
}

// Abandon marks a run as abandoned.
func (e *Engine) Abandon(ctx context.Context, runID string) error {
	run, err := e.store.Load(ctx, runID)
	if err != nil {
		return fmt.Errorf("loading run: %w", err)
	}

	run.Status = domain.RunAbandoned
	if err := e.save(ctx, run); err != nil {
		return err
	}

	e.log.Info("run %s abandoned", runID)
	return nil
}

// Craft applies the single-input form of a recipe to units of its input.
// The recipe must have exactly one input and one output. Each call builds
// a fresh recipe, so no experience carries over between calls.
func (e *Engine) Craft(ctx context.Context, recipe string, units int) (int, error) {
	spec, err := e.book.Recipe(ctx, recipe)
	if err != nil {
		return 0, fmt.Errorf("getting recipe %q: %w", recipe, err)
	}
	if len(spec.Inputs) != 1 || len(spec.Outputs) != 1 {
		return 0, fmt.Errorf("%w: recipe %q does not have exactly one input and one output", domain.ErrInvalidArgument, recipe)
	}

	s, err := craft.NewSimple(spec.Inputs[0], spec.Outputs[0], craft.WithRoller(e.roller))
	if err != nil {
		return 0, err
	}
	n, err := s.Apply(units)
	if err != nil {
		return 0, err
	}
	e.log.Debug("crafted %q from %d units: %d produced", recipe, units, n)
	return n, nil
}
