package main

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/engine"
	"github.com/hammamikhairi/ottocraft/internal/logger"
)

// printer is the styled output the play prompt writes to. display.UI
// implements it.
type printer interface {
	Println(a ...any)
	PrintChat(text string)
	PrintStep(text string)
	PrintListing(text string)
	PrintHint(text string)
	PrintUrgent(text string)
	PrintOutcome(out domain.Outcome)
}

// playApp drives one interactive session: browsing plans, running one
// plan at a time and editing the run.
type playApp struct {
	engine   *engine.Engine
	parser   domain.IntentParser
	notifier domain.Notifier
	log      *logger.Logger
	out      printer
	plans    []domain.PlanSummary // last listing, for numeric picks
	selected string               // plan chosen before typing 'start'
	runID    string               // current run
}

// loop reads lines until the input closes, the context ends or the user
// quits.
func (a *playApp) loop(ctx context.Context, input <-chan string) {
	a.out.PrintChat(lineWelcome())
	a.out.Println("")
	a.listPlans(ctx)

	for {
		var line string
		select {
		case <-ctx.Done():
			return
		case l, ok := <-input:
			if !ok {
				return
			}
			line = l
		}
		if a.handle(ctx, line) {
			return
		}
	}
}

// handle parses and dispatches one line. It reports whether to quit.
func (a *playApp) handle(ctx context.Context, line string) bool {
	intent, err := a.parser.Parse(ctx, line)
	if err != nil {
		a.log.Error("parsing input: %v", err)
		return false
	}
	a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)

	switch intent.Type {
	case domain.IntentHelp:
		for _, l := range lineHelp() {
			a.out.PrintHint(l)
		}
	case domain.IntentListPlans:
		a.listPlans(ctx)
	case domain.IntentSelectPlan:
		a.selectPlan(ctx, intent.Payload)
	case domain.IntentStartRun:
		a.startRun(ctx)
	case domain.IntentQuery:
		a.query(ctx)
	case domain.IntentApply:
		a.apply(ctx)
	case domain.IntentReset:
		a.reset(ctx)
	case domain.IntentShow:
		a.show(ctx)
	case domain.IntentStock:
		a.stock(ctx)
	case domain.IntentAdd:
		a.add(ctx, intent.Payload)
	case domain.IntentReplace:
		a.replace(ctx, intent.Payload)
	case domain.IntentRemove:
		a.remove(ctx)
	case domain.IntentFork:
		a.fork(ctx)
	case domain.IntentStatus:
		a.status(ctx)
	case domain.IntentQuit:
		a.quit(ctx)
		return true
	default:
		a.out.PrintChat(lineUnknown(intent.Payload))
	}
	return false
}

// fail reports an engine error in the prompt's own words where one fits.
func (a *playApp) fail(ctx context.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		_ = a.notifier.NotifyUrgent(ctx, lineStalled(err))
	case errors.Is(err, domain.ErrRunNotActive):
		a.runID = ""
		a.out.PrintUrgent(lineNoRun())
	default:
		a.out.PrintUrgent(err.Error())
	}
}

// currentRun returns the live run, or nil after telling the user there
// is none.
func (a *playApp) currentRun(ctx context.Context) *engine.Run {
	if a.runID == "" {
		a.out.PrintChat(lineNoRun())
		return nil
	}
	run, err := a.engine.Status(ctx, a.runID)
	if err != nil || run.Status == domain.RunAbandoned {
		a.runID = ""
		a.out.PrintChat(lineNoRun())
		return nil
	}
	return run
}

func (a *playApp) listPlans(ctx context.Context) {
	plans, err := a.engine.ListPlans(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.plans = plans
	for i, p := range plans {
		a.out.PrintStep(strconv.Itoa(i+1) + ". " + p.Name + " (" + strconv.Itoa(p.StepCount) + " steps)")
		if p.Description != "" {
			a.out.PrintHint("   " + p.Description)
		}
	}
}

func (a *playApp) selectPlan(ctx context.Context, payload string) {
	id := payload
	if n, err := strconv.Atoi(payload); err == nil {
		if len(a.plans) == 0 {
			if a.plans, err = a.engine.ListPlans(ctx); err != nil {
				a.fail(ctx, err)
				return
			}
		}
		if n < 1 || n > len(a.plans) {
			a.out.PrintChat(lineInvalidSelection(payload))
			return
		}
		id = a.plans[n-1].ID
	}

	if _, err := a.engine.GetPlan(ctx, id); err != nil {
		found, serr := a.engine.SearchPlans(ctx, payload)
		if serr != nil || len(found) != 1 {
			a.out.PrintChat(lineInvalidSelection(payload))
			return
		}
		id = found[0].ID
	}

	spec, err := a.engine.GetPlan(ctx, id)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	seq, err := a.engine.Preview(ctx, id)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.selected = id
	a.out.PrintChat(linePlanSelected(spec.Name, len(spec.Steps)))
	a.out.PrintListing(seq.Display())
}

func (a *playApp) startRun(ctx context.Context) {
	if a.runID != "" {
		if run, err := a.engine.Status(ctx, a.runID); err == nil && run.Status != domain.RunAbandoned {
			a.out.PrintChat(lineAlreadyActive())
			return
		}
	}
	if a.selected == "" {
		a.out.PrintChat(linePickPlanFirst())
		return
	}

	run, err := a.engine.StartRun(ctx, a.selected)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.runID = run.ID
	a.out.PrintChat(lineRunStart(run.PlanName))
	a.query(ctx)
}

func (a *playApp) query(ctx context.Context) {
	run := a.currentRun(ctx)
	if run == nil {
		return
	}
	text, err := a.engine.Current(ctx, run.ID)
	if errors.Is(err, domain.ErrOutOfRange) {
		a.out.PrintChat(lineRoundDone(run.Round))
		return
	}
	if err != nil {
		a.fail(ctx, err)
		return
	}
	step, total := run.Progress()
	a.out.PrintStep(lineStepHeader(step, total, run.Round))
	a.out.PrintListing(text)
}

func (a *playApp) apply(ctx context.Context) {
	run := a.currentRun(ctx)
	if run == nil {
		return
	}
	out, err := a.engine.Step(ctx, run.ID)
	if errors.Is(err, domain.ErrOutOfRange) {
		a.out.PrintChat(lineRoundDone(run.Round))
		return
	}
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.out.PrintOutcome(out)

	if run.Status == domain.RunExhausted {
		_ = a.notifier.Notify(ctx, lineRoundDone(run.Round))
		return
	}
	a.query(ctx)
}

func (a *playApp) reset(ctx context.Context) {
	run := a.currentRun(ctx)
	if run == nil {
		return
	}
	ok, err := a.engine.Reset(ctx, run.ID)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if !ok {
		a.out.PrintChat(lineResetIgnored())
		return
	}
	_ = a.notifier.Notify(ctx, lineRoundStart(run.Round))
	a.query(ctx)
}

func (a *playApp) show(ctx context.Context) {
	if run := a.currentRun(ctx); run != nil {
		a.out.PrintListing(run.Cursor.Display())
	}
}

func (a *playApp) stock(ctx context.Context) {
	run := a.currentRun(ctx)
	if run == nil {
		return
	}
	if run.Stock == nil {
		a.out.PrintChat(lineNoStockpile())
		return
	}
	a.out.PrintListing(run.Stock.String())
}

func (a *playApp) add(ctx context.Context, recipe string) {
	run := a.currentRun(ctx)
	if run == nil {
		return
	}
	if err := a.engine.Add(ctx, run.ID, recipe); err != nil {
		a.fail(ctx, err)
		return
	}
	a.out.PrintChat(lineAdded(recipe, run.Cursor.Len()))
}

// replace takes "<step> <recipe>" with a 1-based step.
func (a *playApp) replace(ctx context.Context, payload string) {
	run := a.currentRun(ctx)
	if run == nil {
		return
	}
	fields := strings.Fields(payload)
	if len(fields) != 2 {
		a.out.PrintHint(lineReplaceUsage())
		return
	}
	step, err := strconv.Atoi(fields[0])
	if err != nil {
		a.out.PrintHint(lineReplaceUsage())
		return
	}
	if err := a.engine.Replace(ctx, run.ID, step-1, fields[1]); err != nil {
		a.fail(ctx, err)
		return
	}
	a.out.PrintChat(lineReplaced(step, fields[1]))
}

func (a *playApp) remove(ctx context.Context) {
	run := a.currentRun(ctx)
	if run == nil {
		return
	}
	if err := a.engine.Remove(ctx, run.ID); err != nil {
		a.fail(ctx, err)
		return
	}
	a.out.PrintChat(lineRemoved(run.Cursor.Len()))
}

func (a *playApp) fork(ctx context.Context) {
	run := a.currentRun(ctx)
	if run == nil {
		return
	}
	forked, err := a.engine.Fork(ctx, run.ID)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.runID = forked.ID
	a.out.PrintChat(lineForked(forked.ID))
}

func (a *playApp) status(ctx context.Context) {
	run := a.currentRun(ctx)
	if run == nil {
		return
	}
	step, total := run.Progress()
	a.out.PrintChat(lineStatus(run.PlanName, step, total, run.Round, run.Status.String()))
}

func (a *playApp) quit(ctx context.Context) {
	if a.runID != "" {
		if err := a.engine.Abandon(ctx, a.runID); err != nil {
			a.log.Warn("abandoning run %s: %v", a.runID, err)
		} else {
			a.out.PrintHint(lineAbandoned())
		}
		a.runID = ""
	}
	a.out.PrintChat(lineBye())
}
