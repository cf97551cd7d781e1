package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottocraft/internal/book"
	"github.com/hammamikhairi/ottocraft/internal/conversation"
	"github.com/hammamikhairi/ottocraft/internal/craft"
	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/engine"
	"github.com/hammamikhairi/ottocraft/internal/logger"
	"github.com/hammamikhairi/ottocraft/internal/storage"
)

// fakePrinter records everything the prompt prints, one entry per call.
type fakePrinter struct {
	lines []string
}

func (p *fakePrinter) add(s string)                  { p.lines = append(p.lines, s) }
func (p *fakePrinter) Println(a ...any)              { p.add(fmt.Sprint(a...)) }
func (p *fakePrinter) Printf(f string, a ...any)     { p.add(fmt.Sprintf(f, a...)) }
func (p *fakePrinter) PrintChat(text string)         { p.add(text) }
func (p *fakePrinter) PrintStep(text string)         { p.add(text) }
func (p *fakePrinter) PrintListing(text string)      { p.add(text) }
func (p *fakePrinter) PrintHint(text string)         { p.add(text) }
func (p *fakePrinter) PrintUrgent(text string)       { p.add(text) }
func (p *fakePrinter) PrintOutcome(o domain.Outcome) { p.add(o.Tier.String() + "\n" + o.String()) }

func (p *fakePrinter) take() string {
	out := strings.Join(p.lines, "\n")
	p.lines = nil
	return out
}

func newTestApp(t *testing.T, roll int) (*playApp, *fakePrinter) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	out := &fakePrinter{}
	eng := engine.New(book.NewMemoryBook(log), storage.NewMemoryStore(log), log,
		engine.WithRoller(craft.NewScriptedRoller(roll)))
	return &playApp{
		engine:   eng,
		parser:   conversation.NewKeywordParser(log),
		notifier: conversation.NewCLINotifier(log, out.Printf),
		log:      log,
		out:      out,
	}, out
}

// say feeds one line and returns what it printed.
func say(t *testing.T, a *playApp, p *fakePrinter, line string) string {
	t.Helper()
	require.False(t, a.handle(context.Background(), line), "%q quit the prompt", line)
	return p.take()
}

func mustContain(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		require.Contains(t, got, want)
	}
}

func TestPlayRound(t *testing.T) {
	a, p := newTestApp(t, 60)

	mustContain(t, say(t, a, p, "list"), "1. Apothecary (2 steps)", "3. Swordsmith (6 steps)")
	mustContain(t, say(t, a, p, "start"), "Pick a plan first.")
	mustContain(t, say(t, a, p, "pick 1"), "Apothecary: 2 steps", "Recipe 2:")

	mustContain(t, say(t, a, p, "start"), "Crafting Apothecary.", "Step 1/2 · round 1", "3 herb")
	mustContain(t, say(t, a, p, "start"), "already going")
	mustContain(t, say(t, a, p, "stock"), "without materials")
	mustContain(t, say(t, a, p, "reset"), "Finish the round")

	mustContain(t, say(t, a, p, "apply"), "normal\n2 tonic\n1 residue", "Step 2/2 · round 1")
	mustContain(t, say(t, a, p, "apply"), "Round 1 complete.")
	mustContain(t, say(t, a, p, "apply"), "Round 1 complete.")
	mustContain(t, say(t, a, p, "query"), "Round 1 complete.")
	mustContain(t, say(t, a, p, "status"), "Apothecary: step 2/2, round 1 (exhausted).")

	mustContain(t, say(t, a, p, "reset"), "Round 2 begins.", "Step 1/2 · round 2")
}

func TestPlayEditing(t *testing.T) {
	a, p := newTestApp(t, 60)

	say(t, a, p, "pick lumberyard")
	say(t, a, p, "start")
	mustContain(t, say(t, a, p, "stock"), "1 log")
	say(t, a, p, "apply")

	mustContain(t, say(t, a, p, "replace 1 carve-handle"), "already applied")
	mustContain(t, say(t, a, p, "replace one carve-handle"), "Usage: replace")
	mustContain(t, say(t, a, p, "replace 3 saw-planks"), "Step 3 is now saw-planks.")
	mustContain(t, say(t, a, p, "add smelt-gold"), "smelt-gold")
	mustContain(t, say(t, a, p, "add brew-tonic"), "Added brew-tonic as step 4.")
	mustContain(t, say(t, a, p, "remove"), "Removed the last step. 3 left.")
	mustContain(t, say(t, a, p, "show"), "Recipe 3:\n1 log\n4 plank")

	say(t, a, p, "apply")
	mustContain(t, say(t, a, p, "apply"), "Not enough materials")
	mustContain(t, say(t, a, p, "status"), "step 3/3, round 1 (active)")
}

func TestPlayFork(t *testing.T) {
	a, p := newTestApp(t, 60)

	say(t, a, p, "pick swordsmith")
	say(t, a, p, "start")
	say(t, a, p, "apply")
	original := a.runID

	mustContain(t, say(t, a, p, "fork"), "Forked into run")
	require.NotEmpty(t, a.runID)
	require.NotEqual(t, original, a.runID, "fork should switch to the new run")
	mustContain(t, say(t, a, p, "status"), "step 2/6, round 1")

	require.True(t, a.handle(context.Background(), "quit"), "quit should end the prompt")
	mustContain(t, p.take(), "Run abandoned.", "Workshop closed.")

	run, err := a.engine.Status(context.Background(), original)
	require.NoError(t, err)
	assert.NotEqual(t, domain.RunAbandoned, run.Status, "quitting abandoned the original run instead of the fork")
}

func TestPlayWithoutRun(t *testing.T) {
	a, p := newTestApp(t, 60)

	for _, cmd := range []string{"query", "apply", "reset", "show", "stock", "remove", "fork", "status", "add smelt-iron"} {
		mustContain(t, say(t, a, p, cmd), "No run in progress.")
	}
	mustContain(t, say(t, a, p, "pick 9"), "No plan matches")
	mustContain(t, say(t, a, p, "hammer time"), "Didn't catch")
	mustContain(t, say(t, a, p, "help"), "replace <step> <recipe>")
}

func TestPlayLoopStopsOnQuit(t *testing.T) {
	a, p := newTestApp(t, 60)
	input := make(chan string, 2)
	input <- "list"
	input <- "quit"

	a.loop(context.Background(), input)
	mustContain(t, p.take(), "Welcome to the workshop.", "Workshop closed.")
}
