package main

// lines.go holds every conversational string the play prompt prints.

import (
	"fmt"
	"strings"
)

// ── Greeting / Global ────────────────────────────────────────────

func lineWelcome() string {
	return "Welcome to the workshop. What are we making today?"
}

func lineBye() string {
	return "Workshop closed."
}

func lineUnknown(input string) string {
	if input == "" {
		return "Say something. Type help for commands."
	}
	return fmt.Sprintf("Didn't catch %q. Type help for commands.", input)
}

// ── Plan selection ───────────────────────────────────────────────

func linePlanSelected(name string, steps int) string {
	return fmt.Sprintf("%s: %d steps. Say start when you're ready.", name, steps)
}

func lineInvalidSelection(payload string) string {
	return fmt.Sprintf("No plan matches %q. Pick a number from the list.", payload)
}

func linePickPlanFirst() string {
	return "Pick a plan first."
}

func lineAlreadyActive() string {
	return "A run is already going. Say quit to abandon it, or fork to branch it."
}

// ── Runs ─────────────────────────────────────────────────────────

func lineRunStart(planName string) string {
	return fmt.Sprintf("Crafting %s. Here we go.", planName)
}

func lineNoRun() string {
	return "No run in progress. Pick a plan and say start."
}

func lineStepHeader(step, total, round int) string {
	return fmt.Sprintf("Step %d/%d · round %d", step, total, round)
}

func lineRoundDone(round int) string {
	return fmt.Sprintf("Round %d complete. Say reset to play it again.", round)
}

func lineRoundStart(round int) string {
	return fmt.Sprintf("Round %d begins.", round)
}

func lineResetIgnored() string {
	return "Finish the round before resetting."
}

func lineStalled(err error) string {
	return fmt.Sprintf("Not enough materials: %v", err)
}

func lineNoStockpile() string {
	return "This run plays without materials."
}

func lineAdded(recipe string, step int) string {
	return fmt.Sprintf("Added %s as step %d.", recipe, step)
}

func lineReplaced(step int, recipe string) string {
	return fmt.Sprintf("Step %d is now %s.", step, recipe)
}

func lineReplaceUsage() string {
	return "Usage: replace <step> <recipe>, for example: replace 3 saw-planks"
}

func lineRemoved(left int) string {
	return fmt.Sprintf("Removed the last step. %d left.", left)
}

func lineForked(id string) string {
	return fmt.Sprintf("Forked into run %s. The original keeps its place.", shortID(id))
}

func lineAbandoned() string {
	return "Run abandoned."
}

func lineStatus(planName string, step, total, round int, status string) string {
	return fmt.Sprintf("%s: step %d/%d, round %d (%s).", planName, step, total, round, status)
}

func lineHelp() []string {
	return []string{
		"list                      show available plans",
		"pick <n|id>               choose a plan",
		"start                     begin a run of the chosen plan",
		"query                     describe the current recipe",
		"apply                     craft the current recipe",
		"reset                     start the next round once every step is applied",
		"show                      list every recipe in the run",
		"stock                     print the stockpile",
		"add <recipe>              append a recipe from the book",
		"replace <step> <recipe>   swap a step that hasn't been applied",
		"remove                    drop the last step",
		"fork                      branch the run into a new one",
		"status                    where you are",
		"quit                      abandon the run and exit",
	}
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
