package plan

import (
	"fmt"

	"github.com/hammamikhairi/ottocraft/internal/craft"
	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/stockpile"
)

// CurrentHeader precedes the description returned by Cursor.Query.
const CurrentHeader = "The current recipe is:\n"

// Cursor runs a sequence one recipe at a time. Its step only moves forward
// through ApplyCurrent or back to zero through Reset, and recipes already
// applied in the current run cannot be replaced or removed.
//
// The cursor is Runnable while Step < Len and Exhausted when Step == Len.
type Cursor struct {
	seq  *Sequence
	step int
}

// NewCursor creates an empty cursor.
func NewCursor() *Cursor {
	return &Cursor{seq: NewSequence()}
}

// CursorOf creates a cursor over recipes, positioned at the first.
func CursorOf(recipes ...*craft.Recipe) *Cursor {
	return &Cursor{seq: SequenceOf(recipes...)}
}

// CursorOver creates a cursor that takes ownership of seq, positioned at
// its first recipe.
func CursorOver(seq *Sequence) *Cursor {
	return &Cursor{seq: seq}
}

// Len returns the number of steps.
func (c *Cursor) Len() int { return c.seq.Len() }

// Cap returns the backing capacity.
func (c *Cursor) Cap() int { return c.seq.Cap() }

// Step returns the index of the next recipe to apply.
func (c *Cursor) Step() int { return c.step }

// Exhausted reports whether every recipe has been applied this run.
func (c *Cursor) Exhausted() bool { return c.step >= c.seq.Len() }

// At returns the recipe at index.
func (c *Cursor) At(index int) (*craft.Recipe, error) { return c.seq.At(index) }

// Display lists every recipe, like Sequence.Display.
func (c *Cursor) Display() string { return c.seq.Display() }

// Add appends a recipe. Adding to an exhausted cursor makes it runnable.
func (c *Cursor) Add(r *craft.Recipe) { c.seq.Add(r) }

func (c *Cursor) exhaustedErr(action string) error {
	return fmt.Errorf("%w: no recipe left to %s (step %d of %d)", domain.ErrOutOfRange, action, c.step, c.seq.Len())
}

// Query describes the recipe at the current step. It fails with
// domain.ErrOutOfRange once exhausted.
func (c *Cursor) Query() (string, error) {
	if c.Exhausted() {
		return "", c.exhaustedErr("query")
	}
	return CurrentHeader + c.seq.list[c.step].Describe(), nil
}

// ApplyCurrent applies the recipe at the current step and advances. It
// fails with domain.ErrOutOfRange once exhausted.
func (c *Cursor) ApplyCurrent() (domain.Outcome, error) {
	if c.Exhausted() {
		return domain.Outcome{}, c.exhaustedErr("apply")
	}
	out := c.seq.list[c.step].Apply()
	c.step++
	return out, nil
}

// ApplyWith applies the current recipe against a stockpile: the inputs are
// withdrawn, the recipe applied, and every yield deposited. A failed roll
// still consumes the inputs. When the stockpile lacks an input it fails
// with domain.ErrInsufficientStock and nothing changes.
func (c *Cursor) ApplyWith(pile *stockpile.Stockpile) (domain.Outcome, error) {
	if c.Exhausted() {
		return domain.Outcome{}, c.exhaustedErr("apply")
	}
	r := c.seq.list[c.step]
	if err := pile.Withdraw(r.Inputs()); err != nil {
		return domain.Outcome{}, fmt.Errorf("step %d: %w", c.step+1, err)
	}
	out := r.Apply()
	pile.Deposit(out)
	c.step++
	return out, nil
}

// Reset starts a new run: every completion flag is cleared and the step
// returns to zero. It only takes effect once the cursor is exhausted and
// reports whether it did.
func (c *Cursor) Reset() bool {
	if !c.Exhausted() {
		return false
	}
	c.seq.Each(func(_ int, r *craft.Recipe) bool {
		r.ResetCompleted()
		return true
	})
	c.step = 0
	return true
}

// Replace overwrites the recipe at index. It fails with
// domain.ErrInvalidOperation when that step was already applied this run,
// and with domain.ErrOutOfRange when index is outside [0, Len).
func (c *Cursor) Replace(r *craft.Recipe, index int) error {
	if index < c.step {
		return fmt.Errorf("%w: step %d was already applied", domain.ErrInvalidOperation, index+1)
	}
	return c.seq.Replace(r, index)
}

// Remove drops the last recipe. It fails with domain.ErrInvalidOperation
// when that recipe is completed or was applied this run. An empty cursor
// is left as is.
func (c *Cursor) Remove() error {
	if last := c.seq.Last(); last != nil && (last.Completed() || c.seq.Len()-1 < c.step) {
		return fmt.Errorf("%w: the last recipe is completed", domain.ErrInvalidOperation)
	}
	c.seq.Remove()
	return nil
}

// DeepCopy returns a cursor over an independent copy of the sequence,
// positioned at the same step.
func (c *Cursor) DeepCopy() *Cursor {
	return &Cursor{seq: c.seq.DeepCopy(), step: c.step}
}

// Append adds deep copies of other's recipes. When other has already
// applied steps it is reset first, which only takes effect if it is
// exhausted.
func (c *Cursor) Append(other *Cursor) {
	if other == nil {
		return
	}
	if other.step > 0 {
		other.Reset()
	}
	c.seq.Append(other.seq)
}

// Equal reports whether both cursors hold equal sequences at the same step.
func (c *Cursor) Equal(other *Cursor) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.step == other.step && c.seq.Equal(other.seq)
}
