// Package plan arranges recipes into ordered sequences and runs them one
// step at a time.
package plan

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/ottocraft/internal/craft"
	"github.com/hammamikhairi/ottocraft/internal/domain"
)

// DefaultCapacity is the backing capacity of an empty sequence.
const DefaultCapacity = 10

// Sequence is an ordered, growable list of recipes. The backing array is
// managed explicitly: it doubles when an add finds it full, and slots at or
// beyond Len are never part of the sequence.
//
// A Sequence owns the recipes given to it. Add the same *craft.Recipe to
// two sequences only if shared progression is intended; use DeepCopy
// otherwise.
type Sequence struct {
	list []*craft.Recipe // len(list) is the capacity
	size int
}

// NewSequence creates an empty sequence with DefaultCapacity.
func NewSequence() *Sequence {
	return &Sequence{list: make([]*craft.Recipe, DefaultCapacity)}
}

// SequenceOf creates a sequence holding recipes, with capacity equal to
// their count. Nil recipes are skipped.
func SequenceOf(recipes ...*craft.Recipe) *Sequence {
	list := make([]*craft.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r != nil {
			list = append(list, r)
		}
	}
	return &Sequence{list: list, size: len(list)}
}

// Len returns the logical size.
func (s *Sequence) Len() int { return s.size }

// Cap returns the backing capacity.
func (s *Sequence) Cap() int { return len(s.list) }

// At returns the recipe at index, failing with domain.ErrOutOfRange
// outside [0, Len).
func (s *Sequence) At(index int) (*craft.Recipe, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return s.list[index], nil
}

// Last returns the final recipe, or nil when empty.
func (s *Sequence) Last() *craft.Recipe {
	if s.size == 0 {
		return nil
	}
	return s.list[s.size-1]
}

func (s *Sequence) checkIndex(index int) error {
	if index < 0 || index >= s.size {
		return fmt.Errorf("%w: index %d outside [0, %d)", domain.ErrOutOfRange, index, s.size)
	}
	return nil
}

// Add appends a recipe, growing the backing array first when full. A nil
// recipe is ignored.
func (s *Sequence) Add(r *craft.Recipe) {
	if r == nil {
		return
	}
	if s.size == len(s.list) {
		s.grow()
	}
	s.list[s.size] = r
	s.size++
}

// grow doubles the capacity. A zero capacity becomes DefaultCapacity.
func (s *Sequence) grow() {
	newCap := len(s.list) * 2
	if newCap == 0 {
		newCap = DefaultCapacity
	}
	list := make([]*craft.Recipe, newCap)
	copy(list, s.list[:s.size])
	s.list = list
}

// Remove drops the last recipe. Removing from an empty sequence does
// nothing.
func (s *Sequence) Remove() {
	if s.size == 0 {
		return
	}
	s.size--
	s.list[s.size] = nil
}

// Replace overwrites the recipe at index, failing with domain.ErrOutOfRange
// outside [0, Len) and with domain.ErrInvalidArgument for a nil recipe.
func (s *Sequence) Replace(r *craft.Recipe, index int) error {
	if r == nil {
		return fmt.Errorf("%w: nil recipe", domain.ErrInvalidArgument)
	}
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.list[index] = r
	return nil
}

// Each calls fn for every recipe in order until fn returns false.
func (s *Sequence) Each(fn func(index int, r *craft.Recipe) bool) {
	for i := 0; i < s.size; i++ {
		if !fn(i, s.list[i]) {
			return
		}
	}
}

// DeepCopy returns a sequence of the same size and capacity holding
// independent copies of every recipe.
func (s *Sequence) DeepCopy() *Sequence {
	list := make([]*craft.Recipe, len(s.list))
	for i := 0; i < s.size; i++ {
		list[i] = s.list[i].DeepCopy()
	}
	return &Sequence{list: list, size: s.size}
}

// Append adds deep copies of every recipe in other, leaving other intact.
func (s *Sequence) Append(other *Sequence) {
	if other == nil {
		return
	}
	other.Each(func(_ int, r *craft.Recipe) bool {
		s.Add(r.DeepCopy())
		return true
	})
}

// Equal reports whether both sequences hold pairwise equal recipes.
// Capacity is not compared.
func (s *Sequence) Equal(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.size != other.size {
		return false
	}
	for i := 0; i < s.size; i++ {
		if !s.list[i].Equal(other.list[i]) {
			return false
		}
	}
	return true
}

// Longer reports whether s holds more recipes than other.
func (s *Sequence) Longer(other *Sequence) bool {
	if other == nil {
		return s.size > 0
	}
	return s.size > other.size
}

// Display lists every recipe as a "Recipe <n>:" header followed by its
// input and output lines.
func (s *Sequence) Display() string {
	var b strings.Builder
	for i := 0; i < s.size; i++ {
		fmt.Fprintf(&b, "Recipe %d:\n", i+1)
		b.WriteString(s.list[i].Describe())
	}
	return b.String()
}
