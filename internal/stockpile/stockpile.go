// Package stockpile tracks quantities of materials that plans draw their
// inputs from and deposit their yields into.
package stockpile

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/hammamikhairi/ottocraft/internal/domain"
)

// EmptyText describes a stockpile holding nothing.
const EmptyText = "This stockpile is empty."

// Stockpile maps material names to non-negative quantities. Quantities are
// fractional because partial and bonus yields are; every update rounds to
// hundredths so repeated deposits do not drift.
//
// A Stockpile is not safe for concurrent use.
type Stockpile struct {
	resources map[string]float64
}

// New creates an empty stockpile.
func New() *Stockpile {
	return &Stockpile{resources: make(map[string]float64)}
}

// From creates a stockpile holding a copy of the given quantities. Negative
// or blank entries fail with domain.ErrInvalidArgument.
func From(resources map[string]float64) (*Stockpile, error) {
	s := New()
	for name, q := range resources {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: blank material name", domain.ErrInvalidArgument)
		}
		if q < 0 {
			return nil, fmt.Errorf("%w: %s quantity %v is negative", domain.ErrInvalidArgument, name, q)
		}
		s.resources[name] = domain.RoundQuantity(q)
	}
	return s, nil
}

// Quantity returns the amount of name held and whether it is tracked at all.
func (s *Stockpile) Quantity(name string) (float64, bool) {
	q, ok := s.resources[name]
	return q, ok
}

// Has reports whether at least q of name is held.
func (s *Stockpile) Has(name string, q float64) bool {
	held, ok := s.resources[name]
	return ok && held >= domain.RoundQuantity(q)
}

// Increase adds q of name. Non-positive amounts are ignored.
func (s *Stockpile) Increase(name string, q float64) {
	if q <= 0 {
		return
	}
	s.resources[name] = domain.RoundQuantity(s.resources[name] + q)
}

// Decrease removes q of name, failing with domain.ErrInsufficientStock
// when less than q is held.
func (s *Stockpile) Decrease(name string, q float64) error {
	if !s.Has(name, q) {
		held := s.resources[name]
		return fmt.Errorf("%w: need %s %s, have %s", domain.ErrInsufficientStock,
			domain.FormatQuantity(q), name, domain.FormatQuantity(held))
	}
	s.resources[name] = domain.RoundQuantity(s.resources[name] - q)
	return nil
}

// Withdraw removes every material or none of them.
func (s *Stockpile) Withdraw(materials []domain.Material) error {
	need := make(map[string]float64, len(materials))
	for _, m := range materials {
		need[m.Name] += float64(m.Quantity)
	}
	for name, q := range need {
		if !s.Has(name, q) {
			return fmt.Errorf("%w: need %s %s, have %s", domain.ErrInsufficientStock,
				domain.FormatQuantity(q), name, domain.FormatQuantity(s.resources[name]))
		}
	}
	for name, q := range need {
		s.resources[name] = domain.RoundQuantity(s.resources[name] - q)
	}
	return nil
}

// Deposit adds every yield of an outcome.
func (s *Stockpile) Deposit(out domain.Outcome) {
	for _, y := range out.Yields {
		s.Increase(y.Name, y.Quantity)
	}
}

// Len returns the number of tracked materials.
func (s *Stockpile) Len() int { return len(s.resources) }

// Snapshot returns a copy of the held quantities.
func (s *Stockpile) Snapshot() map[string]float64 { return maps.Clone(s.resources) }

// DeepCopy returns an independent stockpile.
func (s *Stockpile) DeepCopy() *Stockpile {
	return &Stockpile{resources: maps.Clone(s.resources)}
}

// String lists every material as "<quantity> <name>\n", sorted by name.
func (s *Stockpile) String() string {
	if len(s.resources) == 0 {
		return EmptyText
	}
	var b strings.Builder
	for _, name := range slices.Sorted(maps.Keys(s.resources)) {
		b.WriteString(domain.FormatQuantity(s.resources[name]))
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.String()
}
