// Package craft implements recipes: rules that turn input materials into
// output materials with a stochastic yield and a skill progression that
// improves the odds with repeated use.
//
// Two shapes exist. [Recipe] is the general multi-material form used by
// plans and cursors. [Simple] is the single-input, single-output form that
// accepts a total input quantity and returns an integer yield.
package craft

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hammamikhairi/ottocraft/internal/domain"
)

// Yield multipliers of the general form.
const (
	partialRate = 0.75
	bonusRate   = 1.1
)

// Option configures a recipe of either shape.
type Option func(*options)

type options struct {
	roller domain.Roller
}

// WithRoller sets the randomness source. Defaults to [DefaultRoller].
func WithRoller(r domain.Roller) Option {
	return func(o *options) {
		if r != nil {
			o.roller = r
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{roller: DefaultRoller}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Recipe is the general multi-material form. Its configuration is fixed at
// construction; experience, level and the outcome distribution change only
// as a side effect of Apply and are not exposed.
//
// A Recipe is not safe for concurrent use.
type Recipe struct {
	inputs    []domain.Material
	outputs   []domain.Material
	prog      progress
	completed bool
	roller    domain.Roller
}

// New creates a recipe. It fails with domain.ErrInvalidArgument when either
// list is empty, a name is blank after trimming, or a quantity is not
// positive. The slices are copied.
func New(inputs, outputs []domain.Material, opts ...Option) (*Recipe, error) {
	if err := validateNames("input", inputs); err != nil {
		return nil, err
	}
	if err := validateNames("output", outputs); err != nil {
		return nil, err
	}
	if err := validateQuantities("input", inputs); err != nil {
		return nil, err
	}
	if err := validateQuantities("output", outputs); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	return &Recipe{
		inputs:  slices.Clone(inputs),
		outputs: slices.Clone(outputs),
		prog:    newProgress(),
		roller:  o.roller,
	}, nil
}

// FromSpec creates a recipe from its book form.
func FromSpec(spec domain.RecipeSpec, opts ...Option) (*Recipe, error) {
	r, err := New(spec.Inputs, spec.Outputs, opts...)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", spec.Name, err)
	}
	return r, nil
}

func validateNames(kind string, materials []domain.Material) error {
	if len(materials) == 0 {
		return fmt.Errorf("%w: at least one %s material is required", domain.ErrInvalidArgument, kind)
	}
	for i, m := range materials {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: %s material %d has a blank name", domain.ErrInvalidArgument, kind, i+1)
		}
	}
	return nil
}

func validateQuantities(kind string, materials []domain.Material) error {
	for _, m := range materials {
		if m.Quantity <= 0 {
			return fmt.Errorf("%w: %s quantity of %q must be positive, got %d",
				domain.ErrInvalidArgument, kind, m.Name, m.Quantity)
		}
	}
	return nil
}

// Inputs returns a copy of the input materials.
func (r *Recipe) Inputs() []domain.Material { return slices.Clone(r.inputs) }

// Outputs returns a copy of the output materials.
func (r *Recipe) Outputs() []domain.Material { return slices.Clone(r.outputs) }

// DescribeInputs lists the inputs, one "<quantity> <material>\n" per line.
func (r *Recipe) DescribeInputs() string { return domain.Listing(r.inputs) }

// DescribeOutputs lists the outputs in the same line format.
func (r *Recipe) DescribeOutputs() string { return domain.Listing(r.outputs) }

// Describe is DescribeInputs followed by DescribeOutputs.
func (r *Recipe) Describe() string { return r.DescribeInputs() + r.DescribeOutputs() }

// Completed reports whether the recipe has been applied since the last
// ResetCompleted.
func (r *Recipe) Completed() bool { return r.completed }

// ResetCompleted clears the completion flag. Progression is untouched.
func (r *Recipe) ResetCompleted() { r.completed = false }

// Apply rolls once and returns the outcome. Every tier marks the recipe
// completed; every tier except TierFail earns experience.
func (r *Recipe) Apply() domain.Outcome {
	tier := r.prog.tier(r.roller.Roll())
	r.completed = true

	out := domain.Outcome{Tier: tier}
	if tier == domain.TierFail {
		return out
	}

	rate := 1.0
	switch tier {
	case domain.TierPartial:
		rate = partialRate
	case domain.TierBonus:
		rate = bonusRate
	}
	out.Yields = make([]domain.Yield, 0, len(r.outputs))
	for _, m := range r.outputs {
		out.Yields = append(out.Yields, domain.Yield{
			Name:     m.Name,
			Quantity: domain.RoundQuantity(float64(m.Quantity) * rate),
		})
	}

	r.prog.gain()
	return out
}

// DeepCopy returns an independent recipe with the same configuration,
// progression and completion state. The roller is shared.
func (r *Recipe) DeepCopy() *Recipe {
	return &Recipe{
		inputs:    slices.Clone(r.inputs),
		outputs:   slices.Clone(r.outputs),
		prog:      r.prog,
		completed: r.completed,
		roller:    r.roller,
	}
}

// Equal reports whether both recipes have the same materials, completion
// flag, experience and level.
func (r *Recipe) Equal(other *Recipe) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.completed == other.completed &&
		slices.Equal(r.inputs, other.inputs) &&
		slices.Equal(r.outputs, other.outputs) &&
		r.prog.experience == other.prog.experience &&
		r.prog.level == other.prog.level
}
