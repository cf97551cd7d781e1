package craft

import (
	"fmt"

	"github.com/hammamikhairi/ottocraft/internal/domain"
)

// Simple is the single-input, single-output recipe shape. Apply takes the
// total quantity of input on hand and returns a whole number of outputs:
// one unit fewer than expected on a partial roll, one more on a bonus.
//
// Simple carries no completion flag.
type Simple struct {
	input  domain.Material
	output domain.Material
	prog   progress
	roller domain.Roller
}

// NewSimple creates a single-material recipe, validated like [New].
func NewSimple(input, output domain.Material, opts ...Option) (*Simple, error) {
	ins := []domain.Material{input}
	outs := []domain.Material{output}
	if err := validateNames("input", ins); err != nil {
		return nil, err
	}
	if err := validateNames("output", outs); err != nil {
		return nil, err
	}
	if err := validateQuantities("input", ins); err != nil {
		return nil, err
	}
	if err := validateQuantities("output", outs); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	return &Simple{
		input:  input,
		output: output,
		prog:   newProgress(),
		roller: o.roller,
	}, nil
}

// Inputs returns the single input as a list.
func (s *Simple) Inputs() []domain.Material { return []domain.Material{s.input} }

// Outputs returns the single output as a list.
func (s *Simple) Outputs() []domain.Material { return []domain.Material{s.output} }

// Apply consumes units of input, which must be a non-negative exact
// multiple of the per-application requirement; otherwise it fails with
// domain.ErrInvalidArgument before rolling.
func (s *Simple) Apply(units int) (int, error) {
	if units < 0 || units%s.input.Quantity != 0 {
		return 0, fmt.Errorf("%w: %d %s is not a multiple of %d",
			domain.ErrInvalidArgument, units, s.input.Name, s.input.Quantity)
	}
	expected := s.output.Quantity * (units / s.input.Quantity)

	switch s.prog.tier(s.roller.Roll()) {
	case domain.TierFail:
		return 0, nil
	case domain.TierPartial:
		s.prog.gain()
		return max(expected-1, 0), nil
	case domain.TierNormal:
		s.prog.gain()
		return expected, nil
	default:
		s.prog.gain()
		return expected + 1, nil
	}
}

// DeepCopy returns an independent copy sharing only the roller.
func (s *Simple) DeepCopy() *Simple {
	c := *s
	return &c
}
