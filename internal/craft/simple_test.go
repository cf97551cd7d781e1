package craft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottocraft/internal/domain"
)

func mustSimple(t *testing.T, roller domain.Roller) *Simple {
	t.Helper()
	s, err := NewSimple(
		domain.Material{Name: "iron ore", Quantity: 2},
		domain.Material{Name: "iron bar", Quantity: 1},
		WithRoller(roller),
	)
	require.NoError(t, err)
	return s
}

func TestNewSimpleValidation(t *testing.T) {
	tests := []struct {
		name   string
		input  domain.Material
		output domain.Material
	}{
		{"blank input", domain.Material{Name: " ", Quantity: 1}, domain.Material{Name: "bar", Quantity: 1}},
		{"blank output", domain.Material{Name: "ore", Quantity: 1}, domain.Material{Name: "", Quantity: 1}},
		{"zero input", domain.Material{Name: "ore", Quantity: 0}, domain.Material{Name: "bar", Quantity: 1}},
		{"negative output", domain.Material{Name: "ore", Quantity: 1}, domain.Material{Name: "bar", Quantity: -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSimple(tt.input, tt.output)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestSimpleRejectsNonMultiple(t *testing.T) {
	roller := NewScriptedRoller(60)
	s := mustSimple(t, roller)

	for _, units := range []int{5, 1, -2} {
		_, err := s.Apply(units)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "apply(%d)", units)
	}
	assert.Equal(t, 0, roller.Drawn(), "rolled before validating units")
	assert.Equal(t, 0, s.prog.experience, "rejected apply changed experience")
}

func TestSimpleApplyTiers(t *testing.T) {
	tests := []struct {
		roll int
		want int
	}{
		{10, 0}, // fail
		{40, 2}, // partial: 3 - 1
		{80, 3}, // normal
		{99, 4}, // bonus: 3 + 1
	}
	for _, tt := range tests {
		s := mustSimple(t, NewScriptedRoller(tt.roll))
		got, err := s.Apply(6)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "roll %d", tt.roll)
	}
}

func TestSimpleApplyRange(t *testing.T) {
	s := mustSimple(t, NewRandRoller(7))
	for i := 0; i < 200; i++ {
		got, err := s.Apply(6)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, 0)
		require.LessOrEqual(t, got, 4)
		require.Equal(t, 100, s.prog.sum())
		require.LessOrEqual(t, s.prog.experience, maxExperience)
		require.LessOrEqual(t, s.prog.level, maxLevel)
	}
}

func TestSimpleZeroUnitsPartialClamps(t *testing.T) {
	s := mustSimple(t, NewScriptedRoller(40))
	got, err := s.Apply(0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestSimpleDeepCopy(t *testing.T) {
	s := mustSimple(t, NewScriptedRoller(80))
	_, err := s.Apply(2)
	require.NoError(t, err)

	c := s.DeepCopy()
	_, err = s.Apply(2)
	require.NoError(t, err)

	assert.Equal(t, 1, c.prog.experience)
	assert.Equal(t, 2, s.prog.experience)
	assert.Len(t, c.Inputs(), 1)
	assert.Equal(t, "iron bar", c.Outputs()[0].Name)
}
