package craft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandRollerRange(t *testing.T) {
	r := NewRandRoller(1)
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		v := r.Roll()
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 100)
		seen[v] = true
	}
	assert.True(t, seen[1] && seen[100], "expected both bounds to appear in 5000 rolls")
}

func TestRandRollerSeeded(t *testing.T) {
	a, b := NewRandRoller(99), NewRandRoller(99)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Roll(), b.Roll(), "same seed diverged at roll %d", i)
	}
}

func TestScriptedRoller(t *testing.T) {
	r := NewScriptedRoller(5, 0, 250)
	for i, want := range []int{5, 1, 100, 5} {
		assert.Equal(t, want, r.Roll(), "roll %d", i)
	}
	assert.Equal(t, 4, r.Drawn())
	assert.Equal(t, 100, NewScriptedRoller().Roll(), "empty script")
}
