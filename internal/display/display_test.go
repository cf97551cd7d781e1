package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottocraft/internal/craft"
	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/engine"
	"github.com/hammamikhairi/ottocraft/internal/plan"
)

func testCursor(t *testing.T, steps int) *plan.Cursor {
	t.Helper()
	c := plan.NewCursor()
	for i := 0; i < steps; i++ {
		r, err := craft.New(
			[]domain.Material{{Name: "log", Quantity: 1}},
			[]domain.Material{{Name: "plank", Quantity: 4}},
			craft.WithRoller(craft.NewScriptedRoller(60)),
		)
		require.NoError(t, err)
		c.Add(r)
	}
	return c
}

func TestSummarize(t *testing.T) {
	active := &engine.Run{PlanName: "Lumberyard", Cursor: testCursor(t, 3), Round: 1, Status: domain.RunActive}
	_, err := active.Cursor.ApplyCurrent()
	require.NoError(t, err)

	done := &engine.Run{PlanName: "Apothecary", Cursor: testCursor(t, 1), Round: 2, Status: domain.RunExhausted}
	_, err = done.Cursor.ApplyCurrent()
	require.NoError(t, err)

	got := summarize([]*engine.Run{active, done})
	require.Len(t, got, 2)
	assert.Equal(t, "step 2/3 · round 1", got[0].progress())
	assert.Equal(t, "round 2 done", got[1].progress())

	title := titleStr(got)
	assert.True(t, strings.HasPrefix(title, "OttoCraft | Lumberyard: "), title)
	assert.Contains(t, title, "Apothecary: round 2 done")
	assert.Equal(t, "OttoCraft", titleStr(nil))

	bar := renderBar(got, 100)
	assert.Contains(t, bar, "Lumberyard")
	assert.Contains(t, bar, "round 2 done")
}

func TestRenderOutcome(t *testing.T) {
	out := domain.Outcome{Tier: domain.TierBonus, Yields: []domain.Yield{{Name: "plank", Quantity: 4.4}}}
	got := RenderOutcome(out)
	assert.Contains(t, got, "bonus")
	assert.Contains(t, got, "4.4 plank")

	assert.Contains(t, RenderOutcome(domain.Outcome{Tier: domain.TierFail}), domain.FailText)
}

func TestCentre(t *testing.T) {
	got := centre("ab\nabcd\n", 10)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "   "), "expected 3 columns of padding, got %q", l)
	}
	assert.False(t, strings.HasPrefix(centre("wide", 2), " "), "narrow terminal should not pad")
}
