package craft

import (
	"math/rand/v2"

	"github.com/hammamikhairi/ottocraft/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.Roller = (*RandRoller)(nil)
	_ domain.Roller = (*ScriptedRoller)(nil)
	_ domain.Roller = globalRoller{}
)

const (
	rollMin = 1
	rollMax = 100
)

// DefaultRoller draws from the runtime's global generator. Safe for
// concurrent use.
var DefaultRoller domain.Roller = globalRoller{}

type globalRoller struct{}

func (globalRoller) Roll() int { return rand.IntN(rollMax) + rollMin }

// RandRoller is a seeded generator, so a whole simulation can be replayed.
// Not safe for concurrent use.
type RandRoller struct {
	rng *rand.Rand
}

// NewRandRoller creates a roller whose sequence is fixed by seed.
func NewRandRoller(seed uint64) *RandRoller {
	return &RandRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns the next value in [1, 100].
func (r *RandRoller) Roll() int { return r.rng.IntN(rollMax) + rollMin }

// ScriptedRoller replays a fixed list of rolls, wrapping around at the end.
// Values outside [1, 100] are clamped. With no rolls it always returns 100.
type ScriptedRoller struct {
	rolls []int
	next  int
}

// NewScriptedRoller creates a roller that returns rolls in order.
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: append([]int(nil), rolls...)}
}

// Roll returns the next scripted value.
func (s *ScriptedRoller) Roll() int {
	if len(s.rolls) == 0 {
		return rollMax
	}
	r := s.rolls[s.next%len(s.rolls)]
	s.next++
	return min(max(r, rollMin), rollMax)
}

// Drawn reports how many rolls have been consumed.
func (s *ScriptedRoller) Drawn() int { return s.next }
