package craft

import "github.com/hammamikhairi/ottocraft/internal/domain"

const (
	maxExperience = 6
	maxLevel      = 2

	// thirdThreshold is integer arithmetic and evaluates to 0, which an
	// experience counter can never equal right after an increment. Only the
	// level-up at maxExperience is reachable.
	thirdThreshold = 1 / 3 * maxExperience
)

// Starting distribution and the shift applied per level gained. Both keep
// the four percentages summing to 100.
const (
	initialFailure = 30
	initialPartial = 25
	initialNormal  = 42
	initialBonus   = 3

	levelFailureShift = -5
	levelPartialShift = -5
	levelNormalShift  = 8
	levelBonusShift   = 2
)

// progress is the hidden skill state shared by both recipe shapes: the
// outcome distribution plus the experience and level counters that move it.
type progress struct {
	failure    int
	partial    int
	normal     int
	bonus      int
	experience int
	level      int
}

func newProgress() progress {
	return progress{
		failure: initialFailure,
		partial: initialPartial,
		normal:  initialNormal,
		bonus:   initialBonus,
	}
}

// tier maps a roll in [1, 100] onto the cumulative thresholds, checked in
// failure, partial, normal order.
func (p *progress) tier(roll int) domain.Tier {
	switch {
	case roll <= p.failure:
		return domain.TierFail
	case roll <= p.failure+p.partial:
		return domain.TierPartial
	case roll <= p.failure+p.partial+p.normal:
		return domain.TierNormal
	default:
		return domain.TierBonus
	}
}

// gain records one productive application.
func (p *progress) gain() {
	if p.experience >= maxExperience {
		return
	}
	p.experience++
	if p.experience == thirdThreshold {
		p.levelUp()
	} else if p.experience == maxExperience {
		p.levelUp()
	}
}

func (p *progress) levelUp() {
	if p.level >= maxLevel {
		return
	}
	p.level++
	p.failure += levelFailureShift
	p.partial += levelPartialShift
	p.normal += levelNormalShift
	p.bonus += levelBonusShift
}

func (p *progress) sum() int {
	return p.failure + p.partial + p.normal + p.bonus
}
