// Package policy maps the trend delta between an internal and an
// environmental signal window onto a coarse action.
package policy

import (
	"trendquest/internal/signal"
)

// Action enumerates the decisions the comparator can emit.
type Action string

const (
	// EvolveOrDie means the environment is outpacing internal gains.
	EvolveOrDie Action = "EVOLVE_OR_DIE"
	// Observe means neither side dominates.
	Observe Action = "OBSERVE"
	// FarmAndOptimize means the current edge dominates the environment.
	FarmAndOptimize Action = "FARM_AND_OPTIMIZE"
)

const (
	defaultTauPos = 0.2
	defaultTauNeg = -0.2
)

// Thresholds bounds the dead zone around a zero trend delta.
type Thresholds struct {
	TauPos float64
	TauNeg float64
}

// DefaultThresholds returns the published comparator band of ±0.2.
func DefaultThresholds() Thresholds {
	return Thresholds{TauPos: defaultTauPos, TauNeg: defaultTauNeg}
}

// orDefault lets a zero-value Thresholds behave like the published band.
func (t Thresholds) orDefault() Thresholds {
	if t.TauPos == 0 && t.TauNeg == 0 {
		return DefaultThresholds()
	}
	return t
}

// Classify compares the trend of the internal window against the
// environmental one. Strict inequalities only: a delta landing exactly on a
// threshold stays in Observe.
func Classify(self, env signal.Window, t Thresholds) Action {
	t = t.orDefault()
	delta := self.Trend() - env.Trend()
	switch {
	case delta < t.TauNeg:
		return EvolveOrDie
	case delta > t.TauPos:
		return FarmAndOptimize
	default:
		return Observe
	}
}

// Rationale returns the canned explanation printed alongside a decision.
func Rationale(a Action) string {
	switch a {
	case EvolveOrDie:
		return "Environment outpaces internal gains; pivot to exploring a new hypothesis/skill pathway."
	case FarmAndOptimize:
		return "Leverage current edge; harvest and refine."
	default:
		return "Neither side dominates; probe safely, watch shifts."
	}
}
