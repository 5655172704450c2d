package learning

import (
	"fmt"
	"math"

	"github.com/mitchelldurbincs/GridRacingRL/internal/common"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

// QValues holds one value per action, indexed by core.Action
type QValues [core.NumActions]int32

// Policy is a closed set of action-selection rules. The concrete types are
// Best, Random, EpsilonGreedy, EpsilonDecay and Softmax.
type Policy interface {
	fmt.Stringer
	policy()
}

// Best always exploits
type Best struct{}

// Random always explores
type Random struct{}

// EpsilonGreedy explores with probability Epsilon
type EpsilonGreedy struct {
	Epsilon float64
}

// EpsilonDecay anneals epsilon linearly from Initial to Final over Total ticks
type EpsilonDecay struct {
	Initial float64
	Final   float64
	Tick    int
	Total   int
}

// Softmax samples actions in proportion to exp(Q/Temperature)
type Softmax struct {
	Temperature float64
}

func (Best) policy()          {}
func (Random) policy()        {}
func (EpsilonGreedy) policy() {}
func (EpsilonDecay) policy()  {}
func (Softmax) policy()       {}

func (Best) String() string   { return "best" }
func (Random) String() string { return "random" }

func (p EpsilonGreedy) String() string {
	return fmt.Sprintf("epsilon_greedy(%.3f)", p.Epsilon)
}

func (p EpsilonDecay) String() string {
	return fmt.Sprintf("epsilon_decay(%.3f->%.3f @ %d/%d)", p.Initial, p.Final, p.Tick, p.Total)
}

func (p Softmax) String() string {
	return fmt.Sprintf("softmax(%.3f)", p.Temperature)
}

// Epsilon returns the interpolated exploration rate for the current tick
func (p EpsilonDecay) Epsilon() float64 {
	return DecayedEpsilon(p.Initial, p.Final, p.Tick, p.Total)
}

// DecayedEpsilon interpolates linearly; progress past total holds at final
func DecayedEpsilon(initial, final float64, tick, total int) float64 {
	if total <= 0 {
		return final
	}
	progress := common.Clamp(float64(tick)/float64(total), 0, 1)
	return initial - (initial-final)*progress
}

// Select picks an action for q under p using draws derived from seed
func Select(p Policy, q QValues, seed uint32) core.Action {
	switch p := p.(type) {
	case Best:
		return BestAction(q)
	case Random:
		return randomAction(seed)
	case EpsilonGreedy:
		return epsilonGreedy(p.Epsilon, q, seed)
	case EpsilonDecay:
		return epsilonGreedy(p.Epsilon(), q, seed)
	case Softmax:
		return softmax(p.Temperature, q, seed)
	default:
		return BestAction(q)
	}
}

// BestAction returns the arg max of q; the lowest index wins ties
func BestAction(q QValues) core.Action {
	best := 0
	for i := 1; i < len(q); i++ {
		if q[i] > q[best] {
			best = i
		}
	}
	return core.Action(best)
}

// MaxValue returns the largest entry of q
func MaxValue(q QValues) int32 {
	return q[BestAction(q)]
}

func randomAction(seed uint32) core.Action {
	return core.Action(PseudoRandom(seed, core.NumActions))
}

func epsilonGreedy(epsilon float64, q QValues, seed uint32) core.Action {
	threshold := uint32(common.Clamp(epsilon, 0, 1) * 100)
	if PseudoRandom(seed, 100) < threshold {
		return randomAction(seed + 1)
	}
	return BestAction(q)
}

func softmax(temperature float64, q QValues, seed uint32) core.Action {
	if temperature <= 0 {
		return BestAction(q)
	}

	// Shift by the max; the normalised weights are unchanged.
	peak := float64(MaxValue(q))
	var weights [core.NumActions]float64
	var sum float64
	for i, v := range q {
		weights[i] = math.Exp((float64(v) - peak) / temperature)
		sum += weights[i]
	}

	draw := float64(PseudoRandom(seed, 10000)) / 10000
	var cumulative float64
	for i, w := range weights {
		cumulative += w / sum
		if draw < cumulative {
			return core.Action(i)
		}
	}
	return core.Action(core.NumActions - 1)
}

// SeedQValues returns the deterministic starting vector for a state never seen before
func SeedQValues(seed uint32) QValues {
	var q QValues
	for i := range q {
		q[i] = int32(PseudoRandom(seed+uint32(i), 5))
	}
	return q
}

// PolicyConfig is the caller-facing description of how agents choose actions
type PolicyConfig struct {
	Training     bool    `json:"training" mapstructure:"training"`
	Epsilon      float64 `json:"epsilon" mapstructure:"epsilon"`
	Temperature  float64 `json:"temperature" mapstructure:"temperature"`
	EpsilonDecay bool    `json:"epsilon_decay" mapstructure:"epsilon_decay"`
}

// DefaultPolicyConfig explores heavily and anneals over the race
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		Training:     true,
		Epsilon:      0.9,
		Temperature:  0,
		EpsilonDecay: true,
	}
}

// DefaultFinalEpsilon is where EpsilonDecay ends
const DefaultFinalEpsilon = 0.01

// ForTick resolves the configuration into the concrete policy for one tick.
// Outside training the agent always exploits. Training with neither a
// temperature nor a positive epsilon explores uniformly.
func (c PolicyConfig) ForTick(tick, total int, finalEpsilon float64) Policy {
	switch {
	case !c.Training:
		return Best{}
	case c.Temperature > 0:
		return Softmax{Temperature: c.Temperature}
	case c.Epsilon > 0 && c.EpsilonDecay && tick > 0:
		return EpsilonDecay{Initial: c.Epsilon, Final: finalEpsilon, Tick: tick, Total: total}
	case c.Epsilon > 0:
		return EpsilonGreedy{Epsilon: c.Epsilon}
	default:
		return Random{}
	}
}
