package prob

import (
	"errors"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/core"
)

// ErrNegativeDepth is returned when a search is asked to run with a negative
// depth bound.
var ErrNegativeDepth = errors.New("search depth must be non-negative")

// Explore searches m to the given depth and reports every outcome it can
// reach, plus the total probability mass of the branches it had to abandon.
//
// Forcing the root layer is free. Entering a suspended case costs one depth
// unit on that path, so maxDepth bounds how many suspensions deep any single
// path may go; sibling branches each get the full remaining budget. A
// suspended case met with no budget left contributes its path probability to
// the unknown mass instead of being forced. Branches of a forced layer are
// visited left to right, so the raw outcome order is deterministic.
//
// The outcomes are raw: duplicate values are reported separately and weights
// are unnormalized path probabilities. Run layers deduplication and
// normalization on top. With maxDepth 0 only the root's already resolved
// cases are reported.
func Explore[V any](maxDepth int, m Computation[V]) (*core.Outcomes[V], core.Prob, error) {
	if maxDepth < 0 {
		return nil, 0, ErrNegativeDepth
	}

	outcomes := &core.Outcomes[V]{}
	unknown := core.Prob(0)

	var walk func(rest Computation[V], pathProb core.Prob, budget int)
	walk = func(rest Computation[V], pathProb core.Prob, budget int) {
		node := rest.Force()
		for _, c := range node.Cases {
			weight := pathProb * c.Weight
			if weight == 0 {
				continue
			}
			switch {
			case c.Resolved:
				outcomes.Add(weight, c.Value)
			case budget > 0:
				walk(c.Rest, weight, budget-1)
			default:
				unknown += weight
			}
		}
	}
	walk(m, 1, maxDepth)

	Debug("explore: depth %d found %d raw outcomes, unknown mass %.6g", maxDepth, outcomes.Len(), unknown)
	return outcomes, unknown, nil
}
