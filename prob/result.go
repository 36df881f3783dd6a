package prob

import (
	"errors"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/core"
)

// ErrAllPathsFailed is returned when every path of a computation failed, so
// there is no probability mass left to normalize.
var ErrAllPathsFailed = errors.New("all paths failed: no probability mass to normalize")

// Result pairs the distribution found by a bounded search with the
// probability mass the search ran out of depth for. A normalized Result's
// distribution weights and Unknown sum to 1, so Unknown reads directly as
// "the probability that the answer is something not listed here".
//
// Unknown mass is not failure mass: failed paths are simply gone, while
// unknown mass belongs to branches a deeper search could still resolve.
type Result[V any] struct {
	Dist    *core.Outcomes[V]
	Unknown core.Prob
}

// Normalize scales the distribution and the unknown mass by their combined
// total so they sum to 1. Normalizing an already normalized result changes
// nothing. If the total is zero there is nothing to scale and normalization
// reports ErrAllPathsFailed. The receiver is left untouched.
func (r Result[V]) Normalize() (Result[V], error) {
	total := r.Dist.TotalWeight() + r.Unknown
	if total <= 0 {
		return Result[V]{}, ErrAllPathsFailed
	}

	dist := r.Dist.Copy()
	if dist == nil {
		dist = &core.Outcomes[V]{}
	}
	dist.ScaleWeights(1 / total)
	return Result[V]{Dist: dist, Unknown: r.Unknown / total}, nil
}

// ProbOf returns the probability mass r assigns to exactly value.
func ProbOf[V comparable](r Result[V], value V) core.Prob {
	matched, _ := r.Dist.Split(func(v V) bool { return v == value })
	return matched.TotalWeight()
}

// Run explores m to the given depth, merges duplicate values and normalizes
// the result. This is the standard way to evaluate a model: Explore is the
// raw engine underneath for callers that want the unmerged outcomes.
//
// Run fails with ErrNegativeDepth for a negative bound and ErrAllPathsFailed
// when the search found no mass at all, which happens exactly when every
// path ended in a failed condition or an empty distribution.
func Run[V comparable](maxDepth int, m Computation[V]) (Result[V], error) {
	raw, unknown, err := Explore(maxDepth, m)
	if err != nil {
		return Result[V]{}, err
	}
	return Result[V]{Dist: core.Dedup(raw), Unknown: unknown}.Normalize()
}
