package prob

import (
	"fmt"
	"math"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/core"
)

// checkProb rejects probabilities outside [0, 1]. Constructors validate their
// parameters eagerly so a bad value blows up where it was written, not deep
// inside a later search.
func checkProb(p float64) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		panic(fmt.Sprintf("invalid probability %v: must be in [0, 1]", p))
	}
}

// Return builds a computation that yields value with probability 1.
func Return[V any](value V) Computation[V] {
	node := &Node[V]{Cases: []Case[V]{resolved(1, value)}}
	return Computation[V]{force: func() *Node[V] { return node }}
}

// FromOutcomes builds a computation that yields each bucket value with
// probability proportional to its weight. The buckets are snapshotted at
// construction, so later mutation of dist does not affect the computation.
// Weights need not sum to 1; they are normalized by their total, so a dist
// weighted {90, 10} behaves exactly like one weighted {0.9, 0.1}. A nil,
// empty or zero-mass dist behaves like Fail. Negative, NaN or infinite
// weights panic.
func FromOutcomes[V any](dist *core.Outcomes[V]) Computation[V] {
	snapshot := dist.Copy()
	if snapshot != nil {
		for _, b := range snapshot.Buckets {
			if b.Weight < 0 || math.IsNaN(b.Weight) || math.IsInf(b.Weight, 0) {
				panic(fmt.Sprintf("invalid weight %v: must be finite and >= 0", b.Weight))
			}
		}
	}
	total := snapshot.TotalWeight()
	if total <= 0 {
		return Fail[V]()
	}

	cases := make([]Case[V], 0, snapshot.Len())
	for _, b := range snapshot.Buckets {
		cases = append(cases, resolved(b.Weight/total, b.Value))
	}
	node := &Node[V]{Cases: cases}
	return Computation[V]{force: func() *Node[V] { return node }}
}

// Flip builds a computation that yields true with probability p and false
// with probability 1-p. p outside [0, 1] panics.
func Flip(p float64) Computation[bool] {
	checkProb(p)
	node := &Node[bool]{Cases: []Case[bool]{
		resolved(p, true),
		resolved(1-p, false),
	}}
	return Computation[bool]{force: func() *Node[bool] { return node }}
}

// Uniform builds a computation that yields each integer in the closed range
// [lo, hi] with equal probability. hi < lo panics.
func Uniform(lo, hi int) Computation[int] {
	if hi < lo {
		panic(fmt.Sprintf("invalid range [%d, %d]: hi must be >= lo", lo, hi))
	}
	n := hi - lo + 1
	cases := make([]Case[int], 0, n)
	for v := lo; v <= hi; v++ {
		cases = append(cases, resolved(1/core.Prob(n), v))
	}
	node := &Node[int]{Cases: cases}
	return Computation[int]{force: func() *Node[int] { return node }}
}

// UniformOver builds a computation that yields each given value with equal
// probability. No values behaves like Fail.
func UniformOver[V any](values ...V) Computation[V] {
	if len(values) == 0 {
		return Fail[V]()
	}
	cases := make([]Case[V], 0, len(values))
	for _, v := range values {
		cases = append(cases, resolved(1/core.Prob(len(values)), v))
	}
	node := &Node[V]{Cases: cases}
	return Computation[V]{force: func() *Node[V] { return node }}
}

// Choose builds a computation that continues as a with probability p and as b
// with probability 1-p. Unlike FromOutcomes, the alternatives stay suspended:
// a bounded search spends one depth unit entering whichever branch it
// explores. p outside [0, 1] panics.
func Choose[V any](p float64, a, b Computation[V]) Computation[V] {
	checkProb(p)
	node := &Node[V]{Cases: []Case[V]{
		suspended(p, a),
		suspended(1-p, b),
	}}
	return Computation[V]{force: func() *Node[V] { return node }}
}

// Fail builds the computation with no outcomes at all. Its probability mass
// vanishes rather than counting as unexplored.
func Fail[V any]() Computation[V] {
	node := &Node[V]{}
	return Computation[V]{force: func() *Node[V] { return node }}
}

// Observe conditions a computation on cond: it succeeds with Unit when cond
// holds and fails otherwise. Binding the rest of a model after an Observe
// discards every path on which the condition was false; normalization then
// redistributes the surviving mass, which is exactly conditional probability.
func Observe(cond bool) Computation[Unit] {
	if cond {
		return Return(Unit{})
	}
	return Fail[Unit]()
}

// Delay defers building a computation until a search reaches it, at the price
// of one depth unit. Recursive models that do not go through Bind need it to
// avoid constructing themselves forever:
//
//	var never func() Computation[int]
//	never = func() Computation[int] { return Delay(never) }
func Delay[V any](build func() Computation[V]) Computation[V] {
	inner := Computation[V]{force: func() *Node[V] { return build().Force() }}
	node := &Node[V]{Cases: []Case[V]{suspended(1, inner)}}
	return Computation[V]{force: func() *Node[V] { return node }}
}
