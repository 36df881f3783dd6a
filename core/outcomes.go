package core

import (
	"fmt"
	"math"
	"math/rand"
)

// Prob is a probability weight. Buckets carry relative weights; a weight is
// only a probability proper once the containing collection has been
// normalized so everything sums to 1.
type Prob = float64

// Bucket pairs a single outcome value with its weight.
type Bucket[V any] struct {
	Weight Prob
	Value  V
}

// Outcomes is an ordered collection of weighted values - the concrete
// representation of a discrete distribution. Duplicate values are permitted
// and collapsed later by Dedup. Insertion order is preserved but carries no
// meaning beyond deterministic iteration.
type Outcomes[V any] struct {
	Buckets []Bucket[V]
}

// Add appends a weighted value and returns the receiver (or a fresh Outcomes
// when called on nil) so calls can be chained. The weight must be finite and
// non-negative; anything else panics, since a malformed weight would silently
// corrupt every distribution derived from this one.
func (o *Outcomes[V]) Add(weight Prob, value V) *Outcomes[V] {
	if o == nil {
		o = &Outcomes[V]{}
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		panic(fmt.Sprintf("invalid weight %v: must be finite and >= 0", weight))
	}
	o.Buckets = append(o.Buckets, Bucket[V]{weight, value})
	return o
}

func (o *Outcomes[V]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Buckets)
}

// TotalWeight returns the sum of weights of all buckets.
func (o *Outcomes[V]) TotalWeight() (out Prob) {
	if o == nil {
		return 0
	}
	for _, b := range o.Buckets {
		out += b.Weight
	}
	return
}

func (o *Outcomes[V]) Copy() *Outcomes[V] {
	if o == nil {
		return nil
	}
	out := &Outcomes[V]{Buckets: make([]Bucket[V], len(o.Buckets))}
	copy(out.Buckets, o.Buckets)
	return out
}

// Append adds the buckets of the given collections to this one.
func (o *Outcomes[V]) Append(rest ...*Outcomes[V]) *Outcomes[V] {
	if o == nil {
		o = &Outcomes[V]{}
	}
	for _, another := range rest {
		if another != nil {
			for _, b := range another.Buckets {
				o = o.Add(b.Weight, b.Value)
			}
		}
	}
	return o
}

// GetValue returns the value if there is exactly one bucket. Useful for
// distributions known to be deterministic.
func (o *Outcomes[V]) GetValue() (result V, ok bool) {
	if o != nil && o.Len() == 1 {
		return o.Buckets[0].Value, true
	}
	return
}

// ScaleWeights multiplies every weight by factor, in place. Negative factors
// make no sense for probability mass and are clamped to 0.
func (o *Outcomes[V]) ScaleWeights(factor Prob) {
	if o == nil {
		return
	}
	if factor < 0 {
		factor = 0
	}
	for i := range o.Buckets {
		o.Buckets[i].Weight *= factor
	}
}

// Split partitions the buckets into those whose value matches and those whose
// value does not. Weights are carried over unchanged.
func (o *Outcomes[V]) Split(matcher func(v V) bool) (matched *Outcomes[V], unmatched *Outcomes[V]) {
	if o != nil {
		for _, b := range o.Buckets {
			if matcher(b.Value) {
				matched = matched.Add(b.Weight, b.Value)
			} else {
				unmatched = unmatched.Add(b.Weight, b.Value)
			}
		}
	}
	return
}

// Map transforms every value through mapper, keeping weights. Distinct inputs
// may map to the same output; the result is not deduplicated.
func Map[V any, U any](o *Outcomes[V], mapper func(v V) U) (out *Outcomes[U]) {
	out = &Outcomes[U]{}
	if o == nil {
		return
	}
	for _, b := range o.Buckets {
		out = out.Add(b.Weight, mapper(b.Value))
	}
	return
}

// Dedup collapses equal values into a single bucket whose weight is the sum
// of all occurrences. The result is deterministic: each value sits at the
// position of its first occurrence. Total weight is preserved.
func Dedup[V comparable](o *Outcomes[V]) *Outcomes[V] {
	out := &Outcomes[V]{}
	if o == nil {
		return out
	}
	index := make(map[V]int, len(o.Buckets))
	for _, b := range o.Buckets {
		if at, seen := index[b.Value]; seen {
			out.Buckets[at].Weight += b.Weight
			continue
		}
		index[b.Value] = len(out.Buckets)
		out.Buckets = append(out.Buckets, b)
	}
	return out
}

// Sample draws a single value from the distribution in proportion to bucket
// weights. The caller supplies a seeded rand.Rand. Returns the zero value and
// false when the distribution is nil, empty, has no weight, or rng is nil.
func (o *Outcomes[V]) Sample(rng *rand.Rand) (result V, ok bool) {
	if o == nil || o.Len() == 0 || rng == nil {
		return
	}
	totalWeight := o.TotalWeight()
	if totalWeight <= 1e-12 {
		return
	}

	target := rng.Float64() * totalWeight
	cumulative := Prob(0)
	for _, b := range o.Buckets {
		cumulative += b.Weight
		if cumulative >= target {
			return b.Value, true
		}
	}
	// Floating point drift can leave target a hair above the final cumulative
	// weight; fall back to the last bucket.
	return o.Buckets[o.Len()-1].Value, true
}
