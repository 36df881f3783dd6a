package core

import (
	"cmp"
	"math"
	"sort"
)

// Number covers the value types the weighted moment helpers work over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Mean returns the weighted average of the values. Zero-mass distributions
// yield 0.
func Mean[V Number](o *Outcomes[V]) float64 {
	totalWeight := o.TotalWeight()
	if o.Len() == 0 || totalWeight <= 0 {
		return 0
	}
	weightedSum := 0.0
	for _, b := range o.Buckets {
		weightedSum += b.Weight * float64(b.Value)
	}
	return weightedSum / totalWeight
}

// Variance returns the weighted variance of the values around Mean.
func Variance[V Number](o *Outcomes[V]) float64 {
	totalWeight := o.TotalWeight()
	if o.Len() == 0 || totalWeight <= 0 {
		return 0
	}
	mean := Mean(o)
	sum := 0.0
	for _, b := range o.Buckets {
		d := float64(b.Value) - mean
		sum += b.Weight * d * d
	}
	return sum / totalWeight
}

// StdDev returns the weighted standard deviation of the values.
func StdDev[V Number](o *Outcomes[V]) float64 {
	return math.Sqrt(Variance(o))
}

// Percentile returns the smallest value v such that the cumulative weight of
// values <= v reaches p of the total mass. p must be in [0, 1]; out-of-range
// p, empty and zero-mass distributions all report ok=false.
func Percentile[V cmp.Ordered](o *Outcomes[V], p float64) (result V, ok bool) {
	totalWeight := o.TotalWeight()
	if o.Len() == 0 || totalWeight <= 0 || p < 0 || p > 1 {
		return
	}

	sorted := make([]Bucket[V], o.Len())
	copy(sorted, o.Buckets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp.Less(sorted[i].Value, sorted[j].Value)
	})

	targetWeight := p * totalWeight
	cumulative := Prob(0)
	for _, b := range sorted {
		cumulative += b.Weight
		if cumulative >= targetWeight {
			return b.Value, true
		}
	}
	return sorted[len(sorted)-1].Value, true
}

// ProbWhere returns the fraction of the total mass sitting on values that
// match the predicate.
func ProbWhere[V any](o *Outcomes[V], pred func(V) bool) Prob {
	totalWeight := o.TotalWeight()
	if totalWeight <= 0 {
		return 0
	}
	matched, _ := o.Split(pred)
	return matched.TotalWeight() / totalWeight
}
