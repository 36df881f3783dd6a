package models

import (
	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/prob"
)

// Die models a fair die.
type Die struct {
	// --- Configurable Parameters ---

	// Sides is the number of faces. Zero or negative means unset: Init
	// replaces it with 6.
	Sides int
}

// Init fills in defaults for unset parameters.
func (d *Die) Init() {
	if d.Sides <= 0 {
		d.Sides = 6
	}
}

// NewDie creates and initializes a six-sided die.
func NewDie() *Die {
	d := &Die{}
	d.Init()
	return d
}

// Roll yields each face with equal probability.
func (d *Die) Roll() prob.Computation[int] {
	return prob.Uniform(1, d.Sides)
}

// Sum is the total of n independent rolls. Each roll costs one search depth
// unit, so a full resolution needs depth n. Zero or negative n is an empty
// hand summing to 0.
func (d *Die) Sum(n int) prob.Computation[int] {
	if n <= 0 {
		return prob.Return(0)
	}
	return prob.Bind(d.Roll(), func(first int) prob.Computation[int] {
		return prob.Map(d.Sum(n-1), func(rest int) int { return first + rest })
	})
}

// SumGivenAtLeast is the n-roll total conditioned on reaching threshold.
// Totals below the threshold are discarded as failed observations and the
// surviving mass renormalizes, so the result is the usual conditional
// distribution P(total | total >= threshold). An unreachable threshold makes
// every path fail.
func (d *Die) SumGivenAtLeast(n, threshold int) prob.Computation[int] {
	return prob.Bind(d.Sum(n), func(total int) prob.Computation[int] {
		return prob.Then(prob.Observe(total >= threshold), prob.Return(total))
	})
}
