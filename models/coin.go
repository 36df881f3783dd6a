// Package models provides prebuilt probabilistic model components. Each
// component is a plain struct with configurable parameters and an Init that
// fills in defaults; its methods return unevaluated computations, so callers
// decide how deep to search and what to do with the distribution.
package models

import (
	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/prob"
)

// Coin models a biased coin.
type Coin struct {
	// --- Configurable Parameters ---

	// Bias is the probability that a toss comes up heads. The zero value
	// means unset: Init replaces it with 0.5. An always-tails coin is
	// prob.Flip(0) directly. A Bias outside [0, 1] panics on the first
	// toss.
	Bias float64
}

// Init fills in defaults for unset parameters.
func (c *Coin) Init() {
	if c.Bias == 0 {
		c.Bias = 0.5
	}
}

// NewCoin creates and initializes a fair coin.
func NewCoin() *Coin {
	c := &Coin{}
	c.Init()
	return c
}

// Toss yields heads with probability Bias.
func (c *Coin) Toss() prob.Computation[bool] {
	return prob.Flip(c.Bias)
}

// FirstHeads counts tosses until the first heads, the classic geometric
// distribution. The model is unbounded: a run of tails can always continue,
// so any finite search leaves (1-Bias)^depth of the mass unknown.
func (c *Coin) FirstHeads() prob.Computation[int] {
	return prob.Bind(c.Toss(), func(heads bool) prob.Computation[int] {
		if heads {
			return prob.Return(1)
		}
		return prob.Map(c.FirstHeads(), func(n int) int { return n + 1 })
	})
}
