package models

import (
	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/prob"
)

// GamblersRuin models a gambler betting one unit per round until the
// bankroll reaches Target or hits zero.
type GamblersRuin struct {
	// --- Configurable Parameters ---

	// Stake is the starting bankroll. Zero or negative means unset: Init
	// replaces it with 1.
	Stake int

	// Target is the bankroll at which the gambler walks away. Any value
	// at or below Stake means unset: Init replaces it with Stake+2.
	Target int

	// WinProb is the chance of winning a single round. The zero value
	// means unset: Init replaces it with 0.5.
	WinProb float64
}

// Init fills in defaults for unset parameters.
func (g *GamblersRuin) Init() {
	if g.Stake <= 0 {
		g.Stake = 1
	}
	if g.Target <= g.Stake {
		g.Target = g.Stake + 2
	}
	if g.WinProb == 0 {
		g.WinProb = 0.5
	}
}

// NewGamblersRuin creates and initializes a fair game starting at 1 aiming
// for 3.
func NewGamblersRuin() *GamblersRuin {
	g := &GamblersRuin{}
	g.Init()
	return g
}

// ReachesTarget yields true when the bankroll hits Target before going
// broke. The game between 0 and Target can run arbitrarily long, so a finite
// search always leaves a sliver of unknown mass; it shrinks geometrically
// with depth. Each round costs two depth units, one to take the bet and one
// to re-enter the game.
func (g *GamblersRuin) ReachesTarget() prob.Computation[bool] {
	return g.play(g.Stake)
}

func (g *GamblersRuin) play(bankroll int) prob.Computation[bool] {
	if bankroll <= 0 {
		return prob.Return(false)
	}
	if bankroll >= g.Target {
		return prob.Return(true)
	}
	// Delay keeps the construction finite: the game graph is cyclic, and
	// building the next round eagerly would recurse forever.
	return prob.Choose(g.WinProb,
		prob.Delay(func() prob.Computation[bool] { return g.play(bankroll + 1) }),
		prob.Delay(func() prob.Computation[bool] { return g.play(bankroll - 1) }),
	)
}
