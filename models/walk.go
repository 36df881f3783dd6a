package models

import (
	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/prob"
)

// RandomWalk models a one-dimensional walk taking unit steps.
type RandomWalk struct {
	// --- Configurable Parameters ---

	// Right is the probability of a +1 step; 1-Right is the probability of
	// a -1 step. The zero value means unset: Init replaces it with 0.5,
	// the symmetric walk.
	Right float64
}

// Init fills in defaults for unset parameters.
func (w *RandomWalk) Init() {
	if w.Right == 0 {
		w.Right = 0.5
	}
}

// NewRandomWalk creates and initializes a symmetric walk.
func NewRandomWalk() *RandomWalk {
	w := &RandomWalk{}
	w.Init()
	return w
}

func (w *RandomWalk) step() prob.Computation[int] {
	return prob.Map(prob.Flip(w.Right), func(right bool) int {
		if right {
			return 1
		}
		return -1
	})
}

// Position is the walker's position after the given number of steps,
// starting from 0. One search depth unit per step.
func (w *RandomWalk) Position(steps int) prob.Computation[int] {
	if steps <= 0 {
		return prob.Return(0)
	}
	return prob.Bind(w.step(), func(dir int) prob.Computation[int] {
		return prob.Map(w.Position(steps-1), func(rest int) int { return dir + rest })
	})
}
