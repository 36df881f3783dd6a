package models

import (
	"slices"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/prob"
)

// MontyHall models the game show puzzle: a car behind one of Doors doors,
// the contestant picks one, the host opens another door that hides no car,
// and the contestant may switch.
type MontyHall struct {
	// --- Configurable Parameters ---

	// Doors is the total number of doors. Defaults to 3, the classic game.
	// Fewer than 3 doors leaves the host nothing to open.
	Doors int
}

// Init fills in defaults for unset parameters.
func (m *MontyHall) Init() {
	if m.Doors < 3 {
		m.Doors = 3
	}
}

// NewMontyHall creates and initializes the classic three-door game.
func NewMontyHall() *MontyHall {
	m := &MontyHall{}
	m.Init()
	return m
}

// Play yields whether the contestant wins the car. The host's choice is
// modeled explicitly: he opens a uniformly chosen door that is neither the
// pick nor the car. That constraint is what makes switching profitable; with
// three doors, switching wins 2/3 of the time and staying only 1/3.
func (m *MontyHall) Play(switchDoor bool) prob.Computation[bool] {
	doors := m.doorList()
	return prob.Bind(prob.UniformOver(doors...), func(car int) prob.Computation[bool] {
		return prob.Bind(prob.UniformOver(doors...), func(pick int) prob.Computation[bool] {
			hostOptions := exclude(doors, pick, car)
			return prob.Bind(prob.UniformOver(hostOptions...), func(open int) prob.Computation[bool] {
				if !switchDoor {
					return prob.Return(pick == car)
				}
				finalOptions := exclude(doors, pick, open)
				return prob.Map(prob.UniformOver(finalOptions...), func(final int) bool {
					return final == car
				})
			})
		})
	})
}

func (m *MontyHall) doorList() []int {
	doors := make([]int, m.Doors)
	for i := range doors {
		doors[i] = i + 1
	}
	return doors
}

func exclude(doors []int, banned ...int) []int {
	var out []int
	for _, d := range doors {
		if !slices.Contains(banned, d) {
			out = append(out, d)
		}
	}
	return out
}
