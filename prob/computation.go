// Package prob implements probabilistic computations as lazily unfolding
// weighted choice trees. A Computation describes every way a program run can
// go together with the probability of each way; nothing is evaluated until a
// search (Explore, Run) forces it, and the search only ever forces as much of
// the tree as its depth budget allows. Distributions produced by a search are
// core.Outcomes values and can be fed to the analyzers there.
package prob

import (
	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/core"
)

// Unit is the result type of computations run only for their effect on the
// search, such as Observe.
type Unit = struct{}

// Computation is an unevaluated probabilistic program producing values of
// type V. Computations are immutable: combinators build new ones and never
// change their inputs, so values can be shared and re-explored freely.
//
// The zero value behaves like Fail: it has no cases and carries no mass.
type Computation[V any] struct {
	force func() *Node[V]
}

// Node is one forced layer of a choice tree: the weighted ways the
// computation can proceed from here. A node with no cases is a dead end and
// its incoming probability mass simply vanishes.
type Node[V any] struct {
	Cases []Case[V]
}

// Case is a single weighted branch of a Node. Either the branch is resolved,
// carrying a final Value, or it is suspended, carrying the Rest of the
// computation to be forced later. Weight is the branch probability local to
// the node, not a path probability.
type Case[V any] struct {
	Weight   core.Prob
	Resolved bool
	Value    V
	Rest     Computation[V]
}

// Force evaluates exactly one layer of the tree. Callers other than the
// search engine rarely need this.
func (c Computation[V]) Force() *Node[V] {
	if c.force == nil {
		return &Node[V]{}
	}
	return c.force()
}

func resolved[V any](weight core.Prob, value V) Case[V] {
	return Case[V]{Weight: weight, Resolved: true, Value: value}
}

func suspended[V any](weight core.Prob, rest Computation[V]) Case[V] {
	return Case[V]{Weight: weight, Rest: rest}
}
