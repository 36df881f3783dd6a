package prob

// Monad operations for computations.
//
// Bind is the fundamental sequencing operation. Map and Then are derived but
// kept as independent implementations: Map rewrites the tree structurally and
// therefore costs no search depth, which Bind(m, compose(Return, f)) would.

// Bind sequences two computations: it runs m and feeds each value m can take
// to f, weighting f's alternatives by the probability of that value.
//
// Forcing the result forces m by one layer only. Every case of m becomes a
// suspended case of the result, so under a bounded search each Bind step
// costs one depth unit per path. f is not called until the search actually
// enters the branch, which is what lets recursive models like a geometric
// retry loop terminate construction.
func Bind[A, B any](m Computation[A], f func(A) Computation[B]) Computation[B] {
	return Computation[B]{force: func() *Node[B] {
		src := m.Force()
		cases := make([]Case[B], 0, len(src.Cases))
		for _, c := range src.Cases {
			if c.Resolved {
				cases = append(cases, suspended(c.Weight, enter(c.Value, f)))
			} else {
				cases = append(cases, suspended(c.Weight, Bind(c.Rest, f)))
			}
		}
		return &Node[B]{Cases: cases}
	}}
}

// enter wraps the application f(x) as a computation without calling f yet.
func enter[A, B any](x A, f func(A) Computation[B]) Computation[B] {
	return Computation[B]{force: func() *Node[B] { return f(x).Force() }}
}

// Map applies a pure function to every value a computation can take.
//
// Unlike Bind, Map is structural: resolved cases stay resolved with their
// value transformed in place, suspended cases get the Map pushed inside. A
// bounded search pays nothing extra for it.
func Map[A, B any](m Computation[A], f func(A) B) Computation[B] {
	return Computation[B]{force: func() *Node[B] {
		src := m.Force()
		cases := make([]Case[B], 0, len(src.Cases))
		for _, c := range src.Cases {
			if c.Resolved {
				cases = append(cases, resolved(c.Weight, f(c.Value)))
			} else {
				cases = append(cases, suspended(c.Weight, Map(c.Rest, f)))
			}
		}
		return &Node[B]{Cases: cases}
	}}
}

// Then sequences two computations, discarding the first result. The second
// computation is the same for every path through the first, but each path
// still carries its own probability into n.
func Then[A, B any](m Computation[A], n Computation[B]) Computation[B] {
	return Bind(m, func(_ A) Computation[B] { return n })
}
