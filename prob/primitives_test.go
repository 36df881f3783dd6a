package prob

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/core"
)

func TestReturn(t *testing.T) {
	node := Return(42).Force()
	require.Len(t, node.Cases, 1)
	assert.True(t, node.Cases[0].Resolved)
	assert.Equal(t, 42, node.Cases[0].Value)
	assert.InDelta(t, 1.0, node.Cases[0].Weight, 1e-9)

	// Already resolved at the root, so even a zero-depth search finds it.
	res, err := Run(0, Return("done"))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ProbOf(res, "done"), 1e-9)
	assert.Zero(t, res.Unknown)
}

func TestZeroValueBehavesLikeFail(t *testing.T) {
	var zero Computation[int]
	assert.Empty(t, zero.Force().Cases)
}

func TestFromOutcomes(t *testing.T) {
	// Relative weights are normalized by their total.
	dist := (&core.Outcomes[string]{}).Add(90, "hit").Add(10, "miss")
	res, err := Run(0, FromOutcomes(dist))
	require.NoError(t, err)
	assert.InDelta(t, 0.9, ProbOf(res, "hit"), 1e-9)
	assert.InDelta(t, 0.1, ProbOf(res, "miss"), 1e-9)
	assert.Zero(t, res.Unknown)
}

func TestFromOutcomes_SnapshotsAtConstruction(t *testing.T) {
	dist := (&core.Outcomes[int]{}).Add(1, 1).Add(1, 2)
	comp := FromOutcomes(dist)
	dist.Add(998, 3)

	res, err := Run(0, comp)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ProbOf(res, 1), 1e-9)
	assert.InDelta(t, 0.5, ProbOf(res, 2), 1e-9)
	assert.Zero(t, ProbOf(res, 3))
}

func TestFromOutcomes_DegenerateBehavesLikeFail(t *testing.T) {
	var nilDist *core.Outcomes[int]
	assert.Empty(t, FromOutcomes(nilDist).Force().Cases)
	assert.Empty(t, FromOutcomes(&core.Outcomes[int]{}).Force().Cases)
	assert.Empty(t, FromOutcomes((&core.Outcomes[int]{}).Add(0, 7)).Force().Cases)
}

func TestFromOutcomes_BadWeightPanics(t *testing.T) {
	bad := &core.Outcomes[int]{Buckets: []core.Bucket[int]{{Weight: -1, Value: 1}}}
	assert.Panics(t, func() { FromOutcomes(bad) })

	inf := &core.Outcomes[int]{Buckets: []core.Bucket[int]{{Weight: math.Inf(1), Value: 1}}}
	assert.Panics(t, func() { FromOutcomes(inf) })
}

func TestFlip(t *testing.T) {
	node := Flip(0.3).Force()
	require.Len(t, node.Cases, 2)
	assert.True(t, node.Cases[0].Resolved)
	assert.Equal(t, true, node.Cases[0].Value)
	assert.InDelta(t, 0.3, node.Cases[0].Weight, 1e-9)
	assert.Equal(t, false, node.Cases[1].Value)
	assert.InDelta(t, 0.7, node.Cases[1].Weight, 1e-9)

	assert.Panics(t, func() { Flip(-0.1) })
	assert.Panics(t, func() { Flip(1.1) })
	assert.Panics(t, func() { Flip(math.NaN()) })
}

func TestUniform(t *testing.T) {
	res, err := Run(0, Uniform(1, 6))
	require.NoError(t, err)
	assert.Equal(t, 6, res.Dist.Len())
	for v := 1; v <= 6; v++ {
		assert.InDelta(t, 1.0/6.0, ProbOf(res, v), 1e-9)
	}
	assert.Zero(t, res.Unknown)

	// Single-point range is fine.
	res, err = Run(0, Uniform(4, 4))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ProbOf(res, 4), 1e-9)

	assert.Panics(t, func() { Uniform(3, 2) })
}

func TestUniformOver(t *testing.T) {
	res, err := Run(0, UniformOver("a", "b", "c"))
	require.NoError(t, err)
	for _, v := range []string{"a", "b", "c"} {
		assert.InDelta(t, 1.0/3.0, ProbOf(res, v), 1e-9)
	}

	assert.Empty(t, UniformOver[int]().Force().Cases)
}

func TestChoose(t *testing.T) {
	comp := Choose(0.3, Return(1), Return(2))
	node := comp.Force()
	require.Len(t, node.Cases, 2)
	assert.False(t, node.Cases[0].Resolved)
	assert.False(t, node.Cases[1].Resolved)

	// The alternatives stay suspended: a zero-depth search cannot enter
	// either branch, so the whole mass is unknown.
	res, err := Run(0, comp)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Dist.Len())
	assert.InDelta(t, 1.0, res.Unknown, 1e-9)

	// One depth unit is enough to resolve both branches here.
	res, err = Run(1, comp)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, ProbOf(res, 1), 1e-9)
	assert.InDelta(t, 0.7, ProbOf(res, 2), 1e-9)
	assert.Zero(t, res.Unknown)

	assert.Panics(t, func() { Choose(1.5, Return(1), Return(2)) })
}

func TestChoose_SiblingsGetFullBudget(t *testing.T) {
	// The left branch needs two units, the right only one. Budgets are per
	// path, so a depth-1 search resolves the right branch while the left
	// stays unknown.
	comp := Choose(0.5, Choose(0.5, Return(1), Return(2)), Return(3))

	res, err := Run(1, comp)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ProbOf(res, 3), 1e-9)
	assert.InDelta(t, 0.5, res.Unknown, 1e-9)

	res, err = Run(2, comp)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ProbOf(res, 1), 1e-9)
	assert.InDelta(t, 0.25, ProbOf(res, 2), 1e-9)
	assert.InDelta(t, 0.5, ProbOf(res, 3), 1e-9)
	assert.Zero(t, res.Unknown)
}

func TestFail(t *testing.T) {
	assert.Empty(t, Fail[int]().Force().Cases)

	_, err := Run(10, Fail[int]())
	assert.ErrorIs(t, err, ErrAllPathsFailed)
}

func TestObserve(t *testing.T) {
	node := Observe(true).Force()
	require.Len(t, node.Cases, 1)
	assert.True(t, node.Cases[0].Resolved)

	assert.Empty(t, Observe(false).Force().Cases)
}

func TestDelay(t *testing.T) {
	comp := Delay(func() Computation[int] { return Return(5) })

	// Delay costs exactly one depth unit.
	res, err := Run(0, comp)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Unknown, 1e-9)

	res, err = Run(1, comp)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ProbOf(res, 5), 1e-9)
	assert.Zero(t, res.Unknown)
}

func TestDelay_DoesNotBuildUntilEntered(t *testing.T) {
	calls := 0
	comp := Delay(func() Computation[int] {
		calls++
		return Return(1)
	})
	assert.Equal(t, 0, calls)

	// Forcing the root only reveals the suspension; the builder runs when a
	// search enters it.
	comp.Force()
	assert.Equal(t, 0, calls)

	_, _, err := Explore(0, comp)
	require.NoError(t, err)
	assert.Equal(t, 0, calls)

	_, err = Run(1, comp)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
