package prob

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geometric counts biased coin tosses until the first heads. The canonical
// unbounded model: every finite search leaves some mass unknown.
func geometric(p float64) Computation[int] {
	return Bind(Flip(p), func(heads bool) Computation[int] {
		if heads {
			return Return(1)
		}
		return Map(geometric(p), func(n int) int { return n + 1 })
	})
}

func TestExplore_NegativeDepth(t *testing.T) {
	_, _, err := Explore(-1, Return(1))
	assert.ErrorIs(t, err, ErrNegativeDepth)

	_, err = Run(-1, Return(1))
	assert.ErrorIs(t, err, ErrNegativeDepth)
}

func TestExplore_ResolvedRootIsFree(t *testing.T) {
	raw, unknown, err := Explore(0, Flip(0.3))
	require.NoError(t, err)
	assert.Equal(t, 2, raw.Len())
	assert.Zero(t, unknown)
}

func TestExplore_KeepsDuplicates(t *testing.T) {
	// Two distinct paths to the same value: Explore reports both, Run merges.
	comp := Bind(Flip(0.5), func(bool) Computation[int] { return Return(7) })

	raw, unknown, err := Explore(1, comp)
	require.NoError(t, err)
	assert.Equal(t, 2, raw.Len())
	assert.Zero(t, unknown)
	assert.InDelta(t, 1.0, raw.TotalWeight(), 1e-9)

	res, err := Run(1, comp)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Dist.Len())
	assert.InDelta(t, 1.0, ProbOf(res, 7), 1e-9)
}

func TestExplore_SkipsZeroWeightBranches(t *testing.T) {
	raw, unknown, err := Explore(0, Flip(1.0))
	require.NoError(t, err)
	assert.Equal(t, 1, raw.Len())
	assert.Zero(t, unknown)

	v, ok := raw.GetValue()
	require.True(t, ok)
	assert.True(t, v)
}

func TestExplore_DeterministicOrder(t *testing.T) {
	comp := Bind(Uniform(1, 3), func(x int) Computation[int] { return Return(x * x) })

	first, _, err := Explore(1, comp)
	require.NoError(t, err)
	second, _, err := Explore(1, comp)
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	for i := range first.Buckets {
		assert.Equal(t, first.Buckets[i].Value, second.Buckets[i].Value, "bucket %d", i)
		assert.InDelta(t, first.Buckets[i].Weight, second.Buckets[i].Weight, 1e-12, "bucket %d", i)
	}
	// Left-to-right over the branches of Uniform(1, 3).
	assert.Equal(t, []int{1, 4, 9}, []int{first.Buckets[0].Value, first.Buckets[1].Value, first.Buckets[2].Value})
}

func TestRun_TwoDiceSum(t *testing.T) {
	roll := Uniform(1, 6)
	sum := Bind(roll, func(a int) Computation[int] {
		return Bind(roll, func(b int) Computation[int] {
			return Return(a + b)
		})
	})

	// One depth unit per bind step: depth 1 is still all unknown, depth 2
	// resolves the full distribution.
	res, err := Run(1, sum)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Dist.Len())
	assert.InDelta(t, 1.0, res.Unknown, 1e-9)

	res, err = Run(2, sum)
	require.NoError(t, err)
	assert.Zero(t, res.Unknown)
	assert.Equal(t, 11, res.Dist.Len())
	// P(sum = s) = (6 - |s - 7|) / 36.
	for s := 2; s <= 12; s++ {
		ways := 6 - int(math.Abs(float64(s-7)))
		assert.InDelta(t, float64(ways)/36.0, ProbOf(res, s), 1e-9, "sum %d", s)
	}
}

func TestRun_IndependentSecondDie(t *testing.T) {
	// The first roll is ignored, so the 36 raw paths collapse onto the six
	// faces of the second die.
	comp := Bind(Uniform(1, 6), func(int) Computation[int] { return Uniform(1, 6) })

	raw, unknown, err := Explore(2, comp)
	require.NoError(t, err)
	assert.Equal(t, 36, raw.Len())
	assert.Zero(t, unknown)

	res, err := Run(2, comp)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Dist.Len())
	for face := 1; face <= 6; face++ {
		assert.InDelta(t, 1.0/6.0, ProbOf(res, face), 1e-9, "face %d", face)
	}
	assert.Zero(t, res.Unknown)
}

func TestRun_GeometricMasses(t *testing.T) {
	p := 0.25
	for _, depth := range []int{1, 2, 5, 8} {
		res, err := Run(depth, geometric(p))
		require.NoError(t, err)

		// k tosses needs k depth units, so exactly 1..depth are resolved.
		assert.Equal(t, depth, res.Dist.Len(), "depth %d", depth)
		for k := 1; k <= depth; k++ {
			want := p * math.Pow(1-p, float64(k-1))
			assert.InDelta(t, want, ProbOf(res, k), 1e-9, "depth %d count %d", depth, k)
		}
		assert.InDelta(t, math.Pow(1-p, float64(depth)), res.Unknown, 1e-9, "depth %d", depth)
	}
}

func TestRun_UnknownShrinksWithDepth(t *testing.T) {
	prev := 2.0
	for depth := 0; depth <= 10; depth++ {
		res, err := Run(depth, geometric(0.5))
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Unknown, prev, "depth %d", depth)
		prev = res.Unknown
	}
}

func TestRun_NeverTerminating(t *testing.T) {
	var never Computation[int]
	never = Delay(func() Computation[int] { return never })

	for _, depth := range []int{0, 1, 5, 50} {
		res, err := Run(depth, never)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Dist.Len(), "depth %d", depth)
		assert.InDelta(t, 1.0, res.Unknown, 1e-9, "depth %d", depth)
	}
}

func TestRun_FailedObservationsVanish(t *testing.T) {
	// Conditioning throws mass away; normalization rescales what survives.
	// This is not unknown mass: the search fully explored those paths.
	comp := Bind(Uniform(1, 6), func(roll int) Computation[int] {
		return Then(Observe(roll >= 5), Return(roll))
	})

	res, err := Run(2, comp)
	require.NoError(t, err)
	assertDist(t, res, map[int]float64{5: 0.5, 6: 0.5}, 0)
}

func TestRun_AllPathsFailed(t *testing.T) {
	// Failure is failure at any depth; more budget never turns it into
	// unknown mass.
	for _, depth := range []int{0, 1, 5, 100} {
		_, err := Run(depth, Observe(false))
		assert.ErrorIs(t, err, ErrAllPathsFailed, "depth %d", depth)
	}

	comp := Bind(Flip(0.5), func(bool) Computation[Unit] { return Observe(false) })
	_, err := Run(3, comp)
	assert.ErrorIs(t, err, ErrAllPathsFailed)
}

func TestRun_SumsToOne(t *testing.T) {
	for _, depth := range []int{0, 1, 3, 7} {
		res, err := Run(depth, geometric(0.3))
		require.NoError(t, err)
		assert.InDelta(t, 1.0, res.Dist.TotalWeight()+res.Unknown, 1e-9, "depth %d", depth)
	}
}

func TestResult_NormalizeIsIdempotent(t *testing.T) {
	res, err := Run(3, geometric(0.5))
	require.NoError(t, err)

	again, err := res.Normalize()
	require.NoError(t, err)
	assert.Equal(t, res.Dist.Len(), again.Dist.Len())
	for _, b := range res.Dist.Buckets {
		assert.InDelta(t, b.Weight, ProbOf(again, b.Value), 1e-12, "value %v", b.Value)
	}
	assert.InDelta(t, res.Unknown, again.Unknown, 1e-12)
}

func TestResult_NormalizeEmpty(t *testing.T) {
	_, err := Result[int]{}.Normalize()
	assert.ErrorIs(t, err, ErrAllPathsFailed)

	// Unknown-only mass normalizes fine: nothing is known, but the search
	// did not fail.
	res, err := Result[int]{Unknown: 0.25}.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Unknown, 1e-9)
	assert.Equal(t, 0, res.Dist.Len())
}

func TestProbOf_MissingValue(t *testing.T) {
	res, err := Run(0, Uniform(1, 3))
	require.NoError(t, err)
	assert.Zero(t, ProbOf(res, 99))
}
