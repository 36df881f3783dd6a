package commands

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/core"
	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/models"
	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/prob"
	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/viz"
	gfn "github.com/panyam/goutils/fn"
	"github.com/spf13/cobra"
)

// Model parameter flags, shared by the run and sample commands.
var (
	dieSides  int
	coinBias  float64
	walkSteps int
	numDoors  int
)

// addModelFlags registers the model parameter flags on a command.
// The same vars back both the run and sample flag sets; only one
// command executes per invocation.
func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&dieSides, "sides", 6, "Number of die faces (die-roll, two-dice)")
	cmd.Flags().Float64Var(&coinBias, "bias", 0.5, "Probability of heads / of a step to the right (first-heads, random-walk)")
	cmd.Flags().IntVar(&walkSteps, "steps", 8, "Number of steps to take (random-walk)")
	cmd.Flags().IntVar(&numDoors, "doors", 3, "Number of doors in the game (monty-hall-*)")
}

// builtin is a named model the CLI can evaluate. The closures erase the
// model's value type so die rolls (int) and game outcomes (bool) can sit
// in the same table.
type builtin struct {
	Name        string
	Description string

	// Evaluate runs the model at the given depth and renders the resulting
	// distribution to stdout, as a table or as JSON.
	Evaluate func(depth int, asJSON bool) error

	// Sample runs the model at the given depth, then draws from the
	// resolved distribution.
	Sample func(depth, draws int, seed int64) error
}

func makeBuiltin[V comparable](name, desc string, build func() prob.Computation[V]) builtin {
	return builtin{
		Name:        name,
		Description: desc,
		Evaluate: func(depth int, asJSON bool) error {
			return render(depth, asJSON, build())
		},
		Sample: func(depth, draws int, seed int64) error {
			return sampleDraws(depth, draws, seed, build())
		},
	}
}

var builtins = []builtin{
	makeBuiltin("die-roll", "Single roll of a fair die (--sides)", func() prob.Computation[int] {
		d := &models.Die{Sides: dieSides}
		d.Init()
		return d.Roll()
	}),
	makeBuiltin("two-dice", "Sum of two fair dice (--sides)", func() prob.Computation[int] {
		d := &models.Die{Sides: dieSides}
		d.Init()
		return d.Sum(2)
	}),
	makeBuiltin("first-heads", "Number of tosses until the first heads (--bias)", func() prob.Computation[int] {
		c := &models.Coin{Bias: coinBias}
		c.Init()
		return c.FirstHeads()
	}),
	makeBuiltin("random-walk", "Position after a walk on the integers (--steps, --bias)", func() prob.Computation[int] {
		w := &models.RandomWalk{Right: coinBias}
		w.Init()
		return w.Position(walkSteps)
	}),
	makeBuiltin("monty-hall-stay", "Winning the Monty Hall game without switching (--doors)", func() prob.Computation[bool] {
		m := &models.MontyHall{Doors: numDoors}
		m.Init()
		return m.Play(false)
	}),
	makeBuiltin("monty-hall-switch", "Winning the Monty Hall game by switching (--doors)", func() prob.Computation[bool] {
		m := &models.MontyHall{Doors: numDoors}
		m.Init()
		return m.Play(true)
	}),
	makeBuiltin("gamblers-ruin", "Reaching the target bankroll before going broke", func() prob.Computation[bool] {
		return models.NewGamblersRuin().ReachesTarget()
	}),
}

func findBuiltin(name string) (builtin, bool) {
	for _, b := range builtins {
		if b.Name == name {
			return b, true
		}
	}
	return builtin{}, false
}

func builtinNames() []string {
	return gfn.Map(builtins, func(b builtin) string { return b.Name })
}

// render evaluates a computation and writes its distribution to stdout.
// Integer-valued results get a summary statistics line after the table.
func render[V comparable](depth int, asJSON bool, c prob.Computation[V]) error {
	result, err := prob.Run(depth, c)
	if err != nil {
		return err
	}
	if asJSON {
		return viz.WriteJSON(os.Stdout, result)
	}
	config := viz.DefaultPrinterConfig()
	config.NoColor = noColor
	printer := viz.NewPrinter[V](nil, config)
	if err := printer.Write(os.Stdout, result); err != nil {
		return err
	}
	if dist, ok := any(result.Dist).(*core.Outcomes[int]); ok {
		writeStats(os.Stdout, dist)
	}
	return nil
}

func writeStats(w io.Writer, dist *core.Outcomes[int]) {
	if dist == nil || dist.Len() == 0 {
		return
	}
	p50, _ := core.Percentile(dist, 0.5)
	p90, _ := core.Percentile(dist, 0.9)
	fmt.Fprintf(w, "\nmean %.4f  stddev %.4f  p50 %d  p90 %d\n",
		core.Mean(dist), core.StdDev(dist), p50, p90)
}

// sampleDraws evaluates a computation, then draws from the resolved part
// of its distribution. Unknown mass cannot be sampled and is reported
// separately.
func sampleDraws[V comparable](depth, draws int, seed int64, c prob.Computation[V]) error {
	result, err := prob.Run(depth, c)
	if err != nil {
		return err
	}
	if result.Dist.Len() == 0 {
		return fmt.Errorf("nothing to sample: no outcome resolves within depth %d", depth)
	}

	rng := rand.New(rand.NewSource(seed))
	counts := map[V]int{}
	var order []V
	for i := 0; i < draws; i++ {
		v, ok := result.Dist.Sample(rng)
		if !ok {
			return fmt.Errorf("sampling failed: distribution has no mass")
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	for _, v := range order {
		fmt.Printf("%-10v %7d  %.4f\n", v, counts[v], float64(counts[v])/float64(draws))
	}
	if result.Unknown > 0 {
		fmt.Printf("\n%.4f of the mass is still unknown at depth %d and was excluded from sampling\n",
			result.Unknown, depth)
	}
	return nil
}
