// Package viz renders search results for human and machine consumption. It
// only formats: results arrive already deduplicated and normalized and are
// printed as they are.
package viz

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	gfn "github.com/panyam/goutils/fn"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/core"
	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/prob"
)

// PrinterConfig holds styling and layout configuration for the table
// renderer.
type PrinterConfig struct {
	// Precision is the number of decimal places shown for probabilities.
	Precision int

	// BarWidth is the width in characters of the probability bar next to
	// each row. 0 disables the bars.
	BarWidth int

	// NoColor disables ANSI colors, for plain terminals and tests.
	NoColor bool

	// UnknownLabel is the label of the unexplored-mass row. Defaults to
	// "unknown".
	UnknownLabel string
}

// DefaultPrinterConfig returns sensible defaults.
func DefaultPrinterConfig() PrinterConfig {
	return PrinterConfig{Precision: 4, BarWidth: 24, UnknownLabel: "unknown"}
}

// Printer renders a Result as an aligned table: one row per value in the
// result's own order, plus one trailing row for the unknown mass when there
// is any.
type Printer[V any] struct {
	config PrinterConfig
	format func(V) string

	probColor    *color.Color
	barColor     *color.Color
	unknownColor *color.Color
}

// NewPrinter creates a printer using format to render values. A nil format
// falls back to fmt's default formatting.
func NewPrinter[V any](format func(V) string, config PrinterConfig) *Printer[V] {
	if format == nil {
		format = func(v V) string { return fmt.Sprintf("%v", v) }
	}
	if config.UnknownLabel == "" {
		config.UnknownLabel = "unknown"
	}
	if config.Precision <= 0 {
		config.Precision = 4
	}

	p := &Printer[V]{
		config:       config,
		format:       format,
		probColor:    color.New(color.FgCyan),
		barColor:     color.New(color.FgGreen),
		unknownColor: color.New(color.FgYellow),
	}
	if config.NoColor {
		p.probColor.DisableColor()
		p.barColor.DisableColor()
		p.unknownColor.DisableColor()
	}
	return p
}

// Render returns the table as a string. Rows keep the result's own order.
func (p *Printer[V]) Render(res prob.Result[V]) string {
	dist := res.Dist
	if dist == nil {
		dist = &core.Outcomes[V]{}
	}

	total := dist.TotalWeight() + res.Unknown
	if math.Abs(total-1) > 0.01 {
		prob.Warn("rendering a result whose mass sums to %.4f, not 1", total)
	}

	labels := gfn.Map(dist.Buckets, func(b core.Bucket[V]) string { return p.format(b.Value) })
	width := len(p.config.UnknownLabel)
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	for i, bucket := range dist.Buckets {
		p.writeRow(&b, width, labels[i], bucket.Weight, p.probColor)
	}
	if res.Unknown > 0 {
		p.writeRow(&b, width, p.config.UnknownLabel, res.Unknown, p.unknownColor)
	}
	return b.String()
}

// Write renders the table to w.
func (p *Printer[V]) Write(w io.Writer, res prob.Result[V]) error {
	_, err := io.WriteString(w, p.Render(res))
	return err
}

func (p *Printer[V]) writeRow(b *strings.Builder, width int, label string, mass core.Prob, col *color.Color) {
	fmt.Fprintf(b, "%-*s  %s", width, label, col.Sprintf("%.*f", p.config.Precision, mass))
	if p.config.BarWidth > 0 {
		fmt.Fprintf(b, "  %s", p.barColor.Sprint(bar(mass, p.config.BarWidth)))
	}
	b.WriteByte('\n')
}

func bar(mass core.Prob, width int) string {
	filled := int(math.Round(mass * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled)
}
