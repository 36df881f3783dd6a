package viz

import (
	"encoding/json"
	"io"

	gfn "github.com/panyam/goutils/fn"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/core"
	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/prob"
)

// OutcomeJSON is one value of a serialized result.
type OutcomeJSON[V any] struct {
	Value       V       `json:"value"`
	Probability float64 `json:"probability"`
}

// ResultJSON is the serialized form of a search result.
type ResultJSON[V any] struct {
	Outcomes []OutcomeJSON[V] `json:"outcomes"`
	Unknown  float64          `json:"unknown,omitempty"`
}

// WriteJSON serializes a result to w as indented JSON, outcomes in the
// result's own order. The unknown field is omitted when zero.
func WriteJSON[V any](w io.Writer, res prob.Result[V]) error {
	dist := res.Dist
	if dist == nil {
		dist = &core.Outcomes[V]{}
	}

	out := ResultJSON[V]{
		Outcomes: gfn.Map(dist.Buckets, func(b core.Bucket[V]) OutcomeJSON[V] {
			return OutcomeJSON[V]{Value: b.Value, Probability: b.Weight}
		}),
		Unknown: res.Unknown,
	}
	if out.Outcomes == nil {
		// An empty result still serializes with an outcomes array.
		out.Outcomes = []OutcomeJSON[V]{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
