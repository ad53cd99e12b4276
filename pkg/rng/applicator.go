package rng

// BinaryApplicator draws one of two fixed values with a Bernoulli trial.
// It is a pure function of (generator, probability) — no hidden state
// survives between draws.
type BinaryApplicator[T any] struct {
	True, False T
	P           float64
}

// NewBinaryApplicator builds an applicator that returns trueValue with
// probability p and falseValue otherwise.
func NewBinaryApplicator[T any](trueValue, falseValue T, p float64) BinaryApplicator[T] {
	return BinaryApplicator[T]{True: trueValue, False: falseValue, P: p}
}

// Draw samples the applicator using r.
func (a BinaryApplicator[T]) Draw(r *RNG) T {
	if r.Bernoulli(a.P) {
		return a.True
	}
	return a.False
}

// TernaryOutcome is the result of a TernaryApplicator draw.
type TernaryOutcome int

const (
	Less TernaryOutcome = iota
	Equal
	Greater
)

// TernaryApplicator draws one of {Less, Equal, Greater} from three
// supplied weights.
type TernaryApplicator struct {
	WeightLess, WeightEqual, WeightGreater float64
}

// Draw samples the applicator using r's weighted choice.
func (a TernaryApplicator) Draw(r *RNG) TernaryOutcome {
	idx := r.WeightedChoice([]float64{a.WeightLess, a.WeightEqual, a.WeightGreater})
	if idx < 0 {
		return Equal
	}
	return TernaryOutcome(idx)
}

// NumericApplicator draws a value uniformly from a numeric range.
type NumericApplicator struct {
	Min, Max float64
}

// Draw samples a uniform float64 in [Min, Max).
func (a NumericApplicator) Draw(r *RNG) float64 {
	if a.Min >= a.Max {
		return a.Min
	}
	return a.Min + r.Float64()*(a.Max-a.Min)
}

// CategoricalApplicator draws one of a fixed set of labelled values by
// weight, generalizing BinaryApplicator/TernaryApplicator to N outcomes.
// Spawn-variant and rock/mineral tables (SPEC_FULL §4.M) are built on this.
type CategoricalApplicator[T any] struct {
	Values  []T
	Weights []float64
}

// Draw samples one of a.Values using a.Weights. Panics if the two slices
// differ in length or are empty — a misconfigured table is a programmer
// error, not a runtime one to recover from.
func (a CategoricalApplicator[T]) Draw(r *RNG) T {
	if len(a.Values) == 0 || len(a.Values) != len(a.Weights) {
		panic("rng: CategoricalApplicator requires matching, non-empty Values/Weights")
	}
	idx := r.WeightedChoice(a.Weights)
	if idx < 0 {
		idx = 0
	}
	return a.Values[idx]
}
