package rng

import "testing"

func TestDeriveIsDeterministic(t *testing.T) {
	a := NewFromSeed(42).Derive("zone-gen")
	b := NewFromSeed(42).Derive("zone-gen")

	for i := 0; i < 10; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("derived streams diverged at draw %d", i)
		}
	}
}

func TestDeriveStagesAreIndependent(t *testing.T) {
	root := NewFromSeed(42)
	a := root.Derive("zone-gen")
	b := root.Derive("spawn-variant")
	if a.Seed() == b.Seed() {
		t.Fatal("distinct stage names produced identical derived seeds")
	}
}

func TestIntnPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Intn(0)")
		}
	}()
	NewFromSeed(1).Intn(0)
}

func TestWeightedChoiceAllZero(t *testing.T) {
	r := NewFromSeed(1)
	if idx := r.WeightedChoice([]float64{0, 0, 0}); idx != -1 {
		t.Fatalf("expected -1 for all-zero weights, got %d", idx)
	}
}

func TestBinaryApplicatorExtremes(t *testing.T) {
	r := NewFromSeed(7)
	always := NewBinaryApplicator("T", "F", 1.0)
	never := NewBinaryApplicator("T", "F", 0.0)
	for i := 0; i < 20; i++ {
		if always.Draw(r) != "T" {
			t.Fatal("p=1.0 applicator returned False")
		}
		if never.Draw(r) != "F" {
			t.Fatal("p=0.0 applicator returned True")
		}
	}
}

func TestCategoricalApplicatorDraw(t *testing.T) {
	r := NewFromSeed(3)
	cat := CategoricalApplicator[string]{Values: []string{"a", "b"}, Weights: []float64{1, 0}}
	for i := 0; i < 10; i++ {
		if got := cat.Draw(r); got != "a" {
			t.Fatalf("expected always 'a', got %q", got)
		}
	}
}
