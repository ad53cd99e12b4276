package cellstate

import "testing"

func TestOpenClearsSolid(t *testing.T) {
	c := Cell{}.Set(Solid)
	if !c.Solid() {
		t.Fatal("expected solid after Set(Solid)")
	}
	c = c.Set(Open)
	if c.Solid() {
		t.Fatal("expected Set(Open) to clear Solid")
	}
}

func TestClosedSentinel(t *testing.T) {
	if !ClosedSentinel.Solid() || !ClosedSentinel.Opaque() {
		t.Fatal("closed sentinel must be solid and opaque")
	}
	if ClosedSentinel.Seen() || ClosedSentinel.Explored() {
		t.Fatal("closed sentinel must not be seen or explored")
	}
}

func TestRGBA8RoundTrip(t *testing.T) {
	c := RGBA8{R: 10, G: 20, B: 30, A: 40}
	if got := UnpackRGBA8(c.Pack()); got != c {
		t.Fatalf("round-trip = %+v, want %+v", got, c)
	}
}

func TestToggleIsIdempotentPair(t *testing.T) {
	c := Cell{}
	c = c.Toggle(Damp)
	if !c.Has(Damp) {
		t.Fatal("expected Damp set after first toggle")
	}
	c = c.Toggle(Damp)
	if c.Has(Damp) {
		t.Fatal("expected Damp cleared after second toggle")
	}
}
