package timer

import (
	"math"
	"testing"
	"time"
)

func TestTimerReadyAndRecord(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	if !tm.Ready(0) {
		t.Fatal("a fresh timer should be ready at t=0")
	}
	tm.Record(0)
	if tm.Count() != 1 {
		t.Fatalf("count = %d, want 1", tm.Count())
	}
	if tm.Ready(50 * time.Millisecond) {
		t.Fatal("timer should not be ready before its interval elapses")
	}
	if !tm.Ready(100 * time.Millisecond) {
		t.Fatal("timer should be ready exactly at its interval")
	}
}

func TestWaveSineBounds(t *testing.T) {
	w := Wave{Form: Sine, Frequency: 1, Amplitude: 2, Phase: 1}
	for i := 0; i < 100; i++ {
		v := w.Value(float64(i) * 0.01)
		if v < -1.0001 || v > 3.0001 {
			t.Fatalf("sine value %f outside [-1,3]", v)
		}
	}
}

func TestWaveSquareIsBinary(t *testing.T) {
	w := Wave{Form: Square, Frequency: 1, Amplitude: 1}
	for i := 0; i < 20; i++ {
		v := w.unit(float64(i) * 0.05)
		if v != 1 && v != -1 {
			t.Fatalf("square wave produced non-binary value %f", v)
		}
	}
}

func TestWaveCycloidStaysInUnitRange(t *testing.T) {
	w := Wave{Form: Cycloid, Frequency: 0.5}
	for i := 0; i < 50; i++ {
		v := w.unit(float64(i) * 0.1)
		if v < -1.0001 || v > 1.0001 {
			t.Fatalf("cycloid unit value %f outside [-1,1]", v)
		}
	}
}

func TestWaveTriangleAtQuarterPeriod(t *testing.T) {
	w := Wave{Form: Triangle, Frequency: 1}
	v := w.unit(0.25)
	if math.Abs(v-1) > 1e-9 {
		t.Fatalf("triangle at quarter period = %f, want 1", v)
	}
}
