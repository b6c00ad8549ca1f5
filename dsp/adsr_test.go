package dsp

import (
	"math"
	"testing"
)

const testRate = 48000

func TestEnvelopeIdleByDefault(t *testing.T) {
	e := NewADSR(testRate)
	if e.Active() {
		t.Fatal("fresh envelope reports active")
	}
	for i := 0; i < 10; i++ {
		if v := e.Process(); v != 0 {
			t.Fatalf("idle envelope produced %v", v)
		}
	}
}

func TestEnvelopeRisesThenDecaysToIdle(t *testing.T) {
	e := NewADSR(testRate)
	e.SetAttack(0.001) // 48 samples
	e.SetDecay(0.01)   // 480 samples
	e.Retrigger()

	var peak float32
	for i := 0; i < 50; i++ {
		if v := e.Process(); v > peak {
			peak = v
		}
	}
	if peak != 1 {
		t.Fatalf("peak after attack = %v, want 1", peak)
	}

	for i := 0; i < 1000; i++ {
		e.Process()
	}
	if e.Active() {
		t.Fatal("envelope still active after full decay")
	}
	if v := e.Process(); v != 0 {
		t.Fatalf("decayed envelope produced %v", v)
	}
}

func TestRetriggerFromDecayMatchesFreshAttack(t *testing.T) {
	fresh := NewADSR(testRate)
	fresh.SetAttack(0.001)
	fresh.SetDecay(0.1)
	fresh.Retrigger()
	want := fresh.Process()

	e := NewADSR(testRate)
	e.SetAttack(0.001)
	e.SetDecay(0.1)
	e.Retrigger()
	for i := 0; i < 500; i++ { // partway into the decay
		e.Process()
	}
	e.Retrigger()
	if got := e.Process(); got != want {
		t.Fatalf("retriggered first sample = %v, fresh = %v", got, want)
	}
}

func TestSetDecayKeepsCurrentLevel(t *testing.T) {
	e := NewADSR(testRate)
	e.SetAttack(0.001)
	e.SetDecay(0.1)
	e.Retrigger()

	var level float32
	for i := 0; i < 1000; i++ {
		level = e.Process()
	}
	if level <= 0 || level >= 1 {
		t.Fatalf("expected mid-decay level, got %v", level)
	}

	e.SetDecay(0.5)
	next := e.Process()
	step := float64(level - next)
	if next >= level {
		t.Fatalf("envelope rose after SetDecay: %v -> %v", level, next)
	}
	if wantStep := 1.0 / (0.5 * testRate); math.Abs(step-wantStep) > 1e-6 {
		t.Fatalf("decay step = %v, want %v", step, wantStep)
	}
}

func TestSustainHoldsLevel(t *testing.T) {
	e := NewADSR(testRate)
	e.SetAttack(0.001)
	e.SetDecay(0.001)
	e.SetSustain(0.25)
	e.Retrigger()

	for i := 0; i < 200; i++ {
		e.Process()
	}
	if v := e.Process(); v != 0.25 {
		t.Fatalf("sustain level = %v, want 0.25", v)
	}
	if !e.Active() {
		t.Fatal("sustaining envelope reports idle")
	}
}
