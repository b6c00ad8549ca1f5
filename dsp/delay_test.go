package dsp

import (
	"math"
	"testing"
)

func TestDelaySettersClamp(t *testing.T) {
	d := NewModulatedDelay(testRate)

	d.SetTime(5)
	if got := d.Time(); math.Abs(float64(got)-0.9) > 1e-4 {
		t.Fatalf("time clamp high: %v, want 0.9", got)
	}
	d.SetTime(0.0001)
	if got := d.Time(); math.Abs(float64(got)-0.01) > 1e-4 {
		t.Fatalf("time clamp low: %v, want 0.01", got)
	}

	d.SetFeedback(2)
	if got := d.Feedback(); got != 0.85 {
		t.Fatalf("feedback clamp: %v, want 0.85", got)
	}
	d.SetFeedback(-1)
	if got := d.Feedback(); got != 0 {
		t.Fatalf("feedback clamp low: %v, want 0", got)
	}

	d.SetMix(3)
	if got := d.Mix(); got != 1 {
		t.Fatalf("mix clamp: %v, want 1", got)
	}
}

func TestDelayEchoArrivesOnTime(t *testing.T) {
	d := NewModulatedDelay(testRate)
	d.SetTime(0.01) // 480 samples
	d.SetFeedback(0)
	d.SetMix(1)
	d.SetLFODepth(0)

	out := d.Process(1)
	if math.Abs(float64(out)) > 0.001 {
		t.Fatalf("wet-only output %v on the impulse sample", out)
	}

	for i := 1; i < 480; i++ {
		if out := d.Process(0); math.Abs(float64(out)) > 0.01 {
			t.Fatalf("early echo %v at sample %d", out, i)
		}
	}
	if echo := d.Process(0); echo < 0.9 {
		t.Fatalf("echo at 480 samples = %v, want near 1", echo)
	}
}

func TestDelayDryOnlyAtZeroMix(t *testing.T) {
	d := NewModulatedDelay(testRate)
	d.SetMix(0)
	d.SetTime(0.01)
	d.SetFeedback(0.5)

	// With mix 0 the output is the DC-blocked dry signal only.
	if out := d.Process(1); math.Abs(float64(out)-1) > 0.01 {
		t.Fatalf("dry output = %v, want ~1", out)
	}
	for i := 0; i < 2000; i++ {
		if out := d.Process(0); math.Abs(float64(out)) > 0.01 {
			t.Fatalf("dry-only output %v at sample %d after impulse", out, i)
		}
	}
}

func TestDelayStableAtMaxFeedback(t *testing.T) {
	d := NewModulatedDelay(testRate)
	d.SetTime(0.05)
	d.SetFeedback(0.85)
	d.SetMix(1)
	d.SetLFODepth(0.8)
	d.SetLFORate(5)

	n := NewWhiteNoise()
	for i := 0; i < 48000*2; i++ {
		out := d.Process(n.Process() * 0.5)
		if m := math.Abs(float64(out)); m > 20 || math.IsNaN(m) {
			t.Fatalf("delay blew up at sample %d: %v", i, out)
		}
	}
}
