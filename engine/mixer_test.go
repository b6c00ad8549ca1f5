package engine

import "testing"

func TestMixSumsAndScales(t *testing.T) {
	l, r := Mix([]float32{1, 2, 3}, 0.5, 0, 0)
	if l != 3 || r != 3 {
		t.Fatalf("mix = (%v, %v), want (3, 3)", l, r)
	}
}

func TestMixAddsPassthroughPerChannel(t *testing.T) {
	l, r := Mix([]float32{1, 1}, 1, 0.25, -0.25)
	if l != 2.25 || r != 1.75 {
		t.Fatalf("mix = (%v, %v), want (2.25, 1.75)", l, r)
	}
}

func TestMixClampsVolume(t *testing.T) {
	l, _ := Mix([]float32{1}, 4, 0, 0)
	if l != 1 {
		t.Fatalf("volume not clamped: %v", l)
	}
	l, _ = Mix([]float32{1}, -1, 0, 0)
	if l != 0 {
		t.Fatalf("negative volume not clamped: %v", l)
	}
}
