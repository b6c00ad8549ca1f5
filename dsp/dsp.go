// Package dsp holds the per-sample unit generators the drum voices are
// built from. Every generator advances exactly one sample per Process
// call and allocates nothing after construction, so all of them are safe
// to drive from a real-time audio callback.
package dsp

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
