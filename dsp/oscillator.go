package dsp

import "math"

// Oscillator is a phase-accumulator sine oscillator.
type Oscillator struct {
	sampleRate float32
	freq       float32
	phase      float32 // 0..1
}

func NewOscillator(sampleRate float32) *Oscillator {
	return &Oscillator{sampleRate: sampleRate}
}

// SetFreq sets the oscillator frequency in Hz, clamped below Nyquist.
// The running phase is kept, so frequency changes are click-free.
func (o *Oscillator) SetFreq(hz float32) {
	o.freq = clamp(hz, 0, o.sampleRate*0.5)
}

func (o *Oscillator) Freq() float32 { return o.freq }

// Process advances the phase by one sample and returns the new sample.
func (o *Oscillator) Process() float32 {
	o.phase += o.freq / o.sampleRate
	if o.phase >= 1 {
		o.phase -= 1
	}
	return float32(math.Sin(2 * math.Pi * float64(o.phase)))
}
