package dsp

import "math"

// delayBufferSeconds is the fixed delay-line capacity.
const delayBufferSeconds = 1

// ModulatedDelay is a mono delay line whose read head is swept by a
// low-frequency oscillator. The feedback path is low-pass smoothed and
// the input is DC-blocked so the line stays stable at high feedback.
// Every setter clamps its argument to a safe range; out-of-range values
// are never an error.
type ModulatedDelay struct {
	sampleRate float32

	buf   []float32
	write int

	delaySamples float32
	feedback     float32
	mix          float32

	lfo      *Oscillator
	lfoDepth float32

	inputHP    float32 // DC-block state
	feedbackLP float32 // feedback smoothing state
}

func NewModulatedDelay(sampleRate float32) *ModulatedDelay {
	d := &ModulatedDelay{
		sampleRate: sampleRate,
		buf:        make([]float32, int(sampleRate)*delayBufferSeconds),
		lfo:        NewOscillator(sampleRate),
	}
	d.SetTime(0.1)
	d.SetFeedback(0.3)
	d.SetMix(0.5)
	d.SetLFORate(0.5)
	d.SetLFODepth(0.2)
	return d
}

// SetTime sets the base delay time, clamped to 10..900 ms.
func (d *ModulatedDelay) SetTime(seconds float32) {
	d.delaySamples = clamp(seconds, 0.01, 0.9) * d.sampleRate
}

// SetFeedback clamps feedback to 0..0.85 to prevent runaway buildup.
func (d *ModulatedDelay) SetFeedback(fb float32) {
	d.feedback = clamp(fb, 0, 0.85)
}

// SetMix sets the wet/dry balance in [0, 1].
func (d *ModulatedDelay) SetMix(mix float32) {
	d.mix = clamp(mix, 0, 1)
}

// SetLFORate sets the modulation rate, clamped to 0.01..10 Hz.
func (d *ModulatedDelay) SetLFORate(hz float32) {
	d.lfo.SetFreq(clamp(hz, 0.01, 10))
}

// SetLFODepth sets the modulation depth, clamped to 0..0.8.
func (d *ModulatedDelay) SetLFODepth(depth float32) {
	d.lfoDepth = clamp(depth, 0, 0.8)
}

func (d *ModulatedDelay) Feedback() float32 { return d.feedback }
func (d *ModulatedDelay) Mix() float32      { return d.mix }
func (d *ModulatedDelay) Time() float32     { return d.delaySamples / d.sampleRate }

// Process runs one sample through the delay and returns the wet/dry mix.
func (d *ModulatedDelay) Process(in float32) float32 {
	// DC-block the input.
	d.inputHP += 0.001 * (in - d.inputHP)
	dry := in - d.inputHP

	// Sweep the read head around the base delay time.
	mod := d.delaySamples * (1 + d.lfoDepth*d.lfo.Process())
	mod = clamp(mod, 1, float32(len(d.buf)-1))

	readPos := float32(d.write) - mod
	if readPos < 0 {
		readPos += float32(len(d.buf))
	}

	i0 := int(readPos)
	i1 := (i0 + 1) % len(d.buf)
	frac := readPos - float32(math.Floor(float64(readPos)))
	wet := d.buf[i0]*(1-frac) + d.buf[i1]*frac

	// Smooth the feedback to keep high frequencies from piling up.
	d.feedbackLP += 0.3 * (wet*d.feedback - d.feedbackLP)

	d.buf[d.write] = dry + d.feedbackLP
	d.write = (d.write + 1) % len(d.buf)

	return dry*(1-d.mix) + wet*d.mix
}
