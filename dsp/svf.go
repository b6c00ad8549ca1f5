package dsp

import "math"

// SVF is a single-channel state-variable filter with a zero-delay
// feedback topology. One state update per sample yields the lowpass,
// bandpass and highpass outputs simultaneously; callers call Process
// once and then read whichever output their voice needs.
type SVF struct {
	sampleRate float32

	g float32 // frequency coefficient
	k float32 // damping (1/Q)

	ic1eq float32
	ic2eq float32

	low  float32
	band float32
	high float32
}

func NewSVF(sampleRate float32) *SVF {
	s := &SVF{sampleRate: sampleRate}
	s.SetFreq(1000)
	s.SetRes(0.5)
	return s
}

// SetFreq sets the cutoff/center frequency in Hz. The value is clamped
// to a usable range and pre-warped for the bilinear transform.
func (s *SVF) SetFreq(hz float32) {
	hz = clamp(hz, 1, s.sampleRate*0.49)
	s.g = float32(math.Tan(math.Pi * float64(hz) / float64(s.sampleRate)))
}

// SetRes sets the resonance in [0, 1). Higher values narrow the band.
func (s *SVF) SetRes(res float32) {
	res = clamp(res, 0, 0.98)
	s.k = 2 * (1 - res)
}

// Reset clears the integrator state.
func (s *SVF) Reset() {
	s.ic1eq = 0
	s.ic2eq = 0
	s.low = 0
	s.band = 0
	s.high = 0
}

// Process runs one filter update. Outputs are read afterwards via
// Low, Band and High.
func (s *SVF) Process(in float32) {
	g, k := s.g, s.k
	a1 := 1 / (1 + g*(g+k))
	a2 := g * a1
	a3 := g * a2

	v3 := in - s.ic2eq
	v1 := a1*s.ic1eq + a2*v3
	v2 := s.ic2eq + a2*s.ic1eq + a3*v3

	s.ic1eq = 2*v1 - s.ic1eq
	s.ic2eq = 2*v2 - s.ic2eq

	s.low = v2
	s.band = v1
	s.high = in - k*v1 - v2
}

func (s *SVF) Low() float32  { return s.low }
func (s *SVF) Band() float32 { return s.band }
func (s *SVF) High() float32 { return s.high }
