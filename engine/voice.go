package engine

import "go-beatbox/dsp"

// Role identifies one of the fixed drum voices.
type Role int

const (
	RoleKick Role = iota
	RoleSnare
	RoleHiHat
	RoleClick
	NumRoles
)

func (r Role) String() string {
	switch r {
	case RoleKick:
		return "kick"
	case RoleSnare:
		return "snare"
	case RoleHiHat:
		return "hihat"
	case RoleClick:
		return "click"
	}
	return "?"
}

// VoiceParams is one voice's timbre for one kit: oscillator frequency or
// filter cutoff plus envelope decay. FilterFreqHz is 0 for unfiltered
// voices.
type VoiceParams struct {
	FrequencyHz  float32
	DecaySeconds float32
	FilterFreqHz float32
}

type filterOutput int

const (
	filterNone filterOutput = iota
	filterBand
	filterHigh
)

// Voice binds unit generators into one drum sound: a sine oscillator or
// a noise source, an optional state-variable filter, and a percussive
// envelope. Render must be called every sample whether or not the voice
// was triggered; the envelope decays to silence on its own.
type Voice struct {
	osc    *dsp.Oscillator
	noise  *dsp.WhiteNoise
	filter *dsp.SVF
	output filterOutput
	env    *dsp.ADSR

	gain   float32
	params VoiceParams
}

// NewKickVoice builds a sine-plus-envelope kick with 1 ms attack and a
// 2x make-up gain.
func NewKickVoice(sampleRate float32) *Voice {
	v := &Voice{
		osc:  dsp.NewOscillator(sampleRate),
		env:  dsp.NewADSR(sampleRate),
		gain: 2,
	}
	v.env.SetAttack(0.001)
	v.env.SetSustain(0)
	return v
}

// NewSnareVoice builds a noise-through-bandpass snare, res 0.7, 1 ms attack.
func NewSnareVoice(sampleRate float32) *Voice {
	v := &Voice{
		noise:  dsp.NewWhiteNoise(),
		filter: dsp.NewSVF(sampleRate),
		output: filterBand,
		env:    dsp.NewADSR(sampleRate),
		gain:   1,
	}
	v.filter.SetRes(0.7)
	v.env.SetAttack(0.001)
	v.env.SetSustain(0)
	return v
}

// NewHiHatVoice builds a noise-through-highpass hi-hat, res 0.7, 1 ms attack.
func NewHiHatVoice(sampleRate float32) *Voice {
	v := &Voice{
		noise:  dsp.NewWhiteNoise(),
		filter: dsp.NewSVF(sampleRate),
		output: filterHigh,
		env:    dsp.NewADSR(sampleRate),
		gain:   1,
	}
	v.filter.SetRes(0.7)
	v.env.SetAttack(0.001)
	v.env.SetSustain(0)
	return v
}

// NewClickVoice builds the metronome click: a 1 kHz sine with a 0.5 ms
// attack and 10 ms decay. Its parameters are fixed; kits do not retune it.
func NewClickVoice(sampleRate float32) *Voice {
	v := &Voice{
		osc:  dsp.NewOscillator(sampleRate),
		env:  dsp.NewADSR(sampleRate),
		gain: 1,
	}
	v.params = VoiceParams{FrequencyHz: 1000, DecaySeconds: 0.01}
	v.osc.SetFreq(1000)
	v.env.SetAttack(0.0005)
	v.env.SetDecay(0.01)
	v.env.SetSustain(0)
	return v
}

// ApplyParams retunes the voice without resetting envelope or filter
// phase: a note already decaying keeps its current level and continues
// with the new decay slope.
func (v *Voice) ApplyParams(p VoiceParams) {
	if v.osc != nil {
		v.osc.SetFreq(p.FrequencyHz)
	}
	if v.filter != nil && p.FilterFreqHz > 0 {
		v.filter.SetFreq(p.FilterFreqHz)
	}
	v.env.SetDecay(p.DecaySeconds)
	v.params = p
}

// Params returns the voice's current parameter snapshot.
func (v *Voice) Params() VoiceParams { return v.params }

// Retrigger restarts the envelope from its attack phase. Oscillator and
// filter state keep running.
func (v *Voice) Retrigger() {
	v.env.Retrigger()
}

// Active reports whether the envelope is still sounding.
func (v *Voice) Active() bool { return v.env.Active() }

// Render advances the voice exactly one sample and returns its output.
// Callers must not skip calls; generator phase advances every call.
func (v *Voice) Render() float32 {
	var s float32
	if v.osc != nil {
		s = v.osc.Process()
	} else {
		s = v.noise.Process()
	}
	if v.filter != nil {
		v.filter.Process(s)
		switch v.output {
		case filterBand:
			s = v.filter.Band()
		case filterHigh:
			s = v.filter.High()
		}
	}
	return s * v.env.Process() * v.gain
}
