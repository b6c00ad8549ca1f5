package dsp

type envStage int

const (
	stageIdle envStage = iota
	stageAttack
	stageDecay
)

// ADSR is a linear attack/decay envelope used in percussive form
// (sustain pinned to 0, no release segment). Process keeps returning 0
// once the decay has run out, so callers never need to gate on activity.
type ADSR struct {
	sampleRate float32

	attackRate float32 // per-sample rise
	decayRate  float32 // per-sample fall
	sustain    float32

	value float32
	stage envStage
}

func NewADSR(sampleRate float32) *ADSR {
	e := &ADSR{sampleRate: sampleRate}
	e.SetAttack(0.001)
	e.SetDecay(0.1)
	return e
}

// SetAttack sets the attack time in seconds (at least one sample).
func (e *ADSR) SetAttack(seconds float32) {
	samples := clamp(seconds*e.sampleRate, 1, e.sampleRate*10)
	e.attackRate = 1 / samples
}

// SetDecay sets the decay time in seconds (at least one sample).
// Only the slope changes: an envelope already decaying keeps its
// current level and continues with the new rate.
func (e *ADSR) SetDecay(seconds float32) {
	samples := clamp(seconds*e.sampleRate, 1, e.sampleRate*10)
	e.decayRate = 1 / samples
}

// SetSustain sets the sustain level in [0, 1].
func (e *ADSR) SetSustain(level float32) {
	e.sustain = clamp(level, 0, 1)
}

// Retrigger restarts the envelope from the top of the attack segment,
// regardless of the current stage.
func (e *ADSR) Retrigger() {
	e.value = 0
	e.stage = stageAttack
}

// Active reports whether the envelope is still producing output.
func (e *ADSR) Active() bool { return e.stage != stageIdle }

// Process advances the envelope one sample and returns its value.
func (e *ADSR) Process() float32 {
	switch e.stage {
	case stageAttack:
		e.value += e.attackRate
		if e.value >= 1 {
			e.value = 1
			e.stage = stageDecay
		}
	case stageDecay:
		e.value -= e.decayRate
		if e.value <= e.sustain {
			e.value = e.sustain
			if e.sustain == 0 {
				e.stage = stageIdle
			}
		}
	}
	return e.value
}
