package engine

// subdivPerBeat splits each beat into sequencer steps.
const subdivPerBeat = 4

// minBPM/maxBPM bound the tempo knob mapping. The lower bound keeps the
// beat interval structurally finite; the knob can never reach BPM 0.
const (
	minBPM = 60
	maxBPM = 180
)

// TempoClock is a free-running sample counter that reports beat and
// subdivision events. Intervals are recomputed every sample from the
// knob, so tempo changes take effect immediately, and counters wrap by
// subtracting the interval rather than resetting, which keeps phase
// error bounded by one sample across tempo changes.
type TempoClock struct {
	sampleRate float32

	bpm            float32
	beatInterval   float32
	beatCounter    float32
	subdivInterval float32
	subdivCounter  float32
}

func NewTempoClock(sampleRate float32) *TempoClock {
	c := &TempoClock{sampleRate: sampleRate}
	c.update(0.5)
	return c
}

func (c *TempoClock) update(knob float32) {
	if knob < 0 {
		knob = 0
	} else if knob > 1 {
		knob = 1
	}
	c.bpm = minBPM + (maxBPM-minBPM)*knob
	c.beatInterval = c.sampleRate * 60 / c.bpm
	c.subdivInterval = c.beatInterval / subdivPerBeat
}

// Update maps the knob to BPM, advances the clock one sample, and
// reports whether a beat and/or subdivision boundary was crossed.
func (c *TempoClock) Update(tempoKnob float32) (beat, subdiv bool) {
	c.update(tempoKnob)

	c.beatCounter++
	if c.beatCounter >= c.beatInterval {
		c.beatCounter -= c.beatInterval
		beat = true
	}

	c.subdivCounter++
	if c.subdivCounter >= c.subdivInterval {
		c.subdivCounter -= c.subdivInterval
		subdiv = true
	}
	return beat, subdiv
}

// RestartSubdiv zeroes the subdivision phase so preset playback starts
// exactly on its first step.
func (c *TempoClock) RestartSubdiv() {
	c.subdivCounter = 0
}

// BPM returns the tempo mapped from the most recent knob value.
func (c *TempoClock) BPM() float32 { return c.bpm }

// BeatInterval returns the current beat length in samples.
func (c *TempoClock) BeatInterval() float32 { return c.beatInterval }
