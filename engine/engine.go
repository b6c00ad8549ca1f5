// Package engine is the real-time drum machine core: four fixed voices,
// a kit bank, a tempo clock and a step sequencer, orchestrated once per
// output sample. All mutable state is owned by the audio context that
// calls ProcessSample; nothing here locks, blocks or allocates on the
// per-sample path.
package engine

import "go-beatbox/control"

// HiHatMode picks how the hi-hat voice is triggered (the firmware left
// this ambiguous, so it is an explicit choice here).
type HiHatMode int

const (
	// HiHatSteps retriggers the hi-hat only from sequencer steps and
	// mixes it in only during preset playback.
	HiHatSteps HiHatMode = iota
	// HiHatBeat retriggers the hi-hat on every beat as a second
	// metronome voice and always mixes it in.
	HiHatBeat
)

// Options are the policies the core leaves to its integrator.
type Options struct {
	HiHat HiHatMode
	// ClickInPreset keeps the metronome click audible during preset
	// playback.
	ClickInPreset bool
	// Pattern indexes Patterns; applied when playback is stopped.
	Pattern int
}

// DefaultOptions matches the original hardware behavior.
func DefaultOptions() Options {
	return Options{HiHat: HiHatSteps, ClickInPreset: true, Pattern: 0}
}

var ledWhite = [3]uint8{255, 255, 255}

// Engine aggregates the voices, kit bank, clock and sequencer. It is
// built once, owned by its caller, and driven by exactly one goroutine.
type Engine struct {
	sampleRate float32

	clock *TempoClock
	kick  *Voice
	snare *Voice
	hihat *Voice
	click *Voice
	kits  *KitBank
	seq   *StepSequencer

	opts Options

	led    [3]uint8
	volume float32
}

// New builds an engine for the given sample rate with kit 0 applied and
// the options' pattern armed.
func New(sampleRate float32, opts Options) *Engine {
	e := &Engine{
		sampleRate: sampleRate,
		clock:      NewTempoClock(sampleRate),
		kick:       NewKickVoice(sampleRate),
		snare:      NewSnareVoice(sampleRate),
		hihat:      NewHiHatVoice(sampleRate),
		click:      NewClickVoice(sampleRate),
	}
	e.kits = NewKitBank(Kits, e.kick, e.snare, e.hihat)
	e.seq = NewStepSequencer(Patterns[patternIndex(opts.Pattern)])
	e.opts = opts
	e.opts.Pattern = patternIndex(opts.Pattern)
	e.led = e.kits.Current().Color
	return e
}

func patternIndex(i int) int {
	if i < 0 || i >= len(Patterns) {
		return 0
	}
	return i
}

// SetOptions adopts new policies. A pattern change lands only while the
// sequencer is stopped; everything else takes effect immediately. Must
// be called from the audio context, between samples.
func (e *Engine) SetOptions(opts Options) {
	opts.Pattern = patternIndex(opts.Pattern)
	if e.seq.Playing() {
		opts.Pattern = e.opts.Pattern
	}
	e.opts = opts
	e.seq.SetPattern(Patterns[opts.Pattern])
}

// Options returns the active policies.
func (e *Engine) Options() Options { return e.opts }

// Voice returns the voice for a role (for tests and previews).
func (e *Engine) Voice(role Role) *Voice {
	switch role {
	case RoleKick:
		return e.kick
	case RoleSnare:
		return e.snare
	case RoleHiHat:
		return e.hihat
	case RoleClick:
		return e.click
	}
	return nil
}

func (e *Engine) retrigger(role Role) {
	switch role {
	case RoleKick:
		e.kick.Retrigger()
	case RoleSnare:
		e.snare.Retrigger()
	case RoleHiHat:
		e.hihat.Retrigger()
	case RoleClick:
		e.click.Retrigger()
	}
}

// ProcessSample runs one sample of the full data flow: controls in,
// clock and sequencer update, voice rendering, stereo mix out. inL/inR
// are the pass-through input samples (0 when there is no input).
func (e *Engine) ProcessSample(snap control.Snapshot, inL, inR float32) (outL, outR float32) {
	beat, subdiv := e.clock.Update(snap.Tempo)
	e.volume = snap.Volume

	presetRunning := e.seq.Mode() == ModePreset && e.seq.Playing()

	// The metronome click fires on every beat, unless silenced during
	// preset playback.
	if beat {
		if e.opts.ClickInPreset || !presetRunning {
			e.click.Retrigger()
		}
		if e.opts.HiHat == HiHatBeat {
			e.hihat.Retrigger()
		}
	}

	// Kit switching via encoder rotation.
	if snap.EncoderDelta != 0 {
		e.kits.Step(snap.EncoderDelta)
		if e.seq.Mode() == ModeManual {
			e.led = e.kits.Current().Color
		}
	}

	// Encoder press toggles the mode; playback state is untouched.
	if snap.EncoderEdge {
		if e.seq.ToggleMode() == ModePreset {
			e.led = ledWhite
		} else {
			e.led = e.kits.Current().Color
		}
	}

	// Button handling depends on the mode.
	switch e.seq.Mode() {
	case ModeManual:
		if snap.KickEdge {
			e.kick.Retrigger()
		}
		if snap.SnareEdge {
			e.snare.Retrigger()
		}
	case ModePreset:
		if snap.KickEdge && !e.seq.Playing() {
			e.seq.Start()
			e.clock.RestartSubdiv()
		}
	}

	// Step the pattern on each subdivision while playing.
	if subdiv && e.seq.Mode() == ModePreset && e.seq.Playing() {
		e.seq.Advance(e.retrigger)
		if !e.seq.Playing() {
			e.led = e.kits.Current().Color
		}
	}

	// Every voice renders every sample; envelopes gate themselves.
	k := e.kick.Render()
	s := e.snare.Render()
	c := e.click.Render()
	h := e.hihat.Render()
	if e.opts.HiHat == HiHatSteps && e.seq.Mode() != ModePreset {
		h = 0
	}

	voices := [NumRoles]float32{k, s, h, c}
	return Mix(voices[:], snap.Volume, inL, inR)
}

// Status is an immutable snapshot for display layers. It is produced by
// the audio context and read elsewhere; it carries no references back
// into engine state.
type Status struct {
	BPM       float32
	Volume    float32
	Mode      Mode
	Playing   bool
	Step      int
	StepCount int
	Kit       int
	KitName   string
	KitColor  [3]uint8
	LED       [3]uint8
	Pattern   int
}

// Status captures the current engine state.
func (e *Engine) Status() Status {
	kit := e.kits.Current()
	return Status{
		BPM:       e.clock.BPM(),
		Volume:    e.volume,
		Mode:      e.seq.Mode(),
		Playing:   e.seq.Playing(),
		Step:      e.seq.Step(),
		StepCount: e.seq.Pattern().Steps(),
		Kit:       e.kits.Index(),
		KitName:   kit.Name,
		KitColor:  kit.Color,
		LED:       e.led,
		Pattern:   e.opts.Pattern,
	}
}
