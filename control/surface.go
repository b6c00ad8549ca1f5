// Package control is the hosted stand-in for the hardware front panel:
// two knobs, two buttons and a push encoder. UI goroutines latch values
// into a Surface; the audio callback drains it once per sample and gets
// a consistent Snapshot with edge-triggered button events.
package control

import (
	"math"
	"sync/atomic"
)

// Snapshot is one frame of normalized control state. It is produced
// once per output sample and consumed read-only by the engine.
type Snapshot struct {
	Tempo  float32 // 0..1
	Volume float32 // 0..1

	EncoderDelta int // signed detents since the previous sample

	// Rising edges observed since the previous sample.
	KickEdge    bool
	SnareEdge   bool
	EncoderEdge bool
}

// Surface carries control writes from UI goroutines into the audio
// context without locks. Knob levels live in atomic words; button and
// encoder presses are queued in counters and drained one rising edge at
// a time, with a one-sample release between queued presses so every
// press is a distinct edge.
type Surface struct {
	tempo  atomic.Uint32 // float32 bits
	volume atomic.Uint32 // float32 bits

	encoder atomic.Int32 // accumulated detents

	kickPresses    atomic.Int32
	snarePresses   atomic.Int32
	encoderPresses atomic.Int32

	// Edge state, touched only by the audio context.
	kickHeld    bool
	snareHeld   bool
	encoderHeld bool
}

func NewSurface(tempo, volume float32) *Surface {
	s := &Surface{}
	s.SetTempo(tempo)
	s.SetVolume(volume)
	return s
}

// SetTempo latches the tempo knob position in [0, 1].
func (s *Surface) SetTempo(v float32) {
	s.tempo.Store(math.Float32bits(clamp01(v)))
}

// SetVolume latches the volume knob position in [0, 1].
func (s *Surface) SetVolume(v float32) {
	s.volume.Store(math.Float32bits(clamp01(v)))
}

func (s *Surface) Tempo() float32  { return math.Float32frombits(s.tempo.Load()) }
func (s *Surface) Volume() float32 { return math.Float32frombits(s.volume.Load()) }

// Turn accumulates encoder rotation; positive is clockwise.
func (s *Surface) Turn(delta int) {
	s.encoder.Add(int32(delta))
}

// PressKick queues one kick-button press.
func (s *Surface) PressKick() { s.kickPresses.Add(1) }

// PressSnare queues one snare-button press.
func (s *Surface) PressSnare() { s.snarePresses.Add(1) }

// PressEncoder queues one encoder-button press.
func (s *Surface) PressEncoder() { s.encoderPresses.Add(1) }

// Next returns the snapshot for the next sample. It must be called only
// from the audio context; the edge bookkeeping is single-reader.
func (s *Surface) Next() Snapshot {
	snap := Snapshot{
		Tempo:        s.Tempo(),
		Volume:       s.Volume(),
		EncoderDelta: int(s.encoder.Swap(0)),
	}
	snap.KickEdge, s.kickHeld = drainEdge(&s.kickPresses, s.kickHeld)
	snap.SnareEdge, s.snareHeld = drainEdge(&s.snarePresses, s.snareHeld)
	snap.EncoderEdge, s.encoderHeld = drainEdge(&s.encoderPresses, s.encoderHeld)
	return snap
}

// drainEdge consumes at most one queued press. After emitting an edge
// the button reads released for one sample so back-to-back presses stay
// distinct edges.
func drainEdge(pending *atomic.Int32, held bool) (edge, nowHeld bool) {
	if held {
		return false, false
	}
	if pending.Load() > 0 {
		pending.Add(-1)
		return true, true
	}
	return false, false
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
