// Package audio is the real-time I/O boundary. It owns the portaudio
// stream, drives the engine once per output sample inside the callback,
// applies the optional delay send and soft-clip limiter, and publishes
// engine status for the UI once per buffer. Option changes from other
// goroutines land in an atomic slot and are adopted at the next buffer
// boundary, never mid-sample.
package audio

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"

	"go-beatbox/control"
	"go-beatbox/debug"
	"go-beatbox/dsp"
	"go-beatbox/engine"
)

// DelayOptions configure the post-mix delay send.
type DelayOptions struct {
	Enabled  bool
	Time     float32
	Feedback float32
	Mix      float32
	LFORate  float32
	LFODepth float32
}

// Options bundle everything adjustable at the stream boundary.
type Options struct {
	Engine   engine.Options
	Delay    DelayOptions
	SoftClip bool
}

// Stream owns the audio stream and the engine it drives. All engine
// and effect state is touched only from the portaudio callback.
type Stream struct {
	sampleRate  float32
	passthrough bool

	eng     *engine.Engine
	surface *control.Surface

	delay    *dsp.ModulatedDelay
	delayOn  bool
	softClip bool

	pending atomic.Pointer[Options]

	// Double-buffered status snapshot; the callback writes, the UI
	// reads. A torn read can only show a one-buffer-stale mix of
	// display fields, which is harmless.
	statusBuf [2]engine.Status
	statusIdx int
	status    atomic.Pointer[engine.Status]

	stream *portaudio.Stream
}

// New builds the engine and effect chain. Passthrough decides whether
// the stream opens an input device; it cannot change after Start.
func New(sampleRate float32, surface *control.Surface, opts Options, passthrough bool) *Stream {
	s := &Stream{
		sampleRate:  sampleRate,
		passthrough: passthrough,
		eng:         engine.New(sampleRate, opts.Engine),
		surface:     surface,
		delay:       dsp.NewModulatedDelay(sampleRate),
	}
	s.apply(&opts)
	return s
}

// Start opens and starts the default stream: stereo out, with stereo in
// when pass-through is enabled.
func (s *Stream) Start() error {
	var (
		stream *portaudio.Stream
		err    error
	)
	if s.passthrough {
		stream, err = portaudio.OpenDefaultStream(2, 2, float64(s.sampleRate),
			portaudio.FramesPerBufferUnspecified, s.processDuplex)
	} else {
		stream, err = portaudio.OpenDefaultStream(0, 2, float64(s.sampleRate),
			portaudio.FramesPerBufferUnspecified, s.process)
	}
	if err != nil {
		return fmt.Errorf("can't open default stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("can't start stream: %w", err)
	}
	s.stream = stream
	debug.Log("audio", "stream started rate=%g passthrough=%v", s.sampleRate, s.passthrough)
	return nil
}

// Close stops and closes the stream.
func (s *Stream) Close() error {
	if s.stream == nil {
		return nil
	}
	// ignore stop error, close matters
	s.stream.Stop()
	err := s.stream.Close()
	s.stream = nil
	return err
}

// UpdateOptions queues new options; the callback adopts them at the
// next buffer boundary.
func (s *Stream) UpdateOptions(opts Options) {
	s.pending.Store(&opts)
}

// Status returns the most recently published engine snapshot.
func (s *Stream) Status() engine.Status {
	if p := s.status.Load(); p != nil {
		return *p
	}
	return s.eng.Status()
}

// apply pushes options into the engine and effect chain. Runs in the
// audio context (or before Start).
func (s *Stream) apply(o *Options) {
	s.eng.SetOptions(o.Engine)
	s.delayOn = o.Delay.Enabled
	s.delay.SetTime(o.Delay.Time)
	s.delay.SetFeedback(o.Delay.Feedback)
	s.delay.SetMix(o.Delay.Mix)
	s.delay.SetLFORate(o.Delay.LFORate)
	s.delay.SetLFODepth(o.Delay.LFODepth)
	s.softClip = o.SoftClip
}

func (s *Stream) process(out [][]float32) {
	s.render(nil, out)
}

func (s *Stream) processDuplex(in, out [][]float32) {
	s.render(in, out)
}

func (s *Stream) render(in, out [][]float32) {
	if o := s.pending.Swap(nil); o != nil {
		s.apply(o)
	}

	for i := range out[0] {
		var inL, inR float32
		if in != nil {
			inL, inR = in[0][i], in[1][i]
		}

		l, r := s.eng.ProcessSample(s.surface.Next(), inL, inR)

		if s.delayOn {
			m := s.delay.Process((l + r) * 0.5)
			l, r = m, m
		}
		if s.softClip {
			l = float32(math.Tanh(float64(l) * 0.8))
			r = float32(math.Tanh(float64(r) * 0.8))
		}

		out[0][i], out[1][i] = l, r
	}

	s.statusIdx ^= 1
	s.statusBuf[s.statusIdx] = s.eng.Status()
	s.status.Store(&s.statusBuf[s.statusIdx])
}

// ListDevices returns one line per portaudio device, for the CLI.
func ListDevices() ([]string, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("can't list devices: %w", err)
	}
	lines := make([]string, 0, len(devices))
	for _, d := range devices {
		lines = append(lines, fmt.Sprintf("%-40s in:%d out:%d %gHz",
			d.Name, d.MaxInputChannels, d.MaxOutputChannels, d.DefaultSampleRate))
	}
	return lines, nil
}
