package engine

// Mode selects how drum hits are triggered.
type Mode int

const (
	// ModeManual triggers kick and snare directly from their buttons.
	ModeManual Mode = iota
	// ModePreset plays the stored pattern instead of the buttons.
	ModePreset
)

func (m Mode) String() string {
	if m == ModePreset {
		return "preset"
	}
	return "manual"
}

// StepSequencer walks the active pattern while in preset playback.
// Mode and playback are independent: toggling the mode never touches
// the playing flag or the current step, so leaving and re-entering
// preset mode resumes where playback paused.
type StepSequencer struct {
	pattern Pattern
	mode    Mode
	playing bool
	step    int
}

func NewStepSequencer(p Pattern) *StepSequencer {
	return &StepSequencer{pattern: p}
}

// SetPattern swaps the active pattern. Ignored while playing so the
// step index can never land beyond a shorter pattern mid-run.
func (s *StepSequencer) SetPattern(p Pattern) {
	if s.playing {
		return
	}
	s.pattern = p
	s.step = 0
}

// Pattern returns the active pattern.
func (s *StepSequencer) Pattern() Pattern { return s.pattern }

// ToggleMode flips Manual/Preset and returns the new mode.
func (s *StepSequencer) ToggleMode() Mode {
	if s.mode == ModeManual {
		s.mode = ModePreset
	} else {
		s.mode = ModeManual
	}
	return s.mode
}

func (s *StepSequencer) Mode() Mode    { return s.mode }
func (s *StepSequencer) Playing() bool { return s.playing }
func (s *StepSequencer) Step() int     { return s.step }

// Start begins preset playback from the top of the pattern. Partial
// restarts are disallowed; the pattern always plays from step 0.
func (s *StepSequencer) Start() {
	s.playing = true
	s.step = 0
}

// Advance handles one subdivision event: it retriggers every role whose
// pattern bit is set at the current step, then moves on. Reaching the
// end of the pattern stops playback with the step left at the count;
// Start resets it.
func (s *StepSequencer) Advance(trigger func(Role)) {
	if !s.playing {
		return
	}
	if s.pattern.Hit(RoleKick, s.step) {
		trigger(RoleKick)
	}
	if s.pattern.Hit(RoleSnare, s.step) {
		trigger(RoleSnare)
	}
	if s.pattern.Hit(RoleHiHat, s.step) {
		trigger(RoleHiHat)
	}
	s.step++
	if s.step >= s.pattern.Steps() {
		s.playing = false
	}
}
