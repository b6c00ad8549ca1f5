package engine

import "testing"

func TestPlaybackStopsAfterAllSteps(t *testing.T) {
	s := NewStepSequencer(Patterns[0])
	steps := Patterns[0].Steps()

	s.ToggleMode()
	s.Start()

	count := func(Role) {}
	for i := 0; i < steps; i++ {
		if !s.Playing() {
			t.Fatalf("stopped early after %d subdivisions", i)
		}
		s.Advance(count)
		if s.Step() > steps {
			t.Fatalf("step %d exceeded step count %d", s.Step(), steps)
		}
	}
	if s.Playing() {
		t.Fatal("still playing after final step")
	}
	if s.Step() != steps {
		t.Fatalf("step after stop = %d, want %d", s.Step(), steps)
	}

	// Advance while stopped is a no-op.
	s.Advance(count)
	if s.Step() != steps {
		t.Fatalf("advance while stopped moved step to %d", s.Step())
	}
}

func TestStartAlwaysRestartsFromTop(t *testing.T) {
	s := NewStepSequencer(Patterns[0])
	s.ToggleMode()
	s.Start()
	for i := 0; i < 10; i++ {
		s.Advance(func(Role) {})
	}
	s.Start()
	if s.Step() != 0 || !s.Playing() {
		t.Fatalf("restart: step=%d playing=%v, want 0/true", s.Step(), s.Playing())
	}
}

func TestModeToggleIndependentOfPlayback(t *testing.T) {
	s := NewStepSequencer(Patterns[0])
	s.ToggleMode() // -> preset
	s.Start()
	for i := 0; i < 7; i++ {
		s.Advance(func(Role) {})
	}

	if got := s.ToggleMode(); got != ModeManual {
		t.Fatalf("toggle = %v, want manual", got)
	}
	if got := s.ToggleMode(); got != ModePreset {
		t.Fatalf("toggle = %v, want preset", got)
	}
	if s.Step() != 7 {
		t.Fatalf("mode toggle reset step to %d, want 7", s.Step())
	}
	if !s.Playing() {
		t.Fatal("mode toggle cleared the playing flag")
	}
}

func TestAdvanceTriggersPatternBits(t *testing.T) {
	p := Pattern{
		Name:  "probe",
		Kick:  []uint8{1, 0, 0, 1},
		Snare: []uint8{0, 1, 0, 1},
		HiHat: []uint8{0, 0, 1, 1},
	}
	s := NewStepSequencer(p)
	s.ToggleMode()
	s.Start()

	var got [][]Role
	for i := 0; i < 4; i++ {
		var hits []Role
		s.Advance(func(r Role) { hits = append(hits, r) })
		got = append(got, hits)
	}

	want := [][]Role{
		{RoleKick},
		{RoleSnare},
		{RoleHiHat},
		{RoleKick, RoleSnare, RoleHiHat},
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("step %d: hits %v, want %v", i, got[i], want[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("step %d: hits %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestSetPatternIgnoredWhilePlaying(t *testing.T) {
	s := NewStepSequencer(Patterns[0])
	s.ToggleMode()
	s.Start()
	s.Advance(func(Role) {})

	s.SetPattern(Patterns[1])
	if s.Pattern().Name != Patterns[0].Name {
		t.Fatal("pattern swapped while playing")
	}

	for s.Playing() {
		s.Advance(func(Role) {})
	}
	s.SetPattern(Patterns[1])
	if s.Pattern().Name != Patterns[1].Name {
		t.Fatal("pattern not swapped after stop")
	}
	if s.Step() != 0 {
		t.Fatalf("pattern swap left step at %d", s.Step())
	}
}
