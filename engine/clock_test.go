package engine

import "testing"

const testRate = 48000

func TestKnobToBPM(t *testing.T) {
	c := NewTempoClock(testRate)
	cases := []struct {
		knob float32
		bpm  float32
	}{
		{0, 60},
		{0.5, 120},
		{1, 180},
		{-0.5, 60}, // clamped
		{2, 180},   // clamped
	}
	for _, tc := range cases {
		c.Update(tc.knob)
		if got := c.BPM(); got != tc.bpm {
			t.Errorf("knob %v: bpm = %v, want %v", tc.knob, got, tc.bpm)
		}
	}
}

func TestOneBeatPer24000SamplesAt120BPM(t *testing.T) {
	c := NewTempoClock(testRate)
	beats := 0
	for i := 0; i < 24000; i++ {
		beat, _ := c.Update(0.5)
		if beat {
			beats++
		}
	}
	if beats != 1 {
		t.Fatalf("beats after 24000 samples = %d, want 1", beats)
	}
}

func TestSubdivisionsPerBeat(t *testing.T) {
	c := NewTempoClock(testRate)
	subdivs := 0
	for i := 0; i < 24000; i++ {
		_, subdiv := c.Update(0.5)
		if subdiv {
			subdivs++
		}
	}
	if subdivs != subdivPerBeat {
		t.Fatalf("subdivisions per beat = %d, want %d", subdivs, subdivPerBeat)
	}
}

func TestWrapPreservesPhase(t *testing.T) {
	c := NewTempoClock(testRate)
	beats := 0
	for i := 0; i < 3*24000; i++ {
		if beat, _ := c.Update(0.5); beat {
			beats++
		}
	}
	if beats != 3 {
		t.Fatalf("beats after 72000 samples = %d, want 3", beats)
	}
}

func TestTempoChangeTakesEffectImmediately(t *testing.T) {
	c := NewTempoClock(testRate)
	// Half a beat at 120 BPM, then switch to 180 BPM (16000-sample
	// interval). The counter is at 12000, so the beat lands once it
	// crosses the new interval, not the old one.
	for i := 0; i < 12000; i++ {
		if beat, _ := c.Update(0.5); beat {
			t.Fatalf("unexpected beat at sample %d", i)
		}
	}
	fired := -1
	for i := 0; i < 8000; i++ {
		if beat, _ := c.Update(1); beat {
			fired = i
			break
		}
	}
	if fired != 3999 {
		t.Fatalf("beat fired at offset %d after tempo change, want 3999", fired)
	}
}

func TestRestartSubdiv(t *testing.T) {
	c := NewTempoClock(testRate)
	for i := 0; i < 5000; i++ {
		c.Update(0.5)
	}
	c.RestartSubdiv()
	// Subdivision interval at 120 BPM is 6000 samples; after a restart
	// the next subdivision must be a full interval away.
	for i := 0; i < 5999; i++ {
		if _, subdiv := c.Update(0.5); subdiv {
			t.Fatalf("subdivision fired %d samples after restart", i+1)
		}
	}
	if _, subdiv := c.Update(0.5); !subdiv {
		t.Fatal("expected subdivision a full interval after restart")
	}
}
