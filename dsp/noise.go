package dsp

// WhiteNoise is a linear-congruential white noise source. An integer
// generator is used instead of math/rand so a sample costs one multiply
// and the sequence is reproducible in tests.
type WhiteNoise struct {
	state uint32
}

func NewWhiteNoise() *WhiteNoise {
	return &WhiteNoise{state: 0x12345678}
}

// Seed resets the generator to a known state.
func (n *WhiteNoise) Seed(s uint32) {
	if s == 0 {
		s = 1
	}
	n.state = s
}

// Process returns the next noise sample in [-1, 1).
func (n *WhiteNoise) Process() float32 {
	n.state = n.state*1664525 + 1013904223
	return float32(int32(n.state)) / float32(1<<31)
}
