package engine

// Mix sums the voice samples, applies master volume (identity map from
// the knob) and adds the optional pass-through pair. The result is
// returned unclipped; any limiting happens at the integration boundary.
func Mix(samples []float32, volume float32, passL, passR float32) (l, r float32) {
	var sum float32
	for _, s := range samples {
		sum += s
	}
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	sum *= volume
	return sum + passL, sum + passR
}
