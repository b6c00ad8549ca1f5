package engine

// Pattern is a fixed-length hit grid: one row per pattern role, one
// byte per step (nonzero = hit). All rows of a pattern share the same
// step count. Patterns are compiled-in constant data.
type Pattern struct {
	Name  string
	Kick  []uint8
	Snare []uint8
	HiHat []uint8
}

// Steps returns the pattern length in sequencer steps.
func (p Pattern) Steps() int { return len(p.Kick) }

// Hit reports whether role has a hit at step.
func (p Pattern) Hit(role Role, step int) bool {
	switch role {
	case RoleKick:
		return p.Kick[step] != 0
	case RoleSnare:
		return p.Snare[step] != 0
	case RoleHiHat:
		return p.HiHat[step] != 0
	}
	return false
}

// Patterns holds the built-in presets. "Four Bars" is the full 64-step
// groove; "Eighths" is a one-bar starter loop.
var Patterns = []Pattern{
	{
		Name: "Four Bars",
		Kick: []uint8{
			1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0,
			1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0,
			1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0,
			0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0,
		},
		Snare: []uint8{
			0, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1,
			0, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1,
			0, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0,
			0, 1, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0,
		},
		HiHat: []uint8{
			1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0,
			1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0,
			1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0,
			1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 1, 0,
		},
	},
	{
		Name: "Eighths",
		Kick: []uint8{
			1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0,
		},
		Snare: []uint8{
			0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0,
		},
		HiHat: []uint8{
			1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0,
		},
	},
}
