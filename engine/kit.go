package engine

// Kit is one bank of per-voice tuning plus the panel color shown while
// it is selected. Kits are compiled-in constant data; the hand-tuned
// numbers are kept verbatim to preserve each kit's character.
type Kit struct {
	Name  string
	Kick  VoiceParams
	Snare VoiceParams
	HiHat VoiceParams
	Color [3]uint8
}

// Kits is the built-in kit table. Snare and hi-hat frequencies are
// filter cutoffs; the kick frequency drives its oscillator directly.
var Kits = []Kit{
	{
		Name:  "Classic",
		Kick:  VoiceParams{FrequencyHz: 60, DecaySeconds: 0.20},
		Snare: VoiceParams{DecaySeconds: 0.15, FilterFreqHz: 1800},
		HiHat: VoiceParams{DecaySeconds: 0.05, FilterFreqHz: 12000},
		Color: [3]uint8{255, 0, 0},
	},
	{
		Name:  "Electronic",
		Kick:  VoiceParams{FrequencyHz: 80, DecaySeconds: 0.12},
		Snare: VoiceParams{DecaySeconds: 0.10, FilterFreqHz: 1200},
		HiHat: VoiceParams{DecaySeconds: 0.04, FilterFreqHz: 10000},
		Color: [3]uint8{0, 255, 0},
	},
	{
		Name:  "808 Style",
		Kick:  VoiceParams{FrequencyHz: 45, DecaySeconds: 0.80},
		Snare: VoiceParams{DecaySeconds: 0.10, FilterFreqHz: 2200},
		HiHat: VoiceParams{DecaySeconds: 0.06, FilterFreqHz: 8000},
		Color: [3]uint8{0, 0, 255},
	},
	{
		Name:  "Rock Kit",
		Kick:  VoiceParams{FrequencyHz: 55, DecaySeconds: 0.28},
		Snare: VoiceParams{DecaySeconds: 0.18, FilterFreqHz: 2500},
		HiHat: VoiceParams{DecaySeconds: 0.05, FilterFreqHz: 11000},
		Color: [3]uint8{255, 255, 0},
	},
	{
		Name:  "Lo-Fi HipHop",
		Kick:  VoiceParams{FrequencyHz: 70, DecaySeconds: 0.15},
		Snare: VoiceParams{DecaySeconds: 0.09, FilterFreqHz: 1000},
		HiHat: VoiceParams{DecaySeconds: 0.07, FilterFreqHz: 9000},
		Color: [3]uint8{255, 0, 255},
	},
	{
		Name:  "Industrial",
		Kick:  VoiceParams{FrequencyHz: 65, DecaySeconds: 0.10},
		Snare: VoiceParams{DecaySeconds: 0.12, FilterFreqHz: 3500},
		HiHat: VoiceParams{DecaySeconds: 0.03, FilterFreqHz: 7000},
		Color: [3]uint8{0, 255, 255},
	},
}

// KitBank owns the kit selector and pushes parameters into the voices.
// Apply is idempotent and runs inside the audio context, so a kit
// switch is atomic with respect to Render.
type KitBank struct {
	kits  []Kit
	index int

	kick  *Voice
	snare *Voice
	hihat *Voice
}

func NewKitBank(kits []Kit, kick, snare, hihat *Voice) *KitBank {
	b := &KitBank{kits: kits, kick: kick, snare: snare, hihat: hihat}
	b.Apply(0)
	return b
}

// Apply pushes kit index's parameters into all voices.
func (b *KitBank) Apply(index int) {
	b.index = index
	kit := b.kits[index]
	b.kick.ApplyParams(kit.Kick)
	b.snare.ApplyParams(kit.Snare)
	b.hihat.ApplyParams(kit.HiHat)
}

// Step moves the selector by increment, wrapping in both directions,
// and applies the new kit. The added kit count keeps the modulo correct
// for negative increments.
func (b *KitBank) Step(increment int) int {
	n := len(b.kits)
	b.Apply((b.index + increment + n) % n)
	return b.index
}

// Index returns the current kit index.
func (b *KitBank) Index() int { return b.index }

// Current returns the current kit.
func (b *KitBank) Current() Kit { return b.kits[b.index] }
