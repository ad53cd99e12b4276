package pacing

import "math"

// WaveSize computes §4.H step 5's wave_size = base + round(ceiling *
// curve.Evaluate(progress)).
func WaveSize(base, ceiling int, intensity float64) int {
	return base + int(math.Round(float64(ceiling)*clamp(intensity)))
}

// VariantWeights returns the Adventurer/Paladin/Priest spawn weights for a
// given pacing intensity. At intensity 0 the mix favors plain Adventurers;
// as intensity rises toward 1 the mix shifts toward Paladin and Priest.
func VariantWeights(intensity float64) (adventurer, paladin, priest float64) {
	i := clamp(intensity)
	adventurer = 1 - 0.6*i
	paladin = 0.3 * i
	priest = 0.3 * i
	return
}
