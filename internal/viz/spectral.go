package viz

// SpectralFrame is the per-tick snapshot consumed by every strategy.
// Band slices are read-only once published; both have the same length.
type SpectralFrame struct {
	Right, Left    []float64
	SampleRateHalf float64
	TempoBPM       float64
}

// DominantBand returns the index of the strongest magnitude in bands[:limit].
// Ties resolve to the lowest index.
func DominantBand(bands []float64, limit int) int {
	if limit > len(bands) {
		limit = len(bands)
	}
	best := 0
	for i := 1; i < limit; i++ {
		if bands[i] > bands[best] {
			best = i
		}
	}
	return best
}

// HueFromBand maps a band index linearly onto [0, 360) and rotates the
// result by basis with wraparound. Strategies that want a reversed colour
// ramp invert the returned value themselves.
func HueFromBand(basis float64, index, indexSize int) float64 {
	if indexSize <= 0 {
		return 0
	}
	v := float64(index) / float64(indexSize) * 360.0
	if v < basis {
		return v - basis + 360
	}
	return v - basis
}

// AverageAmplitude averages bands[lo:hi], clamped to [0, 1].
func AverageAmplitude(bands []float64, lo, hi int) float64 {
	lo = clamp(lo, 0, len(bands))
	hi = clamp(hi, lo, len(bands))
	if hi == lo {
		return 0
	}
	sum := 0.0
	for _, v := range bands[lo:hi] {
		sum += v
	}
	return clampF(sum/float64(hi-lo), 0, 1)
}
