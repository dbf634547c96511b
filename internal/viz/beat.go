package viz

// BeatDetector flags kick and hat onsets by comparing the instantaneous
// band energy against a short moving average, with a refractory interval
// so one drum hit produces one trigger.
type BeatDetector struct {
	kick beatState
	hat  beatState
}

type beatState struct {
	history [BeatHistoryFrames]float64
	idx     int
	filled  int
	cool    int
	now     bool
}

// Update consumes the current frame's spectra. Kick energy comes from the
// lowest bands of both channels, hat energy from the top quarter.
func (d *BeatDetector) Update(f SpectralFrame) {
	n := len(f.Right)
	if n == 0 {
		d.kick.now = false
		d.hat.now = false
		return
	}
	hi := clamp(KickBandHi, 1, n)
	kickE := (AverageAmplitude(f.Right, 0, hi) + AverageAmplitude(f.Left, 0, hi)) / 2
	hatLo := n - n/HatBandFraction
	hatE := (AverageAmplitude(f.Right, hatLo, n) + AverageAmplitude(f.Left, hatLo, n)) / 2
	d.kick.update(kickE)
	d.hat.update(hatE)
}

func (s *beatState) update(energy float64) {
	avg := 0.0
	if s.filled > 0 {
		sum := 0.0
		for i := 0; i < s.filled; i++ {
			sum += s.history[i]
		}
		avg = sum / float64(s.filled)
	}
	s.history[s.idx] = energy
	s.idx = (s.idx + 1) % BeatHistoryFrames
	if s.filled < BeatHistoryFrames {
		s.filled++
	}

	if s.cool > 0 {
		s.cool--
		s.now = false
		return
	}
	s.now = s.filled >= BeatHistoryFrames/2 && energy > avg*BeatThreshold && energy > 0.05
	if s.now {
		s.cool = BeatRefractory
	}
}

func (d *BeatDetector) KickNow() bool { return d.kick.now }
func (d *BeatDetector) HatNow() bool  { return d.hat.now }
