package viz

import "testing"

// beatFrame builds an 8-band frame with the given kick (bands 0-2) and
// hat (top quarter) energies on both channels.
func beatFrame(kick, hat float64) SpectralFrame {
	bands := []float64{kick, kick, kick, 0, 0, 0, hat, hat}
	return SpectralFrame{Right: bands, Left: bands, TempoBPM: 120}
}

func TestBeatDetectorKickSpike(t *testing.T) {
	var d BeatDetector
	for i := 0; i < 25; i++ {
		d.Update(beatFrame(0.1, 0.02))
		if d.KickNow() {
			t.Fatalf("steady baseline triggered a kick at frame %d", i)
		}
	}

	d.Update(beatFrame(0.5, 0.02))
	if !d.KickNow() {
		t.Fatal("kick spike not detected")
	}
	if d.HatNow() {
		t.Fatal("kick spike leaked into the hat detector")
	}
}

func TestBeatDetectorRefractory(t *testing.T) {
	var d BeatDetector
	for i := 0; i < 25; i++ {
		d.Update(beatFrame(0.1, 0.02))
	}
	d.Update(beatFrame(0.5, 0.02))
	if !d.KickNow() {
		t.Fatal("first spike not detected")
	}

	// A sustained spike is one hit, not one per frame.
	for i := 0; i < BeatRefractory; i++ {
		d.Update(beatFrame(0.5, 0.02))
		if d.KickNow() {
			t.Fatalf("retriggered inside refractory at frame %d", i)
		}
	}
}

func TestBeatDetectorHatSpike(t *testing.T) {
	var d BeatDetector
	for i := 0; i < 25; i++ {
		d.Update(beatFrame(0.1, 0.02))
	}
	d.Update(beatFrame(0.1, 0.4))
	if !d.HatNow() {
		t.Fatal("hat spike not detected")
	}
	if d.KickNow() {
		t.Fatal("hat spike leaked into the kick detector")
	}
}

func TestBeatDetectorNeedsHistory(t *testing.T) {
	var d BeatDetector
	// First frames have no baseline; even loud input must not trigger.
	d.Update(beatFrame(0.9, 0.9))
	if d.KickNow() || d.HatNow() {
		t.Fatal("triggered without a filled history")
	}
}

func TestBeatDetectorEmptyFrame(t *testing.T) {
	var d BeatDetector
	for i := 0; i < 25; i++ {
		d.Update(beatFrame(0.1, 0.02))
	}
	d.Update(SpectralFrame{})
	if d.KickNow() || d.HatNow() {
		t.Fatal("empty frame reported a beat")
	}
}
