package viz

import (
	"math"
	"testing"
)

func TestDominantBand(t *testing.T) {
	tests := []struct {
		name  string
		bands []float64
		limit int
		want  int
	}{
		{"clear peak", fourBands, 4, 1},
		{"tie resolves to lowest index", []float64{0.5, 0.5, 0.1}, 3, 0},
		{"limit excludes later peak", []float64{0.1, 0.2, 0.9}, 2, 1},
		{"single band", []float64{0.3}, 1, 0},
		{"limit beyond slice", []float64{0.1, 0.7}, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DominantBand(tt.bands, tt.limit)
			if got != tt.want {
				t.Fatalf("DominantBand(%v, %d) = %d, want %d", tt.bands, tt.limit, got, tt.want)
			}
			// Stable: same input, same output.
			if again := DominantBand(tt.bands, tt.limit); again != got {
				t.Fatalf("DominantBand not stable: %d then %d", got, again)
			}
		})
	}
}

func TestDominantBandRange(t *testing.T) {
	rng := NewRand(42)
	for trial := 0; trial < 100; trial++ {
		bands := make([]float64, 32)
		for i := range bands {
			bands[i] = rng.Float64()
		}
		got := DominantBand(bands, len(bands))
		if got < 0 || got >= len(bands) {
			t.Fatalf("DominantBand out of range: %d", got)
		}
	}
}

func TestHueFromBand(t *testing.T) {
	// Worked example: 4 bands, index 1 maps to 90°, basis 300 rotates
	// to (90-300) mod 360 = 150.
	if got := HueFromBand(300, 1, 4); got != 150 {
		t.Fatalf("HueFromBand(300, 1, 4) = %v, want 150", got)
	}
	if got := HueFromBand(0, 0, 4); got != 0 {
		t.Fatalf("HueFromBand(0, 0, 4) = %v, want 0", got)
	}
	// No rotation: pure linear map.
	if got := HueFromBand(0, 2, 4); got != 180 {
		t.Fatalf("HueFromBand(0, 2, 4) = %v, want 180", got)
	}
}

func TestHueFromBandRange(t *testing.T) {
	const size = 32
	for basis := 0.0; basis < 360; basis += 17.3 {
		prev := math.NaN()
		for i := 0; i < size; i++ {
			got := HueFromBand(basis, i, size)
			if got < 0 || got >= 360 {
				t.Fatalf("HueFromBand(%v, %d, %d) = %v, outside [0,360)", basis, i, size, got)
			}
			// Continuous step except at the basis wraparound.
			if !math.IsNaN(prev) {
				step := got - prev
				if step < 0 {
					step += 360
				}
				if math.Abs(step-360.0/size) > 1e-9 {
					t.Fatalf("unexpected hue step %v at basis %v index %d", step, basis, i)
				}
			}
			prev = got
		}
	}
}

func TestAverageAmplitude(t *testing.T) {
	bands := []float64{0.2, 0.4, 0.6, 0.8}
	if got := AverageAmplitude(bands, 0, 4); got != 0.5 {
		t.Fatalf("AverageAmplitude full = %v, want 0.5", got)
	}
	if got := AverageAmplitude(bands, 1, 3); got != 0.5 {
		t.Fatalf("AverageAmplitude mid = %v, want 0.5", got)
	}
	if got := AverageAmplitude(bands, 2, 2); got != 0 {
		t.Fatalf("AverageAmplitude empty range = %v, want 0", got)
	}
	if got := AverageAmplitude(bands, -5, 99); got != 0.5 {
		t.Fatalf("AverageAmplitude clamped range = %v, want 0.5", got)
	}
}
