package viz

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
)

// Analyzer turns the raw stereo sample stream into per-tick SpectralFrames:
// Hann window, forward FFT, then a logarithmic fold of the magnitude bins
// into a fixed number of bands per channel.
//
// Push is called from the audio pull goroutine; Frame from the render
// loop. The ring buffers are the only shared state.
type Analyzer struct {
	mu    sync.Mutex
	ring  [2][]float64 // most recent FFTSize samples per channel
	write int
	fill  int

	bands int
	win   []float64
	plan  *algofft.Plan[complex128]
	in    []complex128
	out   []complex128
	edges []int

	peak float64 // running magnitude peak for normalization
}

func NewAnalyzer(bands int) (*Analyzer, error) {
	if bands <= 0 {
		bands = DefaultBands
	}
	plan, err := algofft.NewPlan64(FFTSize)
	if err != nil {
		return nil, fmt.Errorf("analyzer fft plan: %w", err)
	}
	a := &Analyzer{
		bands: bands,
		win:   window.Generate(window.TypeHann, FFTSize),
		plan:  plan,
		in:    make([]complex128, FFTSize),
		out:   make([]complex128, FFTSize),
		peak:  1e-9,
	}
	a.ring[0] = make([]float64, FFTSize)
	a.ring[1] = make([]float64, FFTSize)
	a.edges = logEdges(bands, FFTSize/2)
	return a, nil
}

// logEdges splits [1, nyqBins) into bands with exponentially growing width.
func logEdges(bands, nyqBins int) []int {
	edges := make([]int, bands+1)
	for i := 0; i <= bands; i++ {
		e := int(math.Pow(float64(nyqBins), float64(i)/float64(bands)))
		if e <= i {
			e = i + 1 // force at least one bin per band at the low end
		}
		if e > nyqBins {
			e = nyqBins
		}
		edges[i] = e
	}
	return edges
}

func (a *Analyzer) Bands() int { return a.bands }

// Push appends interleaved stereo samples to the ring buffers.
func (a *Analyzer) Push(samples [][2]float64) {
	a.mu.Lock()
	for _, s := range samples {
		a.ring[0][a.write] = s[0]
		a.ring[1][a.write] = s[1]
		a.write = (a.write + 1) % FFTSize
		if a.fill < FFTSize {
			a.fill++
		}
	}
	a.mu.Unlock()
}

// Ready reports whether a full FFT window has been buffered.
func (a *Analyzer) Ready() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.fill >= FFTSize
}

// Frame computes the spectral snapshot for the current tick. Band values
// are normalized against the running peak so they sit in [0, 1].
func (a *Analyzer) Frame(tempoBPM float64) SpectralFrame {
	a.mu.Lock()
	right := a.analyze(1)
	left := a.analyze(0)
	a.mu.Unlock()
	return SpectralFrame{
		Right:          right,
		Left:           left,
		SampleRateHalf: float64(SampleRate) / 2,
		TempoBPM:       tempoBPM,
	}
}

func (a *Analyzer) analyze(ch int) []float64 {
	// Oldest sample first so the window tapers the seam.
	for i := 0; i < FFTSize; i++ {
		s := a.ring[ch][(a.write+i)%FFTSize]
		a.in[i] = complex(s*a.win[i], 0)
	}
	if err := a.plan.Forward(a.out, a.in); err != nil {
		panic(fmt.Sprintf("viz: fft forward: %v", err))
	}

	out := make([]float64, a.bands)
	for b := 0; b < a.bands; b++ {
		lo, hi := a.edges[b], a.edges[b+1]
		if hi <= lo {
			hi = lo + 1
		}
		m := 0.0
		for i := lo; i < hi && i < FFTSize/2; i++ {
			if v := cmplx.Abs(a.out[i]); v > m {
				m = v
			}
		}
		if m > a.peak {
			a.peak = m
		}
		out[b] = m / a.peak
	}
	return out
}
