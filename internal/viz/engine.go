package viz

// FrameSink receives a notification after each completed visualize pass,
// before the frame is presented. Used for recording; optional.
type FrameSink interface {
	FrameDone(frame int)
}

// Engine drives the per-frame pipeline: advance the angular phase, feed
// the primary strategy a fresh point pair, then let every populated
// strategy age and draw its points. Strictly single-threaded; one Tick is
// one frame.
type Engine struct {
	Sched  *Scheduler
	Clock  *Clock
	Canvas Canvas
	Sink   FrameSink

	Background Color
	Angle      float64 // degrees, wraps at 360
	frame      int
}

func NewEngine(sched *Scheduler, clock *Clock, canvas Canvas) *Engine {
	return &Engine{
		Sched:      sched,
		Clock:      clock,
		Canvas:     canvas,
		Background: Color{A: 1},
	}
}

// angleStep is the per-frame phase advance in degrees: one full revolution
// every BeatsPerOrbit beats at the current tempo.
func angleStep(tempoBPM, fps float64) float64 {
	if tempoBPM <= 0 {
		tempoBPM = DefaultTempo
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	return 360.0 * tempoBPM / 60.0 / BeatsPerOrbit / fps
}

// Tick runs one frame of the simulation against the given spectral frame.
func (e *Engine) Tick(f SpectralFrame) {
	e.Clock.TempoBPM = f.TempoBPM
	e.Angle = wrap360(e.Angle + angleStep(f.TempoBPM, e.Clock.FPS))

	primary := e.Sched.Primary()
	if primary == nil {
		return
	}
	if tk, ok := primary.(trailKeeper); !ok || !tk.KeepsTrails() {
		e.Canvas.Clear(e.Background)
	}

	primary.AddPoint(e.Angle, f.Right, f.Left)
	for _, s := range e.Sched.Strategies() {
		if s.IsEmpty() {
			continue
		}
		s.Visualize(e.Canvas, s == primary, e.Angle)
	}

	e.frame++
	if e.Sink != nil {
		e.Sink.FrameDone(e.frame)
	}
}

// Reset clears the phase and frame counter at a scene boundary.
func (e *Engine) Reset() {
	e.Angle = 0
	e.frame = 0
}
