package viz

import (
	"math"
	"testing"
)

type recordSink struct {
	frames []int
}

func (s *recordSink) FrameDone(frame int) { s.frames = append(s.frames, frame) }

func testFrame() SpectralFrame {
	return SpectralFrame{Right: fourBands, Left: fourBands, TempoBPM: 120}
}

func TestEngineTickClearsAndDraws(t *testing.T) {
	sc := NewScheduler()
	sc.Register("sphere", NewSphere(4))
	c := newRecordCanvas()
	e := NewEngine(sc, NewClock(30), c)

	e.Tick(testFrame())

	if c.clears != 1 {
		t.Fatalf("clears = %d, want 1", c.clears)
	}
	if c.spheres == 0 {
		t.Fatal("primary drew nothing")
	}
}

func TestEngineAngleAdvance(t *testing.T) {
	sc := NewScheduler()
	sc.Register("sphere", NewSphere(4))
	e := NewEngine(sc, NewClock(30), newRecordCanvas())

	// 120 BPM at 30 fps: one revolution per 4 beats is 6 degrees a frame.
	e.Tick(testFrame())
	if math.Abs(e.Angle-6) > 1e-9 {
		t.Fatalf("angle after one frame = %v, want 6", e.Angle)
	}
	for i := 0; i < 59; i++ {
		e.Tick(testFrame())
	}
	if math.Abs(e.Angle-360) < 1e-9 || e.Angle >= 360 || e.Angle < 0 {
		t.Fatalf("angle did not wrap: %v", e.Angle)
	}
}

func TestEngineTrailKeeperSkipsClear(t *testing.T) {
	sc := NewScheduler()
	sc.Register("linetunnel", NewLineTunnel(4, 200))
	c := newRecordCanvas()
	e := NewEngine(sc, NewClock(30), c)

	e.Tick(testFrame())
	if c.clears != 0 {
		t.Fatalf("trail-keeping primary cleared the background %d times", c.clears)
	}
}

func TestEngineSinkNotified(t *testing.T) {
	sc := NewScheduler()
	sc.Register("sphere", NewSphere(4))
	sink := &recordSink{}
	e := NewEngine(sc, NewClock(30), newRecordCanvas())
	e.Sink = sink

	e.Tick(testFrame())
	e.Tick(testFrame())
	if len(sink.frames) != 2 || sink.frames[0] != 1 || sink.frames[1] != 2 {
		t.Fatalf("sink frames = %v, want [1 2]", sink.frames)
	}

	e.Reset()
	e.Tick(testFrame())
	if sink.frames[len(sink.frames)-1] != 1 {
		t.Fatalf("frame counter not reset: %v", sink.frames)
	}
}

func TestEngineEmptySchedulerNoDraw(t *testing.T) {
	c := newRecordCanvas()
	e := NewEngine(NewScheduler(), NewClock(30), c)
	e.Tick(testFrame())
	if c.clears != 0 || c.spheres != 0 {
		t.Fatal("empty scheduler still drew")
	}
}

func TestEngineSecondaryStillDraws(t *testing.T) {
	sc := NewScheduler()
	curve := NewCurve(4, 300, 1)
	sc.Register("curve", curve)
	sc.Register("sphere", NewSphere(4))
	c := newRecordCanvas()
	e := NewEngine(sc, NewClock(30), c)

	// Populate the curve while it is primary, then cycle it behind sphere.
	sc.Promote("curve")
	e.Tick(testFrame())
	e.Tick(testFrame())
	sc.Promote("sphere")

	before := c.curves
	e.Tick(testFrame())
	if c.curves <= before {
		t.Fatal("populated secondary strategy did not draw")
	}
	if c.spheres == 0 {
		t.Fatal("new primary did not draw")
	}
}
