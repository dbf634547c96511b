package viz

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunOptions configures a desktop run.
type RunOptions struct {
	Playlist  string
	RecordDir string // empty = no recording
	Loop      bool   // restart the playlist after the last scene
}

// newStrategies builds the full strategy set in registration order, each
// with its own hue basis so the palettes stay distinguishable.
func newStrategies(bands int, clock *Clock, beats BeatSource, rng *Rand) []SchedulerEntry {
	mk := func(s VisualStrategy) SchedulerEntry {
		return SchedulerEntry{Name: s.Name(), Strategy: s}
	}
	return []SchedulerEntry{
		mk(NewSphere(bands)),
		mk(NewCurve(bands, 300, 1)),
		mk(NewLineTunnel(bands, 200)),
		mk(NewHexagon(bands, 100, beats)),
		mk(NewSpinningHexagon(bands, 40, clock)),
		mk(NewLevelBezier(bands, 260, clock)),
		mk(NewRingSwaying(bands, 160, rng)),
	}
}

// RunDesktop opens the window and plays the playlist until the last scene
// ends or the window is closed.
func RunDesktop(opts RunOptions) error {
	runtime.LockOSThread()

	pl, err := LoadPlaylist(opts.Playlist)
	if err != nil {
		return err
	}

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	audio, err := InitAudio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing silent): %v\n", err)
		audio = nil
	}

	analyzer, err := NewAnalyzer(pl.Bands)
	if err != nil {
		return err
	}
	beats := &BeatDetector{}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("BEATVIZ_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}
	rng := NewRand(seed)

	clock := NewClock(pl.FPS)
	sched := NewScheduler(newStrategies(pl.Bands, clock, beats, rng)...)
	sched.Filter(pl.Strategies)
	if sched.Len() == 0 {
		return fmt.Errorf("strategy allow-list %v matches nothing", pl.Strategies)
	}

	fbW, fbH := window.GetFramebufferSize()
	rend, err := NewRenderer(fbW, fbH)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	engine := NewEngine(sched, clock, rend)

	var recorder *PNGRecorder
	if opts.RecordDir != "" {
		recorder, err = NewPNGRecorder(opts.RecordDir, fbW, fbH)
		if err != nil {
			return err
		}
		engine.Sink = recorder
	}

	sceneIdx := -1
	var scene Scene
	startScene := func(i int) error {
		scene = pl.Scenes[i]
		sceneIdx = i
		engine.Reset()
		engine.Background, _ = ParseHex(scene.Background)
		if scene.Strategy != "" {
			sched.Promote(scene.Strategy) // unknown name: keep current primary
		}
		if audio != nil {
			if err := audio.Play(scene.File, analyzer); err != nil {
				return fmt.Errorf("scene %d: %w", i+1, err)
			}
		}
		fmt.Fprintf(os.Stderr, "scene %d/%d: %s (tempo %.0f, primary %s)\n",
			i+1, len(pl.Scenes), scene.File, scene.Tempo, sched.Names()[sched.Len()-1])
		return nil
	}
	if err := startScene(0); err != nil {
		return err
	}

	input := NewInput()
	frameDur := time.Duration(float64(time.Second) / clock.FPS)
	next := time.Now()

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		if w, h := window.GetFramebufferSize(); w > 0 && h > 0 && (w != fbW || h != fbH) {
			fbW, fbH = w, h
			rend.Resize(fbW, fbH)
			if recorder != nil {
				recorder.Resize(fbW, fbH)
			}
		}

		// Runtime reordering: Space rotates the first strategy to primary,
		// digits promote the k-th entry directly.
		if input.JustPressed(window, glfw.KeySpace) {
			sched.CycleFirst()
		}
		for k := 0; k < sched.Len() && k < 9; k++ {
			if input.JustPressed(window, glfw.Key1+glfw.Key(k)) {
				sched.Cycle(k)
			}
		}

		nextScene := input.JustPressed(window, glfw.KeyN)
		if audio != nil && audio.Done() {
			nextScene = true
		}
		if nextScene {
			i := sceneIdx + 1
			if i >= len(pl.Scenes) {
				if !opts.Loop {
					window.SetShouldClose(true)
					continue
				}
				i = 0
			}
			if err := startScene(i); err != nil {
				return err
			}
		}

		if now := time.Now(); now.Before(next) {
			time.Sleep(next.Sub(now))
		}
		next = time.Now().Add(frameDur)

		frame := analyzer.Frame(scene.Tempo)
		beats.Update(frame)
		engine.Tick(frame)

		window.SwapBuffers()
	}

	if audio != nil {
		audio.Stop()
	}
	return nil
}
