package viz

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	"github.com/hajimehoshi/oto/v2"
)

// AudioSystem owns the oto playback context and the currently playing
// track. Decoded samples pass through a tap that feeds the Analyzer on
// their way to the speaker, so the spectra stay in sync with what is
// audible.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}

	player  oto.Player
	stream  beep.StreamSeekCloser
	done    atomic.Bool
	playing atomic.Bool
}

func InitAudio() (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &AudioSystem{ctx: ctx, ready: ready}, nil
}

// decode opens the file with the decoder matching its extension.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open audio: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	}
	f.Close()
	return nil, beep.Format{}, fmt.Errorf("unsupported audio format: %s", path)
}

// Play starts the scene's track, tapping every sample into the analyzer.
// It stops whatever was playing before.
func (a *AudioSystem) Play(path string, an *Analyzer) error {
	a.Stop()

	stream, format, err := decode(path)
	if err != nil {
		return err
	}
	var src beep.Streamer = stream
	if format.SampleRate != beep.SampleRate(SampleRate) {
		src = beep.Resample(4, format.SampleRate, beep.SampleRate(SampleRate), stream)
	}

	a.stream = stream
	a.done.Store(false)
	a.playing.Store(true)

	tap := &tapReader{src: src, an: an, sys: a}
	player := a.ctx.NewPlayer(tap)

	go func() {
		<-a.ready
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
		a.playing.Store(false)
	}()

	a.player = player
	return nil
}

// Done reports whether the current track has drained.
func (a *AudioSystem) Done() bool {
	return a.done.Load() && !a.playing.Load()
}

func (a *AudioSystem) Stop() {
	if a.player != nil {
		a.player.Close()
		a.player = nil
	}
	if a.stream != nil {
		a.stream.Close()
		a.stream = nil
	}
	a.playing.Store(false)
}

// tapReader pulls from the beep streamer, mirrors the samples into the
// analyzer, and hands oto interleaved float32 LE frames.
type tapReader struct {
	src beep.Streamer
	an  *Analyzer
	sys *AudioSystem
	buf [][2]float64
}

func (t *tapReader) Read(p []byte) (int, error) {
	frames := len(p) / (4 * ChannelCount)
	if frames == 0 {
		return 0, nil
	}
	if cap(t.buf) < frames {
		t.buf = make([][2]float64, frames)
	}
	buf := t.buf[:frames]

	n, ok := t.src.Stream(buf)
	if n > 0 {
		t.an.Push(buf[:n])
		for i := 0; i < n; i++ {
			l := float32(clampF(buf[i][0], -1, 1))
			r := float32(clampF(buf[i][1], -1, 1))
			off := i * 8
			binary.LittleEndian.PutUint32(p[off:], math.Float32bits(l))
			binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(r))
		}
	}
	if !ok {
		t.sys.done.Store(true)
		if n == 0 {
			return 0, io.EOF
		}
	}
	return n * 8, nil
}
