package viz

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// PNGRecorder is a FrameSink that reads back the framebuffer after each
// visualize pass and writes numbered PNGs, for assembling into video
// offline. Errors are reported once and recording stops.
type PNGRecorder struct {
	Dir      string
	fbW, fbH int

	pixels []uint8
	failed bool
}

func NewPNGRecorder(dir string, fbW, fbH int) (*PNGRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("recorder dir: %w", err)
	}
	return &PNGRecorder{Dir: dir, fbW: fbW, fbH: fbH}, nil
}

func (r *PNGRecorder) Resize(fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
}

func (r *PNGRecorder) FrameDone(frame int) {
	if r.failed {
		return
	}
	n := r.fbW * r.fbH * 4
	if cap(r.pixels) < n {
		r.pixels = make([]uint8, n)
	}
	pix := r.pixels[:n]
	gl.ReadPixels(0, 0, int32(r.fbW), int32(r.fbH), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pix[0]))

	// GL rows are bottom-up; flip into the image.
	img := image.NewRGBA(image.Rect(0, 0, r.fbW, r.fbH))
	rowLen := r.fbW * 4
	for y := 0; y < r.fbH; y++ {
		src := pix[(r.fbH-1-y)*rowLen : (r.fbH-y)*rowLen]
		copy(img.Pix[y*rowLen:], src)
	}
	for i := 3; i < n; i += 4 {
		img.Pix[i] = 255
	}

	path := filepath.Join(r.Dir, fmt.Sprintf("frame-%06d.png", frame))
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recorder: %v (recording stopped)\n", err)
		r.failed = true
		return
	}
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "recorder: %v (recording stopped)\n", err)
		r.failed = true
	}
	f.Close()
}
