package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"time"
)

// ErrNoFrames is returned when encoding an empty recording.
var ErrNoFrames = errors.New("raster: no frames recorded")

// Recorder accumulates paletted frames for a GIF.
type Recorder struct {
	palette color.Palette
	delay   int
	frames  []*image.Paletted
}

// NewRecorder quantizes frames to palette and plays them back at the
// given frame interval.
func NewRecorder(palette color.Palette, interval time.Duration) *Recorder {
	delay := int(interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}
	return &Recorder{palette: palette, delay: delay}
}

// Capture copies the current contents of m as a new frame.
func (r *Recorder) Capture(m *Image) {
	src := m.Image()
	frame := image.NewPaletted(src.Bounds(), r.palette)
	draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Src)
	r.frames = append(r.frames, frame)
}

// Len returns the number of captured frames.
func (r *Recorder) Len() int { return len(r.frames) }

// Encode writes the frames as a looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range r.frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}
