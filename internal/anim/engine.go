package anim

import (
	"context"
	"image/color"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/tslab/internal/palette"
)

// DefaultParticles is the size of every particle set.
const DefaultParticles = 10

// Style holds the drawing constants. Lengths are in surface pixels.
type Style struct {
	Radius                float64
	PairOffset            float64
	MinSeparation         float64
	MaxSeparation         float64
	BondThreshold         float64
	LabelThreshold        float64
	AssociativeBondWidth  float64
	DissociativeBondWidth float64
	Label                 string
	AssociativeColor      color.Color
	DissociativeColor     color.Color
	LabelColor            color.Color
	TitleX, TitleY        float64
}

func DefaultStyle() Style {
	return Style{
		Radius:                8,
		PairOffset:            10,
		MinSeparation:         10,
		MaxSeparation:         40,
		BondThreshold:         0.8,
		LabelThreshold:        0.95,
		AssociativeBondWidth:  2,
		DissociativeBondWidth: 3,
		Label:                 "TS",
		AssociativeColor:      palette.RGBA(palette.LightBlue),
		DissociativeColor:     palette.RGBA(palette.Red),
		LabelColor:            palette.RGBA(palette.White),
		TitleX:                10,
		TitleY:                20,
	}
}

// Engine animates one particle set on one surface.
type Engine struct {
	mu        sync.Mutex
	surface   Surface
	width     float64
	height    float64
	mode      Mode
	count     int
	particles []Particle
	rng       *rand.Rand
	epoch     time.Time
	style     Style
	logger    *log.Logger
	frames    uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithParticles sets the particle count.
func WithParticles(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.count = n
		}
	}
}

// WithSeed seeds the particle generator.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses rng for particle generation.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(e *Engine) { e.mode = m }
}

// WithStyle replaces the drawing constants.
func WithStyle(st Style) Option {
	return func(e *Engine) { e.style = st }
}

// WithEpoch fixes the time origin used to compute elapsed time. Without
// it the first frame becomes the origin.
func WithEpoch(t time.Time) Option {
	return func(e *Engine) { e.epoch = t }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New builds an engine for a width×height surface and generates the
// initial particle set. A nil surface yields an inactive engine: Frame
// draws nothing and Run never ticks.
func New(surface Surface, width, height float64, opts ...Option) *Engine {
	e := &Engine{
		surface: surface,
		mode:    Associative,
		count:   DefaultParticles,
		style:   DefaultStyle(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if surface == nil {
		e.logger.Debug("no drawing surface, animation stays inactive")
	}
	e.width, e.height = width, height
	e.regenerate()
	return e
}

// Active reports whether the engine has a surface to draw on.
func (e *Engine) Active() bool {
	return e.surface != nil
}

// SetMode switches mode and replaces the whole particle set.
func (e *Engine) SetMode(m Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = m
	e.regenerate()
}

// Resize adopts new surface bounds and replaces the whole particle set.
func (e *Engine) Resize(width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.width, e.height = width, height
	e.regenerate()
}

// regenerate must be called with mu held.
func (e *Engine) regenerate() {
	e.particles = make([]Particle, 0, e.count)
	if e.width <= 0 || e.height <= 0 {
		e.logger.Debug("empty bounds, no particles", "width", e.width, "height", e.height)
		return
	}
	for i := 0; i < e.count; i++ {
		switch e.mode {
		case Associative:
			e.particles = append(e.particles, newPair(e.rng, e.width, e.height))
		case Dissociative:
			e.particles = append(e.particles, newSplitting(e.rng, e.width, e.height))
		}
	}
	e.logger.Debug("particles regenerated",
		"mode", e.mode, "count", len(e.particles), "width", e.width, "height", e.height)
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Size returns the current bounds.
func (e *Engine) Size() (width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// Frames returns how many frames have been drawn.
func (e *Engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// Style returns the drawing constants.
func (e *Engine) Style() Style {
	return e.style
}

// Particles returns a copy of the current set.
func (e *Engine) Particles() []Particle {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Particle, len(e.particles))
	for i, p := range e.particles {
		switch p := p.(type) {
		case *PairParticle:
			c := *p
			out[i] = &c
		case *SplittingParticle:
			c := *p
			out[i] = &c
		}
	}
	return out
}

// Elapsed returns seconds since the time origin.
func (e *Engine) Elapsed(now time.Time) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.elapsed(now)
}

func (e *Engine) elapsed(now time.Time) float64 {
	if e.epoch.IsZero() {
		e.epoch = now
	}
	return now.Sub(e.epoch).Seconds()
}

// Frame clears the surface and draws every particle at time now.
func (e *Engine) Frame(now time.Time) {
	if e.surface == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	elapsed := e.elapsed(now)
	e.surface.Clear()
	for _, p := range e.particles {
		p.draw(e.surface, p.Oscillation(elapsed), &e.style)
	}
	e.surface.Text(e.style.TitleX, e.style.TitleY, e.mode.Title(), e.style.LabelColor)
	e.frames++
}

// Run renders a frame on every loop tick until the handle is cancelled
// or ctx is done. Without a surface it returns an already stopped handle.
func (e *Engine) Run(ctx context.Context, loop *Loop) *Handle {
	if e.surface == nil {
		e.logger.Debug("animation not started", "err", ErrNoSurface)
		return finishedHandle()
	}
	e.logger.Debug("animation started", "mode", e.Mode(), "interval", loop.Interval())
	h := loop.Start(ctx, e.Frame)
	go func() {
		<-h.Done()
		e.logger.Debug("animation stopped", "frames", e.Frames())
	}()
	return h
}
