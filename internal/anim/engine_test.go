package anim

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"associative", Associative, false},
		{"Dissociative", Dissociative, false},
		{" assoc ", Associative, false},
		{"dissoc", Dissociative, false},
		{"sideways", Associative, true},
		{"", Associative, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) err = %v, want ErrUnknownMode", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeStrings(t *testing.T) {
	for _, m := range Modes {
		parsed, err := ParseMode(m.String())
		if err != nil || parsed != m {
			t.Errorf("mode %v does not round-trip: %v, %v", m, parsed, err)
		}
		if m.Title() == "" {
			t.Errorf("mode %v has no title", m)
		}
		if m.Next() == m || m.Next().Next() != m {
			t.Errorf("mode %v: Next is not a toggle", m)
		}
	}
}

func TestResizeKeepsParticlesInBounds(t *testing.T) {
	e := New(&recordingSurface{}, 800, 300, WithSeed(3))

	sizes := [][2]float64{{640, 300}, {120, 80}, {1, 1}, {1920, 300}}
	for _, mode := range Modes {
		e.SetMode(mode)
		for _, sz := range sizes {
			e.Resize(sz[0], sz[1])
			ps := e.Particles()
			if len(ps) != DefaultParticles {
				t.Fatalf("%v %v: %d particles, want %d", mode, sz, len(ps), DefaultParticles)
			}
			for _, p := range ps {
				for _, pt := range points(p) {
					if pt.X < 0 || pt.X >= sz[0] || pt.Y < 0 || pt.Y >= sz[1] {
						t.Errorf("%v %v: point %v outside bounds", mode, sz, pt)
					}
				}
			}
		}
	}
}

func TestResizeToEmptyBounds(t *testing.T) {
	s := &recordingSurface{}
	e := New(s, 800, 300, WithSeed(3))
	e.Resize(0, 300)
	if n := len(e.Particles()); n != 0 {
		t.Errorf("expected no particles for zero width, got %d", n)
	}
	e.Frame(time.Unix(0, 0))
	if s.count("circle") != 0 {
		t.Errorf("drew %d circles on empty bounds", s.count("circle"))
	}
}

func TestResizeRegeneratesPhases(t *testing.T) {
	e := New(&recordingSurface{}, 800, 300, WithSeed(11))
	before := phases(e.Particles())
	e.Resize(800, 300)
	after := phases(e.Particles())
	same := 0
	for i := range before {
		if before[i] == after[i] {
			same++
		}
	}
	if same == len(before) {
		t.Error("resize kept every phase")
	}
}

func TestPhasesStableAcrossFrames(t *testing.T) {
	e := New(&recordingSurface{}, 800, 300, WithSeed(5))
	before := phases(e.Particles())

	start := time.Unix(1000, 0)
	for i := 0; i < 50; i++ {
		e.Frame(start.Add(time.Duration(i) * DefaultInterval))
	}
	after := phases(e.Particles())
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("phase %d changed from %v to %v", i, before[i], after[i])
		}
	}
	if e.Frames() != 50 {
		t.Errorf("frames = %d, want 50", e.Frames())
	}
}

func TestPhasesDistinct(t *testing.T) {
	e := New(&recordingSurface{}, 800, 300, WithSeed(9))
	seen := make(map[float64]bool)
	for _, ph := range phases(e.Particles()) {
		if seen[ph] {
			t.Fatalf("duplicate phase %v", ph)
		}
		seen[ph] = true
		if ph < 0 || ph >= 2*math.Pi {
			t.Errorf("phase %v outside [0, 2π)", ph)
		}
	}
}

func TestSpeedsInRange(t *testing.T) {
	e := New(&recordingSurface{}, 800, 300, WithSeed(2), WithMode(Dissociative))
	for _, p := range e.Particles() {
		sp := p.(*SplittingParticle).Speed
		if sp < 0.02 || sp >= 0.04 {
			t.Errorf("speed %v outside [0.02, 0.04)", sp)
		}
	}
}

func TestFrameDrawOrder(t *testing.T) {
	s := &recordingSurface{}
	e := New(s, 600, 300, WithSeed(1), WithParticles(4))

	e.Frame(time.Unix(0, 0))
	calls := s.snapshot()
	if len(calls) == 0 || calls[0].op != "clear" {
		t.Fatalf("frame must start with clear, got %+v", calls)
	}
	if got := s.count("circle"); got != 8 {
		t.Errorf("circles = %d, want 8", got)
	}
	last := calls[len(calls)-1]
	if last.op != "text" || last.text != Associative.Title() {
		t.Errorf("last call = %+v, want mode title", last)
	}
}

func TestFrameUsesElapsedTime(t *testing.T) {
	s := &recordingSurface{}
	epoch := time.Unix(500, 0)
	e := New(s, 600, 300, WithSeed(4), WithParticles(1), WithMode(Dissociative), WithEpoch(epoch))

	now := epoch.Add(2500 * time.Millisecond)
	if got := e.Elapsed(now); math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("elapsed = %v, want 2.5", got)
	}

	st := DefaultStyle()
	p := e.Particles()[0].(*SplittingParticle)
	want := p.Geometry(p.Oscillation(2.5), &st)
	e.Frame(now)

	calls := s.snapshot()
	if calls[1].op != "circle" || math.Abs(calls[1].x0-want.A.X) > 1e-9 || math.Abs(calls[1].y0-want.A.Y) > 1e-9 {
		t.Errorf("first circle = %+v, want at %v", calls[1], want.A)
	}
}

func TestNilSurfaceInactive(t *testing.T) {
	e := New(nil, 600, 300)
	if e.Active() {
		t.Error("engine without surface reports active")
	}
	e.Frame(time.Now())
	if e.Frames() != 0 {
		t.Errorf("frames = %d, want 0", e.Frames())
	}

	clock := newFakeClock(time.Unix(0, 0))
	h := e.Run(t.Context(), NewLoop(clock, 0))
	if !h.Stopped() {
		t.Error("handle for inactive engine should already be stopped")
	}
	if len(clock.tickers) != 0 {
		t.Errorf("inactive engine created %d tickers", len(clock.tickers))
	}
}

func TestIntervalForFPS(t *testing.T) {
	if IntervalForFPS(0) != DefaultInterval {
		t.Error("zero fps should fall back to default interval")
	}
	if IntervalForFPS(50) != 20*time.Millisecond {
		t.Errorf("50 fps = %v, want 20ms", IntervalForFPS(50))
	}
}

func points(p Particle) []Point {
	switch p := p.(type) {
	case *PairParticle:
		return []Point{p.A, p.B, p.Target}
	case *SplittingParticle:
		return []Point{p.Center}
	}
	return nil
}

func phases(ps []Particle) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		switch p := p.(type) {
		case *PairParticle:
			out[i] = p.Phase
		case *SplittingParticle:
			out[i] = p.Phase
		}
	}
	return out
}
