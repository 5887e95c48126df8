package anim

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAnim(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Anim Suite")
}

var _ = Describe("Engine mode switching", func() {
	var (
		surface *recordingSurface
		engine  *Engine
	)

	BeforeEach(func() {
		surface = &recordingSurface{}
		engine = New(surface, 640, 300, WithSeed(42))
	})

	It("starts associative with a full set of pairs", func() {
		Expect(engine.Mode()).To(Equal(Associative))
		ps := engine.Particles()
		Expect(ps).To(HaveLen(DefaultParticles))
		for _, p := range ps {
			Expect(p).To(BeAssignableToTypeOf(&PairParticle{}))
		}
	})

	It("replaces every particle on a switch to dissociative", func() {
		engine.SetMode(Dissociative)
		ps := engine.Particles()
		Expect(ps).To(HaveLen(DefaultParticles))
		for _, p := range ps {
			Expect(p).To(BeAssignableToTypeOf(&SplittingParticle{}))
			Expect(p.Mode()).To(Equal(Dissociative))
		}
	})

	It("builds a fresh set when re-entering the same mode", func() {
		before := phases(engine.Particles())
		engine.SetMode(Associative)
		Expect(engine.Particles()).To(HaveLen(DefaultParticles))
		Expect(phases(engine.Particles())).NotTo(Equal(before))
	})

	It("honours a configured particle count across switches", func() {
		engine = New(surface, 640, 300, WithSeed(1), WithParticles(3))
		for _, m := range []Mode{Dissociative, Associative, Dissociative} {
			engine.SetMode(m)
			Expect(engine.Particles()).To(HaveLen(3))
		}
	})

	It("draws the bond-breaking frame only in dissociative mode", func() {
		engine.SetMode(Dissociative)
		engine.Frame(time.Unix(10, 0))
		calls := surface.snapshot()
		Expect(calls[len(calls)-1].text).To(Equal(Dissociative.Title()))
		Expect(surface.count("circle")).To(Equal(2 * DefaultParticles))
	})
})

var _ = Describe("Loop", func() {
	var (
		clock *fakeClock
		loop  *Loop
		ticks chan time.Time
	)

	BeforeEach(func() {
		clock = newFakeClock(time.Unix(0, 0))
		loop = NewLoop(clock, 10*time.Millisecond)
		ticks = make(chan time.Time, 16)
	})

	It("calls the task once per tick", func() {
		h := loop.Start(context.Background(), func(now time.Time) { ticks <- now })
		DeferCleanup(h.Wait)

		clock.Advance(10 * time.Millisecond)
		Eventually(ticks).Should(Receive(BeTemporally("==", time.Unix(0, 0).Add(10*time.Millisecond))))
		clock.Advance(10 * time.Millisecond)
		Eventually(h.Ticks).Should(BeEquivalentTo(2))
	})

	It("never ticks again after cancellation", func() {
		h := loop.Start(context.Background(), func(now time.Time) { ticks <- now })

		clock.Advance(10 * time.Millisecond)
		Eventually(h.Ticks).Should(BeEquivalentTo(1))

		h.Cancel()
		Eventually(h.Done()).Should(BeClosed())
		Expect(clock.tickers[0].isStopped()).To(BeTrue())

		for i := 0; i < 5; i++ {
			clock.Advance(10 * time.Millisecond)
		}
		Consistently(h.Ticks, 50*time.Millisecond).Should(BeEquivalentTo(1))
		Expect(ticks).To(HaveLen(1))
	})

	It("allows cancelling more than once and from inside a tick", func() {
		var h *Handle
		started := make(chan struct{})
		h = loop.Start(context.Background(), func(time.Time) {
			<-started
			h.Cancel()
			h.Cancel()
		})
		close(started)

		clock.Advance(10 * time.Millisecond)
		Eventually(h.Done()).Should(BeClosed())
		Expect(h.Stopped()).To(BeTrue())
		h.Cancel()
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		h := loop.Start(ctx, func(now time.Time) { ticks <- now })
		cancel()
		Eventually(h.Done()).Should(BeClosed())
		clock.Advance(10 * time.Millisecond)
		Consistently(h.Ticks, 30*time.Millisecond).Should(BeZero())
	})

	It("renders engine frames until cancelled", func() {
		surface := &recordingSurface{}
		engine := New(surface, 320, 200, WithSeed(8))
		h := engine.Run(context.Background(), loop)

		clock.Advance(10 * time.Millisecond)
		Eventually(engine.Frames).Should(BeEquivalentTo(1))
		engine.SetMode(Dissociative)
		clock.Advance(10 * time.Millisecond)
		Eventually(engine.Frames).Should(BeEquivalentTo(2))

		h.Wait()
		clock.Advance(10 * time.Millisecond)
		Consistently(engine.Frames, 30*time.Millisecond).Should(BeEquivalentTo(2))
	})
})
