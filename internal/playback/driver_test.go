package playback

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type manualTimer struct {
	every   time.Duration
	fn      func()
	stopped bool
}

func (t *manualTimer) Cancel() { t.stopped = true }
func (t *manualTimer) Stop()   { t.Cancel() }

type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (s *manualScheduler) Every(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{every: d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) live() []*manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*manualTimer
	for _, t := range s.timers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

func (s *manualScheduler) fire(n int) {
	for i := 0; i < n; i++ {
		for _, t := range s.live() {
			t.fn()
		}
	}
}

var _ = Describe("Driver", func() {
	var (
		sched *manualScheduler
		drv   *Driver
		steps []int
	)

	BeforeEach(func() {
		sched = &manualScheduler{}
		steps = nil
		var err error
		drv, err = NewDriver(5, 2*time.Second,
			WithScheduler(sched),
			WithOnStep(func(s State) { steps = append(steps, s.Step) }),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("does not tick before it is mounted", func() {
		Expect(sched.live()).To(BeEmpty())
	})

	It("arms one timer at the base interval on mount", func() {
		drv.Mount()
		Expect(sched.live()).To(HaveLen(1))
		Expect(sched.live()[0].every).To(Equal(2 * time.Second))
	})

	It("steps N mod len after N firings", func() {
		drv.Mount()
		for n := 1; n <= 13; n++ {
			sched.fire(1)
			Expect(drv.State().Step).To(Equal(n % 5))
		}
		Expect(steps).To(HaveLen(13))
	})

	It("stops advancing while paused and resumes afterwards", func() {
		drv.Mount()
		sched.fire(2)
		drv.Toggle()
		Expect(sched.live()).To(BeEmpty())

		before := drv.State().Step
		for _, t := range sched.timers {
			t.fn()
		}
		Expect(drv.State().Step).To(Equal(before))

		drv.SetPlaying(true)
		Expect(sched.live()).To(HaveLen(1))
		sched.fire(1)
		Expect(drv.State().Step).To(Equal(before + 1))
	})

	It("replaces the timer when the speed changes", func() {
		drv.Mount()
		Expect(drv.SetSpeed(Double)).To(Succeed())

		live := sched.live()
		Expect(live).To(HaveLen(1))
		Expect(live[0].every).To(Equal(time.Second))
		Expect(sched.timers).To(HaveLen(2))
		Expect(sched.timers[0].stopped).To(BeTrue())
	})

	It("ignores ticks from a disposed timer", func() {
		drv.Mount()
		stale := sched.live()[0]
		Expect(drv.SetSpeed(Half)).To(Succeed())

		stale.fn()
		Expect(drv.State().Step).To(Equal(0))
	})

	It("rejects speeds outside the fixed set", func() {
		Expect(drv.SetSpeed(Speed(3))).To(MatchError(ErrUnknownSpeed))
	})

	It("cancels the timer on unmount", func() {
		drv.Mount()
		drv.Unmount()
		Expect(sched.live()).To(BeEmpty())
		sched.fire(3)
		Expect(drv.State().Step).To(Equal(0))
	})

	It("keeps a single live timer across repeated reconfiguration", func() {
		drv.Mount()
		for _, s := range Speeds {
			Expect(drv.SetSpeed(s)).To(Succeed())
			drv.Toggle()
			drv.Toggle()
			Expect(sched.live()).To(HaveLen(1))
		}
	})

	Context("with a wall-clock timer", func() {
		var self *Driver

		AfterEach(func() {
			self.Unmount()
		})

		It("can be paused from its own step callback", func() {
			paused := make(chan struct{})
			var err error
			self, err = NewDriver(5, 10*time.Millisecond, WithOnStep(func(s State) {
				if s.Step == 2 {
					self.SetPlaying(false)
					close(paused)
				}
			}))
			Expect(err).NotTo(HaveOccurred())

			self.Mount()
			Eventually(paused, 2*time.Second).Should(BeClosed())
			Consistently(func() int { return self.State().Step }, 50*time.Millisecond).Should(Equal(2))
			Expect(self.State().Playing).To(BeFalse())
		})

		It("can change speed and unmount from its own step callback", func() {
			done := make(chan struct{})
			var err error
			self, err = NewDriver(5, 10*time.Millisecond, WithOnStep(func(s State) {
				switch s.Step {
				case 1:
					_ = self.SetSpeed(Double)
				case 3:
					self.Unmount()
					close(done)
				}
			}))
			Expect(err).NotTo(HaveOccurred())

			self.Mount()
			Eventually(done, 2*time.Second).Should(BeClosed())
			Consistently(func() int { return self.State().Step }, 50*time.Millisecond).Should(Equal(3))
			Expect(self.State().Speed).To(Equal(Double))
		})
	})
})
