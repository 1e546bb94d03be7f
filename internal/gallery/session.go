package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fegerar/folio/internal/models"
	"github.com/fegerar/folio/internal/playback"
)

var ErrNotAnimated = errors.New("gallery: widget is not timer driven")

type Config struct {
	Widget string
	Speed  playback.Speed
	Cycles int
	// Scheduler defaults to wall-clock intervals.
	Scheduler playback.Scheduler
}

// Frame is one observed step of a recorded playback.
type Frame struct {
	Step    int
	Elapsed time.Duration
	Params  []models.Param
	Metric  models.Param
	// HasMetric is false for widgets without a per-frame metric.
	HasMetric bool
}

type Recording struct {
	Widget string
	Speed  playback.Speed
	Cycles int
	Frames []Frame
}

// Session replays a widget headlessly and captures every frame it visits.
type Session struct {
	cfg    Config
	widget models.Widget
	log    *log.Logger
}

func NewSession(r *Registry, cfg Config, logger *log.Logger) (*Session, error) {
	w, err := r.Get(cfg.Widget)
	if err != nil {
		return nil, err
	}
	if w.Interval() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotAnimated, cfg.Widget)
	}
	if cfg.Speed == 0 {
		cfg.Speed = playback.Normal
	}
	if !cfg.Speed.Valid() {
		return nil, playback.ErrUnknownSpeed
	}
	if cfg.Cycles <= 0 {
		cfg.Cycles = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{cfg: cfg, widget: w, log: logger}, nil
}

func (s *Session) Widget() models.Widget { return s.widget }

// Run mounts a driver and blocks until Cycles full passes over the table have
// been observed or ctx is done. The initial frame is recorded as well.
func (s *Session) Run(ctx context.Context) (*Recording, error) {
	total := s.cfg.Cycles * s.widget.Frames()
	rec := &Recording{Widget: s.widget.Name(), Speed: s.cfg.Speed, Cycles: s.cfg.Cycles}
	rec.Frames = append(rec.Frames, s.frame(0, 0))

	frames := make(chan playback.State, 1)
	stop := make(chan struct{})
	start := time.Now()

	opts := []playback.Option{
		playback.WithSpeed(s.cfg.Speed),
		playback.WithLogger(s.log),
		playback.WithOnStep(func(st playback.State) {
			select {
			case frames <- st:
			case <-stop:
			case <-ctx.Done():
			}
		}),
	}
	if s.cfg.Scheduler != nil {
		opts = append(opts, playback.WithScheduler(s.cfg.Scheduler))
	}

	drv, err := playback.NewDriver(s.widget.Frames(), s.widget.Interval(), opts...)
	if err != nil {
		return nil, err
	}
	drv.Mount()
	defer func() {
		close(stop)
		drv.Unmount()
	}()

	s.log.Info("recording", "widget", rec.Widget, "speed", rec.Speed, "frames", total)
	for len(rec.Frames) <= total {
		select {
		case <-ctx.Done():
			return rec, ctx.Err()
		case st := <-frames:
			rec.Frames = append(rec.Frames, s.frame(st.Step, time.Since(start)))
		}
	}
	return rec, nil
}

func (s *Session) frame(step int, elapsed time.Duration) Frame {
	f := Frame{Step: step, Elapsed: elapsed, Params: s.widget.Params(step)}
	f.Metric, f.HasMetric = s.widget.Metric(step)
	return f
}
