package gallery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fegerar/folio/internal/playback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSessionRecordsCycles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s, err := NewSession(NewRegistry(), Config{
		Widget:    "linear_regression",
		Speed:     playback.Double,
		Cycles:    2,
		Scheduler: playback.ScaledScheduler{Factor: 1000},
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec, err := s.Run(ctx)
	require.NoError(t, err)
	require.Len(t, rec.Frames, 11)

	for i, f := range rec.Frames {
		assert.Equal(t, i%5, f.Step, "frame %d", i)
		assert.True(t, f.HasMetric)
		assert.Equal(t, "loss", f.Metric.Name)
	}
	assert.Equal(t, 0.0, rec.Frames[4].Metric.Value)
}

func TestSessionCanceled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s, err := NewSession(NewRegistry(), Config{Widget: "mlp", Cycles: 100}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, rec.Frames, 1)
}

func TestSessionRejectsStaticWidget(t *testing.T) {
	_, err := NewSession(NewRegistry(), Config{Widget: "decision_tree"}, nil)
	assert.True(t, errors.Is(err, ErrNotAnimated))

	_, err = NewSession(NewRegistry(), Config{Widget: "mlp", Speed: 3}, nil)
	assert.ErrorIs(t, err, playback.ErrUnknownSpeed)
}
