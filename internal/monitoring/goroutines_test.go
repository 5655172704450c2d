package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGoroutineMonitor_TracksPeak(t *testing.T) {
	gm := NewGoroutineMonitor(time.Hour, 1, zerolog.Nop())
	before := gm.GetMetrics()
	assert.Equal(t, before.Baseline, before.Current)

	release := make(chan struct{})
	for i := 0; i < 5; i++ {
		go func() { <-release }()
	}
	gm.Check()
	close(release)

	m := gm.GetMetrics()
	assert.GreaterOrEqual(t, m.Peak, before.Baseline+5)
	assert.Equal(t, m.Current-m.Baseline, m.Growth)
}

func TestGoroutineMonitor_RunStopsWithContext(t *testing.T) {
	gm := NewGoroutineMonitor(time.Millisecond, 1000, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- gm.Run(ctx) }()
	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
