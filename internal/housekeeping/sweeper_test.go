package housekeeping

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls     atomic.Int32
	retention atomic.Int64
}

func (c *countingSweeper) Sweep(_ time.Time, retention time.Duration) int {
	c.retention.Store(int64(retention))
	c.calls.Add(1)
	return 1
}

func TestRun_SweepsUntilCancelled(t *testing.T) {
	s := &countingSweeper{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Run(ctx, s, 5*time.Millisecond, time.Hour)
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(time.Hour), s.retention.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
