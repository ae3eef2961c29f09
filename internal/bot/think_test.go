package bot

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
)

func TestThinkerFires(t *testing.T) {
	mockClock := quartz.NewMock(t)
	thinker := NewThinker(mockClock)

	fired := make(chan struct{})
	thinker.After(time.Second, func() { close(fired) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	mockClock.Advance(time.Second).MustWait(ctx)

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer callback never fired")
	}
}

func TestThinkerCancel(t *testing.T) {
	mockClock := quartz.NewMock(t)
	thinker := NewThinker(mockClock)

	fired := make(chan struct{})
	stop := thinker.After(time.Second, func() { close(fired) })
	stop()
	stop() // cancel is idempotent

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	mockClock.Advance(2 * time.Second).MustWait(ctx)

	select {
	case <-fired:
		t.Fatal("callback fired after cancel")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNewThinkerDefaultsToRealClock(t *testing.T) {
	if NewThinker(nil) == nil {
		t.Fatal("expected a thinker")
	}
}
