package bot

import (
	"time"

	"github.com/coder/quartz"
)

// Thinker schedules the presentation delay between a bot's decision
// and the moment it acts, so a caller can show a "thinking" pause and
// still cancel it when the round ends early.
type Thinker struct {
	clock quartz.Clock
}

// NewThinker builds a Thinker on the given clock. A nil clock uses the
// real one; tests inject a mock.
func NewThinker(clock quartz.Clock) *Thinker {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Thinker{clock: clock}
}

// After runs fn once d has elapsed and returns a cancel func. Cancel
// is idempotent and reports nothing; fn never runs after a successful
// cancel.
func (t *Thinker) After(d time.Duration, fn func()) func() {
	timer := t.clock.AfterFunc(d, fn)
	return func() { timer.Stop() }
}
