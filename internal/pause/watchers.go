package pause

import (
	"context"
	"time"

	"github.com/kevin-david/neolink/internal/types"
)

// clientWatcher mirrors the client-counter's zero-crossings onto the
// reducer's client affector: any non-zero count counts as "connected".
func clientWatcher(ctx context.Context, in <-chan uint32, set func(bool)) {
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-in:
			if !ok {
				return
			}
			set(v > 0)
		}
	}
}

// motionWatcher sets motion=true immediately on Start, and motion=false
// only after motionTimeout has elapsed since the most recent Stop
// without an intervening Start.
func motionWatcher(ctx context.Context, in <-chan types.MotionState, motionTimeout time.Duration, set func(bool)) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-in:
			if !ok {
				return
			}
			switch st.Kind {
			case types.MotionStart:
				if timer != nil {
					timer.Stop()
					timer = nil
					timerC = nil
				}
				set(true)
			case types.MotionStop:
				remaining := motionTimeout - time.Since(st.At)
				if remaining <= 0 {
					set(false)
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(remaining)
				timerC = timer.C
			}
		case <-timerC:
			timer = nil
			timerC = nil
			set(false)
		}
	}
}

// pushDebounce is the idle window after the last distinct push
// notification before the push affector drops back to false. A var
// rather than a const so tests can shrink it.
var pushDebounce = 30 * time.Second

// pushWatcher sets push=true on each newly-distinct notification and
// restarts a pushDebounce idle timer; push=false once the timer fires
// without a new distinct notification arriving first.
func pushWatcher(ctx context.Context, in <-chan *types.PushEvent, debounce time.Duration, set func(bool)) {
	var lastID string
	var seen bool
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-in:
			if !ok {
				return
			}
			if ev == nil {
				continue
			}
			if seen && ev.ID == lastID {
				continue
			}
			lastID = ev.ID
			seen = true
			set(true)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			timerC = timer.C
		case <-timerC:
			timer = nil
			timerC = nil
			set(false)
		}
	}
}
