package adapters

import (
	"context"
	"time"

	"github.com/kevin-david/neolink/internal/types"
)

// Pacer sleeps between frames to match real time, bounded by
// expectedRate so a timestamp jump never produces an over-long wait.
//
// ts_prev starts at "infinity" so the first frame never waits. The wait
// is a saturating subtraction: if a frame's timestamp regresses (e.g. a
// camera clock reset), ts_prev drops to the new, smaller value and the
// next wait computes from there. This matches the upstream behavior
// exactly, including the fact that a single stray low-timestamp frame
// resets pacing — preserved intentionally rather than "fixed".
func Pacer(ctx context.Context, in <-chan types.StampedFrame, expectedRate time.Duration) <-chan types.StampedFrame {
	out := make(chan types.StampedFrame)
	go func() {
		defer close(out)
		tsPrev := time.Duration(1<<63 - 1) // max time.Duration, acts as +Inf
		for {
			select {
			case <-ctx.Done():
				return
			case f, ok := <-in:
				if !ok {
					return
				}

				wait := saturatingSub(f.TS, tsPrev)
				if wait > expectedRate {
					wait = expectedRate
				}
				if wait > 0 {
					t := time.NewTimer(wait)
					select {
					case <-t.C:
					case <-ctx.Done():
						t.Stop()
						return
					}
				}
				tsPrev = f.TS

				select {
				case out <- f:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// saturatingSub returns a-b, clamped to zero instead of going negative.
func saturatingSub(a, b time.Duration) time.Duration {
	if a <= b {
		return 0
	}
	return a - b
}
