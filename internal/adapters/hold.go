package adapters

import (
	"context"
	"time"

	"github.com/kevin-david/neolink/internal/camera"
	"github.com/kevin-david/neolink/internal/types"
)

// Hold releases each audio frame immediately if the video pipeline's
// published timestamp has already reached frame.TS; otherwise it blocks
// until a SyncTap publish catches up. This is the mechanism behind the
// audio-never-leads-video invariant.
func Hold(ctx context.Context, in <-chan types.StampedFrame, tsWatch *camera.Watch[time.Duration]) <-chan types.StampedFrame {
	out := make(chan types.StampedFrame)
	go func() {
		defer close(out)
		sub := tsWatch.Subscribe()
		for {
			var f types.StampedFrame
			select {
			case <-ctx.Done():
				return
			case frame, ok := <-in:
				if !ok {
					return
				}
				f = frame
			}

			for tsWatch.Current() < f.TS {
				select {
				case <-ctx.Done():
					return
				case <-sub:
				}
			}

			select {
			case out <- f:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
