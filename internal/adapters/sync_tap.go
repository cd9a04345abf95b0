package adapters

import (
	"context"
	"time"

	"github.com/kevin-david/neolink/internal/camera"
	"github.com/kevin-david/neolink/internal/types"
)

// SyncTap passes every frame through unchanged, publishing each frame's
// timestamp to tsTx as a side effect. The video pipeline's sync_tap
// drives the audio pipeline's Hold so audio never outruns the picture
// it accompanies.
func SyncTap(ctx context.Context, in <-chan types.StampedFrame, tsTx *camera.Watch[time.Duration]) <-chan types.StampedFrame {
	out := make(chan types.StampedFrame)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case f, ok := <-in:
				if !ok {
					return
				}
				tsTx.Publish(f.TS)
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
