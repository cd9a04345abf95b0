package rtsp

import (
	"context"

	"github.com/kevin-david/neolink/internal/types"
)

// forwarderDepth is the "2000-slot broadcast channel" spec §4.5 step 2
// asks for on both the vid and aud side of a freshly-connected client.
const forwarderDepth = 2000

// historyAndLiveForwarder emits every frame in a cloned FrameHistory
// snapshot first, then forwards new frames from the camera's live
// broadcast until ctx is cancelled or live closes. This is how a
// mid-stream joiner catches up without waiting for the next keyframe
// (spec S2).
func historyAndLiveForwarder(ctx context.Context, snapshot []types.StampedFrame, live <-chan types.StampedFrame) <-chan types.StampedFrame {
	out := make(chan types.StampedFrame, forwarderDepth)
	go func() {
		defer close(out)
		for _, f := range snapshot {
			select {
			case out <- f:
			case <-ctx.Done():
				return
			}
		}
		for {
			select {
			case <-ctx.Done():
				return
			case f, ok := <-live:
				if !ok {
					return
				}
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
