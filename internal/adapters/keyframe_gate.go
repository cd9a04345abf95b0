// Package adapters implements the pure stream-to-stream transformers the
// video and audio pipelines are built from (spec §4.6): each adapter
// consumes one channel of StampedFrame and produces another, following
// the channel-generator shape a GStreamer appsink's new-sample callback
// naturally takes: a cancellable goroutine pumping one channel into
// another.
package adapters

import (
	"context"

	"github.com/kevin-david/neolink/internal/types"
)

// KeyframeGate drops every frame until the first keyframe arrives, then
// passes everything through unchanged. Clients must start decoding at an
// IDR/IRAP, so nothing may reach a pipeline before one.
func KeyframeGate(ctx context.Context, in <-chan types.StampedFrame) <-chan types.StampedFrame {
	out := make(chan types.StampedFrame)
	go func() {
		defer close(out)
		seenKeyframe := false
		for {
			select {
			case <-ctx.Done():
				return
			case f, ok := <-in:
				if !ok {
					return
				}
				if !seenKeyframe {
					if !f.Keyframe {
						continue
					}
					seenKeyframe = true
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
