package adapters

import (
	"context"
	"time"

	"github.com/kevin-david/neolink/internal/camera"
	"github.com/kevin-david/neolink/internal/types"
)

// FrameInterval converts a frame rate into the pacer's expected period.
// An fps of zero (format not yet known) disables pacing entirely.
func FrameInterval(fps uint16) time.Duration {
	if fps == 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// VideoChain wires the video pipeline's adapter sequence (spec §4.5):
// keyframe_gate → sync_tap(tsTx) → pacer(fps) → padder(format). The
// appsrc_push stage that terminates the pipeline lives in package appsrc.
// useSmoothing bypasses the pacer stage entirely when false, per spec §6's
// use_smoothing key; strict governs whether padder aborts the stream or
// drops-and-continues on malformed media, per the strict key.
func VideoChain(ctx context.Context, in <-chan types.StampedFrame, tsTx *camera.Watch[time.Duration], fps uint16, format types.VideoFormat, useSmoothing, strict bool) <-chan types.StampedFrame {
	gated := KeyframeGate(ctx, in)
	tapped := SyncTap(ctx, gated, tsTx)
	if !useSmoothing {
		return Padder(ctx, tapped, format, strict)
	}
	paced := Pacer(ctx, tapped, FrameInterval(fps))
	return Padder(ctx, paced, format, strict)
}

// AudioChain wires the audio pipeline's adapter sequence: keyframe_gate →
// hold(tsRx) → pacer(fps). tsRx is the same Watch the paired video
// pipeline's VideoChain publishes to via sync_tap. useSmoothing bypasses
// the pacer stage entirely when false.
func AudioChain(ctx context.Context, in <-chan types.StampedFrame, tsRx *camera.Watch[time.Duration], fps uint16, useSmoothing bool) <-chan types.StampedFrame {
	gated := KeyframeGate(ctx, in)
	held := Hold(ctx, gated, tsRx)
	if !useSmoothing {
		return held
	}
	return Pacer(ctx, held, FrameInterval(fps))
}
