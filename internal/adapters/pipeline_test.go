package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/kevin-david/neolink/internal/camera"
	"github.com/kevin-david/neolink/internal/nal"
	"github.com/kevin-david/neolink/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameIntervalZeroFpsDisablesPacing(t *testing.T) {
	assert.Equal(t, time.Duration(0), FrameInterval(0))
}

func TestVideoChainPreservesTSAndKeyframeOnlyPayloadGrows(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tsTx := camera.NewWatch(time.Duration(0))
	in := make(chan types.StampedFrame, 1)
	originalPayload := make([]byte, 10)
	in <- types.StampedFrame{Payload: originalPayload, TS: 5 * time.Millisecond, Keyframe: true}
	close(in)

	out := VideoChain(ctx, in, tsTx, 30, types.VideoFormatH264, true, false)
	got := drain(t, out, time.Second)

	require.Len(t, got, 1)
	assert.Equal(t, 5*time.Millisecond, got[0].TS)
	assert.True(t, got[0].Keyframe)
	assert.GreaterOrEqual(t, len(got[0].Payload), len(originalPayload))
	assert.Equal(t, 0, len(got[0].Payload)%nal.AlignTo)
}

func TestVideoChainSkipsPacerWhenSmoothingDisabled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tsTx := camera.NewWatch(time.Duration(0))
	in := make(chan types.StampedFrame, 2)
	in <- types.StampedFrame{Payload: []byte{1}, TS: 0, Keyframe: true}
	in <- types.StampedFrame{Payload: []byte{2}, TS: time.Hour}
	close(in)

	out := VideoChain(ctx, in, tsTx, 1, types.VideoFormatH264, false, false)

	// A real pacer would clamp the wait to FrameInterval(1) = 1s before
	// releasing the second frame; with smoothing disabled both frames
	// must arrive immediately.
	got := drain(t, out, 200*time.Millisecond)
	require.Len(t, got, 2)
}

func TestAudioChainWaitsForVideoSyncBeforeEmitting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tsRx := camera.NewWatch(time.Duration(0))
	in := make(chan types.StampedFrame, 1)
	in <- frame(100*time.Millisecond, true)
	close(in)

	out := AudioChain(ctx, in, tsRx, 0, true)

	select {
	case <-out:
		t.Fatal("audio must not be released before video publishes a matching timestamp")
	case <-time.After(30 * time.Millisecond):
	}

	tsRx.Publish(100 * time.Millisecond)
	got := drain(t, out, time.Second)
	require.Len(t, got, 1)
}
