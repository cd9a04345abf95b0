package rtsp

import (
	"context"
	"testing"
	"time"

	"github.com/kevin-david/neolink/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(ts time.Duration, keyframe bool) types.StampedFrame {
	return types.StampedFrame{Payload: []byte{1}, TS: ts, Keyframe: keyframe}
}

func drain(t *testing.T, ch <-chan types.StampedFrame, timeout time.Duration) []types.StampedFrame {
	t.Helper()
	var out []types.StampedFrame
	deadline := time.After(timeout)
	for {
		select {
		case f, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, f)
		case <-deadline:
			return out
		}
	}
}

func TestForwarderDrainsHistoryThenLive(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshot := []types.StampedFrame{frame(900, true), frame(933, false), frame(966, false)}
	live := make(chan types.StampedFrame, 2)
	live <- frame(999, false)
	live <- frame(1032, true)
	close(live)

	out := historyAndLiveForwarder(ctx, snapshot, live)
	got := drain(t, out, time.Second)

	require.Len(t, got, 5)
	expectedTS := []time.Duration{900, 933, 966, 999, 1032}
	for i, ts := range expectedTS {
		assert.Equal(t, ts, got[i].TS)
	}
}

func TestForwarderStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	live := make(chan types.StampedFrame)

	out := historyAndLiveForwarder(ctx, nil, live)
	cancel()

	_, ok := <-out
	assert.False(t, ok)
}
