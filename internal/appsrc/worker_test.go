package appsrc

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kevin-david/neolink/internal/streamerr"
	"github.com/kevin-david/neolink/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu      sync.Mutex
	pushed  []pushCall
	results []PushResult
	linked  bool
	playing []bool
	ended   bool
	level   uint64
	max     uint64
}

type pushCall struct {
	data []byte
	pts  time.Duration
}

func newFakeSource() *fakeSource {
	return &fakeSource{linked: true}
}

func (f *fakeSource) PushBuffer(data []byte, pts time.Duration) PushResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushed = append(f.pushed, pushCall{data: append([]byte(nil), data...), pts: pts})
	if len(f.results) > 0 {
		r := f.results[0]
		f.results = f.results[1:]
		return r
	}
	return PushOK
}

func (f *fakeSource) EndStream() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ended = true
}

func (f *fakeSource) Linked() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.linked
}

func (f *fakeSource) SetPlaying(playing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playing = append(f.playing, playing)
}

func (f *fakeSource) CurrentLevelBytes() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.level
}

func (f *fakeSource) MaxBytes() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.max
}

func (f *fakeSource) setLevel(level, max uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.level = level
	f.max = max
}

func frame(ts time.Duration, keyframe bool) types.StampedFrame {
	return types.StampedFrame{Payload: []byte{1, 2, 3}, TS: ts, Keyframe: keyframe}
}

func TestWorkerDropsFramesUntilFirstKeyframe(t *testing.T) {
	src := newFakeSource()
	w := NewWorker(src, "cam1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	w.In <- frame(1, false)
	w.In <- frame(2, false)
	w.In <- frame(3, true)
	w.In <- frame(4, false)

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	src.mu.Lock()
	defer src.mu.Unlock()
	assert.Len(t, src.pushed, 2, "only frames from the first keyframe onward should be pushed")
}

func TestWorkerStampsPTSRelativeToFirstFrame(t *testing.T) {
	src := newFakeSource()
	w := NewWorker(src, "cam1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	w.In <- frame(100*time.Millisecond, true)
	w.In <- frame(150*time.Millisecond, false)

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	src.mu.Lock()
	defer src.mu.Unlock()
	require.Len(t, src.pushed, 2)
	assert.Equal(t, time.Duration(0), src.pushed[0].pts)
	assert.Equal(t, 50*time.Millisecond, src.pushed[1].pts)
}

func TestWorkerFlushingRearmsKeyframeGate(t *testing.T) {
	src := newFakeSource()
	src.results = []PushResult{PushFlushing}
	w := NewWorker(src, "cam1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	w.In <- frame(1, true)  // pushed, but flushed -> rearm
	w.In <- frame(2, false) // dropped, waiting for next keyframe
	w.In <- frame(3, true)  // pushed

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	src.mu.Lock()
	defer src.mu.Unlock()
	assert.Len(t, src.pushed, 2)
}

func TestWorkerAbortsOnPushError(t *testing.T) {
	src := newFakeSource()
	src.results = []PushResult{PushError}
	w := NewWorker(src, "cam1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	w.In <- frame(1, true)

	err := <-done
	require.Error(t, err)
	assert.True(t, streamerr.IsFatal(err))
}

func TestWorkerExitsCleanlyWhenUnlinked(t *testing.T) {
	src := newFakeSource()
	src.linked = false
	w := NewWorker(src, "cam1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	w.In <- frame(1, true)

	require.NoError(t, <-done)
}

func TestWorkerAlwaysSignalsEndOfStream(t *testing.T) {
	src := newFakeSource()
	w := NewWorker(src, "cam1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)

	src.mu.Lock()
	defer src.mu.Unlock()
	assert.True(t, src.ended)
}

func TestWorkerHysteresisTransitionsPlayingOnFill(t *testing.T) {
	src := newFakeSource()
	// Past the high-water mark (2/3) on the appsrc's own level/max, not
	// the handoff queue's occupancy.
	src.setLevel(70, 100)
	w := NewWorker(src, "cam1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	w.In <- frame(1, true)

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	src.mu.Lock()
	defer src.mu.Unlock()
	require.NotEmpty(t, src.playing)
	assert.True(t, src.playing[0])
}

func TestWorkerHysteresisTransitionsPausedOnDrain(t *testing.T) {
	src := newFakeSource()
	src.setLevel(70, 100)
	w := NewWorker(src, "cam1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	w.In <- frame(1, true)
	time.Sleep(20 * time.Millisecond)

	// Drain below the low-water mark (1/3) and confirm the next frame
	// flips playing back to false.
	src.setLevel(20, 100)
	w.In <- frame(2, false)

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	src.mu.Lock()
	defer src.mu.Unlock()
	require.Len(t, src.playing, 2)
	assert.True(t, src.playing[0])
	assert.False(t, src.playing[1])
}
