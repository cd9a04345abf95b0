package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/kevin-david/neolink/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacerFirstFrameNeverWaits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan types.StampedFrame, 1)
	in <- frame(10*time.Second, true)
	close(in)

	start := time.Now()
	out := Pacer(ctx, in, 33*time.Millisecond)
	got := drain(t, out, time.Second)
	elapsed := time.Since(start)

	require.Len(t, got, 1)
	assert.Less(t, elapsed, 100*time.Millisecond, "first frame must not wait despite ts_prev starting at +Inf")
}

func TestPacerCapsWaitAtExpectedRate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan types.StampedFrame, 2)
	in <- frame(0, true)
	in <- frame(10*time.Second, false) // huge jump forward
	close(in)

	expectedRate := 20 * time.Millisecond
	start := time.Now()
	out := Pacer(ctx, in, expectedRate)
	got := drain(t, out, time.Second)
	elapsed := time.Since(start)

	require.Len(t, got, 2)
	assert.Less(t, elapsed, 200*time.Millisecond, "pacer must cap the wait at expectedRate, not the full timestamp jump")
}

func TestPacerResetsOnClockRegression(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan types.StampedFrame, 3)
	in <- frame(500*time.Millisecond, true)
	in <- frame(10*time.Millisecond, false) // regression: camera clock reset
	in <- frame(15*time.Millisecond, false) // small forward step from the reset point
	close(in)

	start := time.Now()
	out := Pacer(ctx, in, time.Second)
	got := drain(t, out, time.Second)
	elapsed := time.Since(start)

	require.Len(t, got, 3)
	// The post-reset wait is computed from the reset ts (10ms), not the
	// pre-reset ts (500ms), so total elapsed stays small.
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, time.Duration(0), saturatingSub(5, 10))
	assert.Equal(t, time.Duration(5), saturatingSub(10, 5))
	assert.Equal(t, time.Duration(0), saturatingSub(5, 5))
}
