package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/kevin-david/neolink/internal/camera"
	"github.com/kevin-david/neolink/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSyncTapPassesFramesUnchangedAndPublishesTS(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tsTx := camera.NewWatch(time.Duration(0))
	sub := tsTx.Subscribe()
	<-sub // drain initial

	in := make(chan types.StampedFrame, 1)
	in <- frame(42, true)
	close(in)

	out := SyncTap(ctx, in, tsTx)
	got := drain(t, out, time.Second)

	assert.Len(t, got, 1)
	assert.Equal(t, time.Duration(42), got[0].TS)
	assert.Equal(t, time.Duration(42), tsTx.Current())
}
