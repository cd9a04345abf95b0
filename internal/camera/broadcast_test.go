package camera

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBroadcastDeliversToAllSubscribers(t *testing.T) {
	b := NewBroadcast[int]()
	ch1, unsub1 := b.Subscribe()
	ch2, unsub2 := b.Subscribe()
	defer unsub1()
	defer unsub2()

	b.Publish(5)
	assert.Equal(t, 5, <-ch1)
	assert.Equal(t, 5, <-ch2)
}

func TestBroadcastUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcast[int]()
	ch, unsub := b.Subscribe()
	unsub()

	_, ok := <-ch
	assert.False(t, ok, "channel must be closed after unsubscribe")
	assert.Equal(t, 0, b.Len())
}

func TestBroadcastNeverBlocksProducerWhenLagged(t *testing.T) {
	b := NewBroadcast[int]()
	_, unsub := b.Subscribe() // never drained
	defer unsub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastDepth*4; i++ {
			b.Publish(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a lagged subscriber")
	}
}

func TestBroadcastUnsubscribeIsIdempotent(t *testing.T) {
	b := NewBroadcast[int]()
	_, unsub := b.Subscribe()
	unsub()
	assert.NotPanics(t, unsub)
}
