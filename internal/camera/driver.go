// Package camera defines the external contract the streaming core
// consumes from a concrete camera/NVR integration (spec §4.1), plus the
// generic watch/broadcast primitives its methods return and a
// retry-go-backed helper for activating flaky drivers.
package camera

import (
	"context"

	"github.com/kevin-david/neolink/internal/types"
	"github.com/kevin-david/neolink/internal/usecounter"
)

// Driver is the contract a concrete camera integration implements. The
// core never talks to a camera's own protocol directly — everything
// flows through these eight operations.
type Driver interface {
	// Config returns the latest-value, cancellable stream configuration
	// feed. Closes when the driver shuts down.
	Config() <-chan types.StreamConfig

	// Subscribe returns a new Permit, starting Inactive, whose activation
	// count drives the driver's own on-the-wire activation. Multiple
	// subscribers may hold permits concurrently; the driver is active
	// exactly while the aggregate count is above zero.
	Subscribe() *usecounter.Permit

	// VideoSubscribe and AudioSubscribe return lossy multi-consumer
	// channels: a lagged consumer skips frames rather than blocking the
	// producer. Call Unsubscribe when done to release the channel.
	VideoSubscribe() (<-chan types.StampedFrame, func())
	AudioSubscribe() (<-chan types.StampedFrame, func())

	// VidHistory and AudHistory return a read-only snapshot of the
	// driver's retained ring.
	VidHistory() []types.StampedFrame
	AudHistory() []types.StampedFrame

	// Motion is the latest-value motion-state feed.
	Motion() <-chan types.MotionState

	// PushNotifications is the latest-value push-event feed. A nil value
	// on the channel represents the Option<PushEvent> None case.
	PushNotifications() <-chan *types.PushEvent
}

// ActivationError wraps the error Activate's activation check last
// returned so callers can distinguish a camera that never came up from
// one that connected and then failed.
type ActivationError struct {
	Camera string
	Err    error
}

func (e *ActivationError) Error() string {
	return "camera " + e.Camera + ": activation failed: " + e.Err.Error()
}

func (e *ActivationError) Unwrap() error { return e.Err }

// WaitConfig blocks until the driver produces at least one StreamConfig
// or ctx is done, returning the config and true, or the zero value and
// false on cancellation/channel close.
func WaitConfig(ctx context.Context, d Driver) (types.StreamConfig, bool) {
	select {
	case cfg, ok := <-d.Config():
		return cfg, ok
	case <-ctx.Done():
		return types.StreamConfig{}, false
	}
}
