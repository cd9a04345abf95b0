//go:build !cgo

package appsrc

import (
	"errors"
	"time"
)

// ErrCGORequired is returned when GStreamer functions are called without
// CGO support, matching gst_pipeline_nocgo.go's sentinel.
var ErrCGORequired = errors.New("GStreamer support requires CGO")

// GstAppSource is a stub when CGO is disabled.
type GstAppSource struct{}

// NewGstAppSource returns an error when CGO is disabled.
func NewGstAppSource(pipelineStr, srcName string) (*GstAppSource, error) {
	return nil, ErrCGORequired
}

// PushBuffer always reports PushError when CGO is disabled.
func (g *GstAppSource) PushBuffer(data []byte, pts time.Duration) PushResult {
	return PushError
}

// EndStream is a no-op when CGO is disabled.
func (g *GstAppSource) EndStream() {}

// Linked always reports false when CGO is disabled.
func (g *GstAppSource) Linked() bool { return false }

// SetPlaying is a no-op when CGO is disabled.
func (g *GstAppSource) SetPlaying(playing bool) {}

// CurrentLevelBytes always reports 0 when CGO is disabled.
func (g *GstAppSource) CurrentLevelBytes() uint64 { return 0 }

// MaxBytes always reports 0 when CGO is disabled, disabling level-based
// hysteresis rather than reporting a false crossing.
func (g *GstAppSource) MaxBytes() uint64 { return 0 }
