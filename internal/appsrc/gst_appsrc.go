//go:build cgo

package appsrc

import (
	"time"

	"github.com/go-gst/go-gst/gst"
	"github.com/go-gst/go-gst/gst/app"
)

// GstAppSource implements AppSource over a live *app.Source element,
// grounded on MicStreamer.PushAudio/GstPipeline.Start's GStreamer usage
// (buffer creation, FlowReturn handling, is-live/do-timestamp property
// configuration). It owns the pipeline it builds, matching MicStreamer's
// shape so the !cgo twin never has to reference a cgo-only type across
// the build tag boundary.
type GstAppSource struct {
	pipeline *gst.Pipeline
	src      *app.Source
}

// NewGstAppSource builds pipelineStr (which must contain exactly one
// appsrc element named srcName) and configures that element for
// timestamped push-mode streaming.
func NewGstAppSource(pipelineStr, srcName string) (*GstAppSource, error) {
	pipeline, err := gst.NewPipelineFromString(pipelineStr)
	if err != nil {
		return nil, err
	}
	el, err := pipeline.GetElementByName(srcName)
	if err != nil {
		return nil, err
	}
	src := app.SrcFromElement(el)
	src.SetProperty("format", gst.FormatTime)
	src.SetProperty("is-live", true)
	src.SetProperty("do-timestamp", false)

	return &GstAppSource{pipeline: pipeline, src: src}, nil
}

// PushBuffer stamps data with pts/dts (equal, per spec §4.7) and pushes
// it to the appsrc element.
func (g *GstAppSource) PushBuffer(data []byte, pts time.Duration) PushResult {
	buf := gst.NewBufferFromBytes(data)
	buf.SetPresentationTimestamp(gst.ClockTime(pts))
	buf.SetDecodingTimestamp(gst.ClockTime(pts))

	switch g.src.PushBuffer(buf) {
	case gst.FlowOK:
		return PushOK
	case gst.FlowFlushing:
		return PushFlushing
	default:
		return PushError
	}
}

// EndStream signals end-of-stream on the appsrc element.
func (g *GstAppSource) EndStream() {
	g.src.EndStream()
}

// Linked reports whether the appsrc element's source pad is still
// attached to a live peer.
func (g *GstAppSource) Linked() bool {
	pad := g.src.Element.GetStaticPad("src")
	return pad != nil && pad.IsLinked()
}

// SetPlaying transitions the whole pipeline between Playing and Paused
// in response to a hysteresis threshold crossing.
func (g *GstAppSource) SetPlaying(playing bool) {
	if playing {
		g.pipeline.SetState(gst.StatePlaying)
		return
	}
	g.pipeline.SetState(gst.StatePaused)
}

// CurrentLevelBytes reads the appsrc element's current-level-bytes
// property, the actual internal queue occupancy the hysteresis in
// appsrc_push (spec §4.7) is meant to track.
func (g *GstAppSource) CurrentLevelBytes() uint64 {
	v, err := g.src.GetProperty("current-level-bytes")
	if err != nil {
		return 0
	}
	n, _ := v.(uint64)
	return n
}

// MaxBytes reads the appsrc element's configured max-bytes property.
func (g *GstAppSource) MaxBytes() uint64 {
	v, err := g.src.GetProperty("max-bytes")
	if err != nil {
		return 0
	}
	n, _ := v.(uint64)
	return n
}
