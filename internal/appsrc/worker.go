// Package appsrc implements appsrc_push (spec §4.7): the bridge between
// a pipeline's async StampedFrame producer and the blocking GStreamer
// appsrc element it ultimately feeds. A dedicated worker goroutine drains
// a bounded handoff queue so the media-framework's own locking never
// blocks the pipeline's producer goroutines, and a per-size buffer pool
// (internal/bufpool) amortizes allocation across frames.
package appsrc

import (
	"context"
	"time"

	"github.com/kevin-david/neolink/internal/bufpool"
	"github.com/kevin-david/neolink/internal/streamerr"
	"github.com/kevin-david/neolink/internal/types"
	"github.com/rs/zerolog/log"
)

// QueueDepth is the bounded handoff queue's capacity between the async
// producer and the blocking worker.
const QueueDepth = 2000

// Hysteresis thresholds for the worker's play/pause signaling: resume at
// two-thirds full, pause at one-third full, keeping roughly half the
// queue as jitter headroom.
const (
	highWaterFrac = 2.0 / 3.0
	lowWaterFrac  = 1.0 / 3.0
)

// PushResult classifies the outcome of a single PushBuffer call.
type PushResult int

const (
	PushOK PushResult = iota
	PushFlushing
	PushError
)

// AppSource is the subset of a GStreamer appsrc element appsrc_push
// drives. The cgo-backed implementation wraps *app.Source; the !cgo twin
// always reports unlinked so callers degrade cleanly without GStreamer.
type AppSource interface {
	// PushBuffer copies data into a pooled buffer already stamped with
	// pts (and dts, which always equals pts here), and pushes it
	// downstream.
	PushBuffer(data []byte, pts time.Duration) PushResult
	// EndStream signals end-of-stream so the downstream pipeline shuts
	// cleanly.
	EndStream()
	// Linked reports whether the element is still attached to a live,
	// non-flushed pipeline.
	Linked() bool
	// SetPlaying is called only on a hysteresis threshold crossing.
	SetPlaying(playing bool)
	// CurrentLevelBytes reports the appsrc element's own internal buffer
	// fill level, in bytes.
	CurrentLevelBytes() uint64
	// MaxBytes reports the appsrc element's configured buffer ceiling, in
	// bytes. A value of 0 disables level-based hysteresis.
	MaxBytes() uint64
}

// infiniteTS stands in for the design's ts_base = +Inf initial value.
const infiniteTS = time.Duration(1<<63 - 1)

// Worker is the blocking worker thread described in §4.7. Callers send
// frames into In (a bounded channel of depth QueueDepth) from async
// producer goroutines; Run drains it on a dedicated goroutine.
type Worker struct {
	In     chan types.StampedFrame
	src    AppSource
	pool   *bufpool.Pool
	camera string
}

// NewWorker returns a Worker ready to drive src. camera is used only for
// log context.
func NewWorker(src AppSource, camera string) *Worker {
	return &Worker{
		In:     make(chan types.StampedFrame, QueueDepth),
		src:    src,
		pool:   bufpool.New(),
		camera: camera,
	}
}

// Run drains In until ctx is cancelled, the channel closes, or a
// downstream-fatal error occurs. It always calls EndStream before
// returning, satisfying §4.8's "always signal end_of_stream" rule.
func (w *Worker) Run(ctx context.Context) error {
	defer w.src.EndStream()

	waitForIFrame := true
	tsBase := infiniteTS
	playing := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case f, ok := <-w.In:
			if !ok {
				return nil
			}

			if !w.src.Linked() {
				return nil
			}

			if waitForIFrame {
				if !f.Keyframe {
					continue
				}
				waitForIFrame = false
			}

			if f.TS < tsBase {
				tsBase = f.TS
			}
			pts := f.TS - tsBase

			buf := w.pool.Get(len(f.Payload))
			copy(buf, f.Payload)

			result := w.src.PushBuffer(buf, pts)
			w.pool.Put(buf)

			switch result {
			case PushOK:
				// continue
			case PushFlushing:
				waitForIFrame = true
				log.Warn().Str("camera", w.camera).Msg("appsrc flushing, dropping frame and re-arming keyframe gate")
				continue
			case PushError:
				return streamerr.NewFatal("appsrc_push", errAppsrcPush)
			}

			if max := w.src.MaxBytes(); max > 0 {
				fill := float64(w.src.CurrentLevelBytes()) / float64(max)
				switch {
				case !playing && fill >= highWaterFrac:
					playing = true
					w.src.SetPlaying(true)
				case playing && fill <= lowWaterFrac:
					playing = false
					w.src.SetPlaying(false)
				}
			}
		}
	}
}

var errAppsrcPush = pushBufferError{}

type pushBufferError struct{}

func (pushBufferError) Error() string { return "appsrc push_buffer returned a hard error" }
