// Package history implements FrameHistory: the pair of ring buffers that
// let a newly-connected RTSP client catch up instantly instead of waiting
// for the next keyframe. The video ring is trimmed from the head whenever
// a new keyframe arrives so the oldest retained frame is always a
// keyframe; the audio ring is trimmed by wall-clock age to match the
// video span.
//
// Grounded on the client-catch-up GOP buffer in shared_video_source.go
// (gopBuffer []VideoFrame, trimmed on each new keyframe), generalized
// here into two independently-managed rings with a configurable depth
// instead of a single ungated slice.
package history

import (
	"sync"

	"github.com/kevin-david/neolink/internal/types"
)

// DefaultSize and the valid range come from spec §6's buffer_size key.
const (
	DefaultSize = 100
	MinSize     = 10
	MaxSize     = 500
)

// ClampSize constrains a configured buffer_size to the valid range.
func ClampSize(n int) int {
	if n < MinSize {
		return MinSize
	}
	if n > MaxSize {
		return MaxSize
	}
	return n
}

// History holds the bounded video and audio frame rings for one camera
// stream. All mutation happens from the camera's ingest goroutines;
// readers take an atomic snapshot via Snapshot.
type History struct {
	mu    sync.RWMutex
	size  int
	video []types.StampedFrame
	audio []types.StampedFrame
}

// New returns an empty History bounded to size frames per track (after
// clamping to [MinSize, MaxSize]). The video ring is never cut past its
// oldest keyframe, so it holds more than size frames while more than size
// frames have arrived since the latest keyframe.
func New(size int) *History {
	return &History{size: ClampSize(size)}
}

// PushVideo appends a video frame. Whenever the new frame is a keyframe,
// the ring is trimmed from the head so the oldest retained frame is
// always a keyframe — the invariant mid-stream joiners depend on.
func (h *History) PushVideo(f types.StampedFrame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.video = append(h.video, f)
	if f.Keyframe {
		// The just-pushed frame starts a fresh keyframe-aligned run;
		// everything retained before it is no longer a valid join point.
		h.video = h.video[len(h.video)-1:]
	}
	if len(h.video) > h.size {
		// Trim from the head but never past the oldest keyframe boundary:
		// find the newest keyframe within the overflow and cut there.
		overflow := len(h.video) - h.size
		cut := overflow
		for i := overflow; i >= 0; i-- {
			if i < len(h.video) && h.video[i].Keyframe {
				cut = i
				break
			}
		}
		h.video = h.video[cut:]
	}
}

// PushAudio appends an audio frame and trims the ring by wall-clock span
// so it never extends further back than the video ring's own oldest
// timestamp.
func (h *History) PushAudio(f types.StampedFrame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.audio = append(h.audio, f)

	var floor = f.TS
	if len(h.video) > 0 {
		floor = h.video[0].TS
	}
	cut := 0
	for cut < len(h.audio) && h.audio[cut].TS < floor {
		cut++
	}
	h.audio = h.audio[cut:]

	if len(h.audio) > h.size {
		h.audio = h.audio[len(h.audio)-h.size:]
	}
}

// Snapshot returns cheap-to-clone copies of the current video and audio
// rings for a newly-connecting client's history+live forwarder to drain
// before switching to live frames. The returned slices share the
// underlying StampedFrame.Payload byte slices (never mutated after
// publication) but are otherwise independent of the live rings.
func (h *History) Snapshot() (video, audio []types.StampedFrame) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	video = make([]types.StampedFrame, len(h.video))
	copy(video, h.video)
	audio = make([]types.StampedFrame, len(h.audio))
	copy(audio, h.audio)
	return video, audio
}
