// Package types holds the data model shared across the streaming core:
// the frames that flow from camera to client, the config snapshots the
// camera driver publishes, and the affector state the pause controller
// combines into an activation decision.
package types

import "time"

// StampedFrame is an immutable, reference-counted unit of encoded media.
// It is produced once by the camera driver and shared by reference across
// every subscriber; nothing may mutate Payload after publication.
type StampedFrame struct {
	Payload  []byte
	TS       time.Duration // duration since the start of the camera's clock
	Keyframe bool
}

// VideoFormat enumerates the video codecs a camera may negotiate.
type VideoFormat int

const (
	VideoFormatNone VideoFormat = iota
	VideoFormatH264
	VideoFormatH265
)

func (f VideoFormat) String() string {
	switch f {
	case VideoFormatH264:
		return "h264"
	case VideoFormatH265:
		return "h265"
	default:
		return "none"
	}
}

// AudioFormat enumerates the audio codecs a camera may negotiate.
type AudioFormat int

const (
	AudioFormatNone AudioFormat = iota
	AudioFormatAAC
	AudioFormatADPCM
)

func (f AudioFormat) String() string {
	switch f {
	case AudioFormatAAC:
		return "aac"
	case AudioFormatADPCM:
		return "adpcm"
	default:
		return "none"
	}
}

// StreamConfig is the camera's negotiated media shape. It is republished
// whenever the camera renegotiates; once VidFormat is non-None it must
// never revert to None short of a full reload.
type StreamConfig struct {
	VidFormat VideoFormat
	AudFormat AudioFormat
	FPS       uint16
	// Extra carries codec-specific parameters (SPS/PPS, profile, etc.)
	// the camera driver hands through verbatim.
	Extra map[string]string
}

// Equal reports whether two StreamConfig values are identical by value,
// which is the comparison the supervisor uses to decide whether a config
// change warrants a pipeline reload.
func (c StreamConfig) Equal(o StreamConfig) bool {
	if c.VidFormat != o.VidFormat || c.AudFormat != o.AudFormat || c.FPS != o.FPS {
		return false
	}
	if len(c.Extra) != len(o.Extra) {
		return false
	}
	for k, v := range c.Extra {
		if ov, ok := o.Extra[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// MotionKind distinguishes the three states a camera's motion watch can
// report.
type MotionKind int

const (
	MotionUnknown MotionKind = iota
	MotionStart
	MotionStop
)

// MotionState is the latest-value payload of the camera driver's motion
// watch channel.
type MotionState struct {
	Kind MotionKind
	At   time.Time
}

// PushEvent is a single push-notification delivery from the camera driver.
// Two events are "distinct" when their ID differs; the push watcher uses
// this to decide whether to restart its debounce window.
type PushEvent struct {
	ID string
	At time.Time
}

// PauseAffectors is the combined state the PauseController's reducer
// consumes. Each field has a single writer (one watcher goroutine per
// field) and is read by the reducer.
type PauseAffectors struct {
	Motion bool
	Push   bool
	Client bool
}

// PauseMode is the reserved freeze-frame adapter selector. Only
// PauseModeNone has observable effect in this implementation; the others
// are accepted and validated but otherwise inert, per spec.
type PauseMode int

const (
	PauseModeNone PauseMode = iota
	PauseModeBlack
	PauseModeStill
	PauseModeTest
)

// ParsePauseMode validates a config-supplied pause mode string.
func ParsePauseMode(s string) (PauseMode, bool) {
	switch s {
	case "", "none":
		return PauseModeNone, true
	case "black":
		return PauseModeBlack, true
	case "still":
		return PauseModeStill, true
	case "test":
		return PauseModeTest, true
	default:
		return PauseModeNone, false
	}
}

// PauseConfig is treated as immutable within one supervisor iteration; a
// change triggers a supervisor reload.
type PauseConfig struct {
	OnMotion      bool
	OnDisconnect  bool
	MotionTimeout time.Duration
	Mode          PauseMode
}

// Equal reports whether two PauseConfig values are identical by value.
func (c PauseConfig) Equal(o PauseConfig) bool {
	return c.OnMotion == o.OnMotion &&
		c.OnDisconnect == o.OnDisconnect &&
		c.MotionTimeout == o.MotionTimeout &&
		c.Mode == o.Mode
}

// StreamSelector names which track(s) of a camera a supervisor serves.
type StreamSelector int

const (
	StreamMain StreamSelector = iota
	StreamSub
	StreamExtern
	StreamBoth
	StreamAll
)

// ParseStreamSelector validates a config-supplied stream selector string.
func ParseStreamSelector(s string) (StreamSelector, bool) {
	switch s {
	case "mainStream":
		return StreamMain, true
	case "subStream":
		return StreamSub, true
	case "externStream":
		return StreamExtern, true
	case "both", "":
		return StreamBoth, true
	case "all":
		return StreamAll, true
	default:
		return StreamBoth, false
	}
}

// Concrete enumerates the individual per-camera streams a "both"/"all"
// selector expands into, per SPEC_FULL's supplemented mount-naming
// feature.
func (s StreamSelector) Concrete() []StreamSelector {
	switch s {
	case StreamBoth:
		return []StreamSelector{StreamMain, StreamSub}
	case StreamAll:
		return []StreamSelector{StreamMain, StreamSub, StreamExtern}
	default:
		return []StreamSelector{s}
	}
}

func (s StreamSelector) String() string {
	switch s {
	case StreamMain:
		return "mainStream"
	case StreamSub:
		return "subStream"
	case StreamExtern:
		return "externStream"
	case StreamAll:
		return "all"
	default:
		return "both"
	}
}
