// Package config loads and validates the streaming core's consumed
// configuration (spec §6) plus the mount-naming and role-allow-list
// supplements from SPEC_FULL.md.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/kevin-david/neolink/internal/types"
)

// Camera is one configured camera entry: its driver connection details
// plus the stream/pause settings that parameterize its Supervisor(s).
type Camera struct {
	// Name is not read from the environment: it is always the
	// NEOLINK_CAMERAS list entry that produced this Camera's env
	// prefix, assigned by the caller after LoadCamera.
	Name string `ignored:"true"`

	Stream    string `envconfig:"STREAM" default:"both"`
	ChannelID uint8  `envconfig:"CHANNEL_ID" default:"0"`

	BufferSize   int  `envconfig:"BUFFER_SIZE" default:"100"`
	UseSmoothing bool `envconfig:"USE_SMOOTHING" default:"true"`
	Strict       bool `envconfig:"STRICT" default:"false"`

	Pause Pause

	// PermittedUsers is the role-name allow-list attached to every mount
	// this camera registers (SPEC_FULL supplement #2). Comma-separated
	// in the environment, e.g. "admin,viewer".
	PermittedUsers string `envconfig:"PERMITTED_USERS" default:""`
}

// Pause mirrors spec §6's pause.* keys.
type Pause struct {
	OnMotion      bool    `envconfig:"PAUSE_ON_MOTION" default:"false"`
	OnDisconnect  bool    `envconfig:"PAUSE_ON_DISCONNECT" default:"false"`
	MotionTimeout float64 `envconfig:"PAUSE_MOTION_TIMEOUT" default:"1.0"`
	Mode          string  `envconfig:"PAUSE_MODE" default:"none"`
}

// Config is the top-level RTSP bridge configuration. It holds only the
// bind address; each camera is loaded separately with LoadCamera and
// validated independently.
type Config struct {
	BindAddr string `envconfig:"BIND_ADDR" default:"0.0.0.0:8554"`
}

// Load reads the top-level Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("NEOLINK", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// LoadCamera reads one Camera's settings from the environment under the
// given prefix (e.g. "NEOLINK_CAM_FRONTDOOR").
func LoadCamera(prefix string) (Camera, error) {
	var cam Camera
	if err := envconfig.Process(prefix, &cam); err != nil {
		return Camera{}, fmt.Errorf("load camera config: %w", err)
	}
	return cam, nil
}

// Validate checks the range/enum constraints spec §6 and the
// supplemented mount-naming feature impose, returning every violation
// found (not just the first) so a misconfigured deployment gets one
// complete error report.
func (c Camera) Validate() error {
	var errs []string

	if c.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if _, ok := types.ParseStreamSelector(c.Stream); !ok {
		errs = append(errs, fmt.Sprintf("stream: unknown value %q", c.Stream))
	}
	if c.ChannelID > 31 {
		errs = append(errs, fmt.Sprintf("channel_id: %d out of range 0..31", c.ChannelID))
	}
	if c.BufferSize < 10 || c.BufferSize > 500 {
		errs = append(errs, fmt.Sprintf("buffer_size: %d out of range 10..500", c.BufferSize))
	}
	if _, ok := types.ParsePauseMode(c.Pause.Mode); !ok {
		errs = append(errs, fmt.Sprintf("pause.mode: unknown value %q", c.Pause.Mode))
	}
	if c.Pause.MotionTimeout < 0 {
		errs = append(errs, fmt.Sprintf("pause.motion_timeout: %v must not be negative", c.Pause.MotionTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid camera config %q: %s", c.Name, strings.Join(errs, "; "))
	}
	return nil
}

// StreamSelector parses the validated Stream field. Callers must call
// Validate first; StreamSelector panics on an unparseable value since
// that indicates Validate was skipped.
func (c Camera) StreamSelector() types.StreamSelector {
	sel, ok := types.ParseStreamSelector(c.Stream)
	if !ok {
		panic(fmt.Sprintf("config: StreamSelector called on invalid value %q; Validate was not called", c.Stream))
	}
	return sel
}

// PauseMode parses the validated Pause.Mode field, panicking under the
// same contract as StreamSelector.
func (c Camera) PauseMode() types.PauseMode {
	mode, ok := types.ParsePauseMode(c.Pause.Mode)
	if !ok {
		panic(fmt.Sprintf("config: PauseMode called on invalid value %q; Validate was not called", c.Pause.Mode))
	}
	return mode
}

// Roles splits PermittedUsers on commas, trimming whitespace and
// dropping empty entries. An empty result means "no role restriction";
// the external RTSP server decides what that implies.
func (c Camera) Roles() []string {
	if c.PermittedUsers == "" {
		return nil
	}
	parts := strings.Split(c.PermittedUsers, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}
