package config

import (
	"fmt"
	"time"

	"github.com/kevin-david/neolink/internal/rtsp"
	"github.com/kevin-david/neolink/internal/types"
)

// MountSpecs expands a Camera's stream selector into one rtsp.MountSpec
// per concrete variant (mainStream/subStream/externStream), per
// SPEC_FULL's mount-naming supplement: a "both"/"all" selector produces
// several mounts sharing the same camera rather than one ambiguous mount.
func (c Camera) MountSpecs() []rtsp.MountSpec {
	roles := c.Roles()
	variants := c.StreamSelector().Concrete()
	specs := make([]rtsp.MountSpec, 0, len(variants))
	for _, v := range variants {
		specs = append(specs, rtsp.MountSpec{
			Path:  fmt.Sprintf("/%s/%s", c.Name, v),
			Roles: roles,
		})
	}
	return specs
}

// PauseConfig converts the validated Pause block to the core's runtime
// types.PauseConfig.
func (c Camera) PauseConfig() types.PauseConfig {
	return types.PauseConfig{
		OnMotion:      c.Pause.OnMotion,
		OnDisconnect:  c.Pause.OnDisconnect,
		MotionTimeout: time.Duration(c.Pause.MotionTimeout * float64(time.Second)),
		Mode:          c.PauseMode(),
	}
}
