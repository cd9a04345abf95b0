// Package rtsp implements stream-run (spec §4.5): the per-mount factory
// lifetime that turns client-connect events from an external RTSP
// server into per-client StreamPipelines chains.
//
// The actual RTSP wire protocol is out of scope for this core (the
// retrieval pack carries no RTSP server library); Factory is the
// external contract a concrete RTSP server integration implements,
// mirroring how internal/camera models the camera driver as an
// interface the core consumes rather than reimplements.
package rtsp

import "github.com/kevin-david/neolink/internal/appsrc"

// MountSpec describes one RTSP mount path this core wants registered,
// including the role-name allow-list the external server enforces.
// One StreamSupervisor may register several MountSpecs when its
// configured stream selector expands to more than one concrete variant
// (main/sub/extern).
type MountSpec struct {
	Path  string
	Roles []string
}

// ClientEvent is published by a Factory whenever a client connects to
// one of its registered mounts. VidAppsrc is always non-nil; AudAppsrc
// is nil when the mount carries no audio track.
type ClientEvent struct {
	MountPath string
	VidAppsrc appsrc.AppSource
	AudAppsrc appsrc.AppSource
}

// Factory is the contract a concrete RTSP server integration provides:
// register a mount and its permitted roles, and publish client-connect
// events on the returned channel until the mount is torn down (at which
// point the channel closes).
type Factory interface {
	Register(mount MountSpec) (<-chan ClientEvent, error)
	Unregister(path string)
}
