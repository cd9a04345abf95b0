// Package pause implements PauseController (spec §4.3): three
// independent affector watchers (client, motion, push) feeding a single
// reducer that decides, per config, whether the camera should currently
// be activated.
package pause

import "github.com/kevin-david/neolink/internal/types"

// Decide implements the reducer's truth table. When neither affector is
// enabled the controller isn't in use and the stream stays on
// unconditionally.
func Decide(cfg types.PauseConfig, aff types.PauseAffectors) bool {
	switch {
	case cfg.OnMotion && cfg.OnDisconnect:
		return aff.Client && (aff.Motion || aff.Push)
	case cfg.OnMotion && !cfg.OnDisconnect:
		return aff.Motion || aff.Push
	case !cfg.OnMotion && cfg.OnDisconnect:
		return aff.Client
	default:
		return true
	}
}
