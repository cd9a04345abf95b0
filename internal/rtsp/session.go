package rtsp

import (
	"context"

	"github.com/kevin-david/neolink/internal/appsrc"
	"github.com/puzpuzpuz/xsync/v3"
)

// ClientSession is the per-RTSP-client record spec §3 describes:
// {vid_appsrc?, aud_appsrc?, pacing-state, pacing-watch-channel}. The
// pacing-watch-channel lives on the pipeline goroutines themselves (the
// tsTx Watch passed to VideoChain/AudioChain); ClientSession only tracks
// what's needed to locate and tear the client down.
type ClientSession struct {
	ID        string
	MountPath string
	VidAppsrc appsrc.AppSource
	AudAppsrc appsrc.AppSource
	cancel    context.CancelFunc
}

// Registry is the concurrent client-session map stream-run maintains per
// mount. Sessions are added from stream-run's event loop and removed from
// each client's own pipeline goroutine, so a plain mutex-guarded map would
// contend; xsync.MapOf shards it the way the runner controller's
// active-session tables do.
type Registry struct {
	sessions *xsync.MapOf[string, *ClientSession]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: xsync.NewMapOf[string, *ClientSession]()}
}

// Add registers a session.
func (r *Registry) Add(s *ClientSession) { r.sessions.Store(s.ID, s) }

// Remove drops a session by ID.
func (r *Registry) Remove(id string) { r.sessions.Delete(id) }

// Get looks up a session by ID.
func (r *Registry) Get(id string) (*ClientSession, bool) { return r.sessions.Load(id) }

// Len reports the current number of registered sessions.
func (r *Registry) Len() int {
	n := 0
	r.sessions.Range(func(_ string, _ *ClientSession) bool {
		n++
		return true
	})
	return n
}
