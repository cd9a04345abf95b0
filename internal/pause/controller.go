package pause

import (
	"context"
	"sync"

	"github.com/kevin-david/neolink/internal/camera"
	"github.com/kevin-david/neolink/internal/types"
	"github.com/kevin-david/neolink/internal/usecounter"
	"github.com/sourcegraph/conc"
)

// shared guards the reducer's view of the three affectors, written by at
// most one watcher goroutine each and read as a snapshot by the reducer.
type shared struct {
	mu     sync.Mutex
	aff    types.PauseAffectors
	notify func()
}

func (s *shared) setClient(v bool) { s.set(func(a *types.PauseAffectors) { a.Client = v }) }
func (s *shared) setMotion(v bool) { s.set(func(a *types.PauseAffectors) { a.Motion = v }) }
func (s *shared) setPush(v bool)   { s.set(func(a *types.PauseAffectors) { a.Push = v }) }

func (s *shared) set(mutate func(*types.PauseAffectors)) {
	s.mu.Lock()
	before := s.aff
	mutate(&s.aff)
	changed := before != s.aff
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

func (s *shared) snapshot() types.PauseAffectors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aff
}

// Run spawns the affector watchers and reducer described in spec §4.3
// and blocks until ctx is cancelled. permit is the camera activation
// Permit the reducer toggles.
func Run(ctx context.Context, cfg types.PauseConfig, driver camera.Driver, clientCounter *usecounter.Counter, permit *usecounter.Permit) {
	if !cfg.OnMotion && !cfg.OnDisconnect {
		// Controller not used; stream stays on for the whole activation.
		permit.Activate()
		<-ctx.Done()
		permit.Deactivate()
		return
	}

	changed := make(chan struct{}, 1)
	notify := func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	st := &shared{notify: notify}

	var wg conc.WaitGroup
	if cfg.OnDisconnect {
		wg.Go(func() { clientWatcher(ctx, clientCounter.Watch(), st.setClient) })
	}
	if cfg.OnMotion {
		wg.Go(func() { motionWatcher(ctx, driver.Motion(), cfg.MotionTimeout, st.setMotion) })
		wg.Go(func() { pushWatcher(ctx, driver.PushNotifications(), pushDebounce, st.setPush) })
	}
	defer wg.Wait()

	active := false
	for {
		select {
		case <-ctx.Done():
			if active {
				permit.Deactivate()
			}
			return
		case <-changed:
			want := Decide(cfg, st.snapshot())
			if want && !active {
				permit.Activate()
				active = true
			} else if !want && active {
				permit.Deactivate()
				active = false
			}
		}
	}
}
