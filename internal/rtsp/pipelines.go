package rtsp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kevin-david/neolink/internal/adapters"
	"github.com/kevin-david/neolink/internal/appsrc"
	"github.com/kevin-david/neolink/internal/camera"
	"github.com/kevin-david/neolink/internal/history"
	"github.com/kevin-david/neolink/internal/types"
	"github.com/kevin-david/neolink/internal/usecounter"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

// StreamPipelines owns one mount's client-connect-to-teardown lifetime
// (spec §4.5): register, fan out per-client pipelines, and tear
// everything down when the factory's event channel closes.
type StreamPipelines struct {
	Factory       Factory
	Driver        camera.Driver
	History       *history.History
	ClientCounter *usecounter.Counter

	// UseSmoothing and Strict mirror the camera's use_smoothing/strict
	// config keys (spec §6), threaded into every client's adapter chain.
	UseSmoothing bool
	Strict       bool

	Registry *Registry
}

// NewStreamPipelines returns a StreamPipelines with a fresh client
// registry.
func NewStreamPipelines(factory Factory, driver camera.Driver, hist *history.History, clientCounter *usecounter.Counter, useSmoothing, strict bool) *StreamPipelines {
	return &StreamPipelines{
		Factory:       factory,
		Driver:        driver,
		History:       hist,
		ClientCounter: clientCounter,
		UseSmoothing:  useSmoothing,
		Strict:        strict,
		Registry:      NewRegistry(),
	}
}

// Run registers mount and processes client-connect events until ctx is
// cancelled or the factory tears the mount down, per §4.5 step 3. It
// returns when stream-run is over, whatever the reason — the caller
// (StreamSupervisor) treats that as one of the three restart triggers.
func (p *StreamPipelines) Run(ctx context.Context, mount MountSpec, cfg types.StreamConfig) error {
	events, err := p.Factory.Register(mount)
	if err != nil {
		return err
	}
	defer p.Factory.Unregister(mount.Path)

	var wg conc.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			p.spawnClient(ctx, &wg, ev, cfg)
		}
	}
}

func (p *StreamPipelines) spawnClient(ctx context.Context, wg *conc.WaitGroup, ev ClientEvent, cfg types.StreamConfig) {
	clientCtx, cancel := context.WithCancel(ctx)
	session := &ClientSession{
		ID:        uuid.NewString(),
		MountPath: ev.MountPath,
		VidAppsrc: ev.VidAppsrc,
		AudAppsrc: ev.AudAppsrc,
		cancel:    cancel,
	}
	p.Registry.Add(session)

	wg.Go(func() {
		defer cancel()
		defer p.Registry.Remove(session.ID)
		p.runClient(clientCtx, session, cfg)
	})
}

// runClient builds and runs one client's video pipeline, and its audio
// pipeline if the client's mount carries audio, holding a Permit on the
// shared client counter for the pipeline's whole lifetime.
func (p *StreamPipelines) runClient(ctx context.Context, session *ClientSession, cfg types.StreamConfig) {
	permit := p.ClientCounter.Subscribe()
	permit.Activate()
	defer permit.Release()

	tsTx := camera.NewWatch(time.Duration(0))
	vidHistSnap, audHistSnap := p.History.Snapshot()

	var wg conc.WaitGroup

	vidLive, vidUnsub := p.Driver.VideoSubscribe()
	defer vidUnsub()
	vidRaw := historyAndLiveForwarder(ctx, vidHistSnap, vidLive)
	vidOut := adapters.VideoChain(ctx, vidRaw, tsTx, cfg.FPS, cfg.VidFormat, p.UseSmoothing, p.Strict)

	vidWorker := appsrc.NewWorker(session.VidAppsrc, session.MountPath)
	wg.Go(func() { pumpInto(ctx, vidOut, vidWorker.In) })
	wg.Go(func() {
		if err := vidWorker.Run(ctx); err != nil {
			log.Warn().Err(err).Str("session", session.ID).Msg("video pipeline aborted")
		}
	})

	if session.AudAppsrc != nil {
		audLive, audUnsub := p.Driver.AudioSubscribe()
		defer audUnsub()
		audRaw := historyAndLiveForwarder(ctx, audHistSnap, audLive)
		audOut := adapters.AudioChain(ctx, audRaw, tsTx, cfg.FPS, p.UseSmoothing)

		audWorker := appsrc.NewWorker(session.AudAppsrc, session.MountPath)
		wg.Go(func() { pumpInto(ctx, audOut, audWorker.In) })
		wg.Go(func() {
			if err := audWorker.Run(ctx); err != nil {
				log.Warn().Err(err).Str("session", session.ID).Msg("audio pipeline aborted")
			}
		})
	}

	wg.Wait()
}

// pumpInto forwards every frame from in to out until in closes or ctx is
// cancelled, bridging an adapter chain's output into a Worker's handoff
// queue.
func pumpInto(ctx context.Context, in <-chan types.StampedFrame, out chan<- types.StampedFrame) {
	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-in:
			if !ok {
				return
			}
			select {
			case out <- f:
			case <-ctx.Done():
				return
			}
		}
	}
}
