// Package supervisor implements the StreamSupervisor described in spec
// §4.4: one instance exists per camera and serves every configured
// stream variant of that camera as one mount each, and its iteration loop
// activates the camera, waits for a negotiated format, spawns the
// pause-controller watchers and the stream-run pipeline, and restarts
// the whole iteration whenever config changes or stream-run returns.
package supervisor

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/kevin-david/neolink/internal/camera"
	"github.com/kevin-david/neolink/internal/history"
	"github.com/kevin-david/neolink/internal/pause"
	"github.com/kevin-david/neolink/internal/rtsp"
	"github.com/kevin-david/neolink/internal/types"
	"github.com/kevin-david/neolink/internal/usecounter"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

// audFormatGrace bounds how long an iteration waits for aud_format to
// go non-None after vid_format has; a camera with no audio track never
// sends one, so the wait is advisory, not fatal.
const audFormatGrace = time.Second

// warmUpHold is how long the initial warm-up task holds camera
// activation before releasing it, giving FrameHistory time to fill
// with at least one keyframe-to-keyframe span before the first real
// client arrives.
var warmUpHold = 30 * time.Second

// clientLogInterval is how often the client-count logger task reports
// the mount's current subscriber count.
var clientLogInterval = time.Minute

// reloadDebounce coalesces a burst of near-simultaneous stream_cfg and
// pause_cfg changes into a single restart, per the reload-coalescing
// supplement in SPEC_FULL.md.
var reloadDebounce = 200 * time.Millisecond

// Supervisor owns one camera's whole activation, pause, and pipeline
// lifetime (spec §4.4) across all of its mounts, leaving its spawned
// tasks first on every restart and on shutdown.
type Supervisor struct {
	Name   string // the camera name, e.g. "frontdoor", for logging
	Driver camera.Driver
	Mounts []rtsp.MountSpec
	Factory rtsp.Factory

	BufferSize int

	// UseSmoothing and Strict mirror the camera's use_smoothing/strict
	// config keys (spec §6), passed straight through to every iteration's
	// StreamPipelines.
	UseSmoothing bool
	Strict       bool

	PauseCfg      types.PauseConfig
	PauseCfgWatch <-chan types.PauseConfig
}

// New returns a Supervisor ready to Run. pauseCfgWatch may be nil if the
// owner never republishes a changed PauseConfig (e.g. static config with
// no reload mechanism); the supervisor then only restarts on stream_cfg
// change or stream-run return.
func New(name string, driver camera.Driver, factory rtsp.Factory, mounts []rtsp.MountSpec, bufferSize int, useSmoothing, strict bool, pauseCfg types.PauseConfig, pauseCfgWatch <-chan types.PauseConfig) *Supervisor {
	return &Supervisor{
		Name:          name,
		Driver:        driver,
		Factory:       factory,
		Mounts:        mounts,
		BufferSize:    bufferSize,
		UseSmoothing:  useSmoothing,
		Strict:        strict,
		PauseCfg:      pauseCfg,
		PauseCfgWatch: pauseCfgWatch,
	}
}

// Run executes iterations until ctx is cancelled, per spec §4.4 steps
// 1-6. Each iteration's spawned tasks are cancelled and awaited before
// the next begins.
func (s *Supervisor) Run(ctx context.Context) error {
	pauseCfg := s.PauseCfg
	for {
		restart, err := s.runIteration(ctx, pauseCfg)
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		if restart.pauseCfg != nil {
			pauseCfg = *restart.pauseCfg
		}
	}
}

type restartReason struct {
	pauseCfg *types.PauseConfig
}

// runIteration is one pass of the loop body in spec §4.4: activate,
// wait for format, snapshot config, spawn the iteration's tasks, and
// race the three restart conditions.
func (s *Supervisor) runIteration(ctx context.Context, pauseCfg types.PauseConfig) (restartReason, error) {
	iterCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	activation := s.Driver.Subscribe()
	activation.Activate()
	defer activation.Deactivate()

	cfg, ok := camera.WaitConfig(iterCtx, s.Driver)
	if !ok {
		return restartReason{}, nil
	}
	for cfg.VidFormat == types.VideoFormatNone {
		cfg, ok = camera.WaitConfig(iterCtx, s.Driver)
		if !ok {
			return restartReason{}, nil
		}
	}
	cfg = waitAudioFormat(iterCtx, s.Driver, cfg)

	// The pause controller owns activation for the rest of the iteration;
	// release the loop-start activation now that format negotiation is
	// done, so pause.Run's reducer starts from a permit that is actually
	// inactive instead of inheriting this one's already-active state.
	activation.Deactivate()

	hist := history.New(s.BufferSize)
	clientCounter := usecounter.NewCounter()
	pipelines := rtsp.NewStreamPipelines(s.Factory, s.Driver, hist, clientCounter, s.UseSmoothing, s.Strict)
	pausePermit := s.Driver.Subscribe()

	var wg conc.WaitGroup
	wg.Go(func() { pause.Run(iterCtx, pauseCfg, s.Driver, clientCounter, pausePermit) })
	wg.Go(func() { s.warmUp(iterCtx) })
	wg.Go(func() { s.logClientCount(iterCtx, clientCounter) })

	runErr := make(chan error, len(s.Mounts))
	for _, mount := range s.Mounts {
		mount := mount
		wg.Go(func() { runErr <- pipelines.Run(iterCtx, mount, cfg) })
	}

	newStreamCfg := s.Driver.Config()
	newPauseCfg := s.PauseCfgWatch

race:
	select {
	case <-ctx.Done():
		cancel()
		wg.Wait()
		return restartReason{}, nil
	case next, ok := <-newStreamCfg:
		if ok && next.Equal(cfg) {
			goto race
		}
		if ok {
			waitDebounce(ctx, newStreamCfg, newPauseCfg)
		}
		cancel()
		wg.Wait()
		return restartReason{}, nil
	case next, ok := <-newPauseCfg:
		if ok && next.Equal(pauseCfg) {
			goto race
		}
		var r restartReason
		if ok {
			waitDebounce(ctx, newStreamCfg, newPauseCfg)
			r.pauseCfg = &next
		}
		cancel()
		wg.Wait()
		return r, nil
	case err := <-runErr:
		cancel()
		wg.Wait()
		if err != nil {
			log.Warn().Err(err).Str("supervisor", s.Name).Msg("stream-run returned an error; restarting iteration")
		}
		return restartReason{}, nil
	}
}

// waitDebounce drains any further config-change signal that arrives
// within reloadDebounce, so a burst of near-simultaneous stream_cfg and
// pause_cfg updates restarts the iteration once rather than twice.
func waitDebounce(ctx context.Context, streamCfg <-chan types.StreamConfig, pauseCfg <-chan types.PauseConfig) {
	timer := time.NewTimer(reloadDebounce)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			return
		case <-streamCfg:
		case <-pauseCfg:
		}
	}
}

// waitAudioFormat waits up to audFormatGrace for the driver to report a
// non-None audio format, per spec §4.4 step 2; a timeout is not fatal
// and the iteration proceeds with whatever cfg it last observed.
func waitAudioFormat(ctx context.Context, d camera.Driver, cfg types.StreamConfig) types.StreamConfig {
	if cfg.AudFormat != types.AudioFormatNone {
		return cfg
	}
	deadline := time.NewTimer(audFormatGrace)
	defer deadline.Stop()
	for {
		select {
		case <-ctx.Done():
			return cfg
		case <-deadline.C:
			return cfg
		case next, ok := <-d.Config():
			if !ok {
				return cfg
			}
			cfg = next
			if cfg.AudFormat != types.AudioFormatNone {
				return cfg
			}
		}
	}
}

// warmUp holds camera activation for warmUpHold to prime FrameHistory
// before releasing, per spec §4.4 step 4.
func (s *Supervisor) warmUp(ctx context.Context) {
	permit := s.Driver.Subscribe()
	permit.Activate()
	defer permit.Deactivate()

	select {
	case <-ctx.Done():
	case <-time.After(warmUpHold):
	}
}

// logClientCount reports the mount's current client count on a fixed
// interval until ctx is cancelled.
func (s *Supervisor) logClientCount(ctx context.Context, counter *usecounter.Counter) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Warn().Err(err).Str("supervisor", s.Name).Msg("client-count logger disabled: scheduler init failed")
		<-ctx.Done()
		return
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(clientLogInterval),
		gocron.NewTask(func() {
			log.Info().Str("supervisor", s.Name).Uint32("clients", counter.Value()).Msg("client count")
		}),
	)
	if err != nil {
		log.Warn().Err(err).Str("supervisor", s.Name).Msg("client-count logger disabled: job registration failed")
		<-ctx.Done()
		return
	}

	scheduler.Start()
	<-ctx.Done()
	_ = scheduler.Shutdown()
}
