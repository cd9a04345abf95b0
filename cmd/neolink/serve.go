package neolink

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kevin-david/neolink/internal/camera"
	"github.com/kevin-david/neolink/internal/config"
	"github.com/kevin-david/neolink/internal/logging"
	"github.com/kevin-david/neolink/internal/rtsp"
	"github.com/kevin-david/neolink/internal/supervisor"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
)

// NewDriver constructs the camera.Driver for one configured camera. The
// core treats the camera protocol itself as an external contract (spec
// §1 Non-goals); a concrete camera/NVR integration package registers its
// constructor here during its own init(), the same way
// internal/appsrc's cgo build tag supplies GstAppSource. The default
// value returns an error so `serve` fails loudly rather than silently running
// with no cameras.
var NewDriver func(cam config.Camera) (camera.Driver, error) = func(cam config.Camera) (camera.Driver, error) {
	return nil, fmt.Errorf("no camera driver registered for %q: link in a camera integration package", cam.Name)
}

// NewFactory constructs the rtsp.Factory the mounts for one camera
// register against. Like NewDriver, the RTSP server itself is an
// external contract (spec §1 Non-goals); a concrete RTSP server
// integration package supplies this.
var NewFactory func(bindAddr string, cam config.Camera) (rtsp.Factory, error) = func(bindAddr string, cam config.Camera) (rtsp.Factory, error) {
	return nil, fmt.Errorf("no RTSP factory registered for %q: link in an RTSP server integration package", cam.Name)
}

func newServeCmd() *cobra.Command {
	var logLevel string
	var jsonLogs bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the RTSP re-streaming core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(logLevel, jsonLogs)
			return serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "emit structured JSON logs instead of console output")

	return cmd
}

// serve loads the configured camera list, builds one Supervisor per
// camera, and runs them all until interrupted. Each Supervisor serves
// every stream variant of its camera through one mount per variant;
// stream variants do not get Supervisors of their own.
func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	names := splitAndTrim(os.Getenv("NEOLINK_CAMERAS"))
	if len(names) == 0 {
		return fmt.Errorf("NEOLINK_CAMERAS is empty: nothing to serve")
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var wg conc.WaitGroup
	defer wg.Wait()

	for _, name := range names {
		cam, err := config.LoadCamera("NEOLINK_CAM_" + name)
		if err != nil {
			return fmt.Errorf("load camera %q config: %w", name, err)
		}
		cam.Name = name
		if err := cam.Validate(); err != nil {
			return err
		}

		driver, err := NewDriver(cam)
		if err != nil {
			return fmt.Errorf("camera %q: %w", name, err)
		}
		factory, err := NewFactory(cfg.BindAddr, cam)
		if err != nil {
			return fmt.Errorf("camera %q: %w", name, err)
		}

		sup := supervisor.New(
			cam.Name,
			driver,
			factory,
			cam.MountSpecs(),
			cam.BufferSize,
			cam.UseSmoothing,
			cam.Strict,
			cam.PauseConfig(),
			nil,
		)

		wg.Go(func() {
			if err := sup.Run(ctx); err != nil {
				log.Error().Err(err).Str("camera", cam.Name).Msg("supervisor exited with error")
			}
		})
	}

	<-ctx.Done()
	return nil
}
