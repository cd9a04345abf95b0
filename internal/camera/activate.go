package camera

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/kevin-david/neolink/internal/streamerr"
	"github.com/kevin-david/neolink/internal/usecounter"
	"github.com/rs/zerolog/log"
)

const activateRetries = 5

// activateDelay is a var rather than a const so tests can shrink it.
var activateDelay = 2 * time.Second

// Activate subscribes to d once, retries attempt with backoff until it
// succeeds, and then activates the permit — cameras that are booting or
// briefly unreachable shouldn't abort a whole supervisor iteration on the
// first failed attempt. Returns the activated permit, or an
// *ActivationError (with no permit activated) once the retries are used up.
//
// attempt is whatever the caller's camera-specific activation check does
// (e.g. pinging the driver's underlying transport); it may return a
// streamerr.FatalError to signal a non-retriable failure.
func Activate(ctx context.Context, d Driver, name string, attempt func(context.Context) error) (*usecounter.Permit, error) {
	permit := d.Subscribe()

	err := retry.Do(func() error {
		if attempt != nil {
			if aerr := attempt(ctx); aerr != nil {
				if streamerr.IsFatal(aerr) {
					return retry.Unrecoverable(aerr)
				}
				return aerr
			}
		}
		return nil
	},
		retry.Attempts(activateRetries),
		retry.Delay(activateDelay),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Err(err).
				Str("camera", name).
				Uint("attempt", n).
				Msg("retrying camera activation")
		}),
	)
	if err != nil {
		return nil, &ActivationError{Camera: name, Err: err}
	}

	permit.Activate()
	return permit, nil
}
