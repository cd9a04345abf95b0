package adapters

import (
	"context"

	"github.com/kevin-david/neolink/internal/nal"
	"github.com/kevin-david/neolink/internal/types"
	"github.com/rs/zerolog/log"
)

// Padder appends a syntactically valid NAL-unit filler to every frame
// whose payload length isn't already 4 KiB-aligned, so the downstream
// media framework's buffer pool only ever sees aligned buffers. It
// preserves ts and Keyframe; only Payload grows.
//
// A frame with an empty payload is malformed media (spec §6/§7): when
// strict is set the pipeline aborts by closing out, which the downstream
// worker observes as ordinary end-of-stream; otherwise the frame is
// dropped and the stream continues.
func Padder(ctx context.Context, in <-chan types.StampedFrame, format types.VideoFormat, strict bool) <-chan types.StampedFrame {
	out := make(chan types.StampedFrame)
	go func() {
		defer close(out)
		minPad := nal.MinPadFor(format)
		for {
			select {
			case <-ctx.Done():
				return
			case f, ok := <-in:
				if !ok {
					return
				}
				if len(f.Payload) == 0 {
					if strict {
						log.Error().Str("adapter", "padder").Msg("malformed frame (empty payload); aborting stream")
						return
					}
					log.Warn().Str("adapter", "padder").Msg("malformed frame (empty payload); dropping and continuing")
					continue
				}
				if len(f.Payload)%nal.AlignTo != 0 {
					pad := nal.PadSize(len(f.Payload), minPad)
					filler := nal.Filler(format, pad)
					padded := make([]byte, 0, len(f.Payload)+len(filler))
					padded = append(padded, f.Payload...)
					padded = append(padded, filler...)
					f.Payload = padded
				}
				select {
				case out <- f:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
