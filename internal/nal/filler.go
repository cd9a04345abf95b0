// Package nal generates the NAL-unit filler data the padder adapter
// appends to 4 KiB-align encoded video frames. The byte layout here is
// part of the wire output (spec §4.6/§6) and must be reproduced
// bit-exact: decoders must be able to skip the filler as a syntactically
// valid, content-ignored NAL unit.
package nal

import (
	"fmt"

	"github.com/kevin-david/neolink/internal/types"
)

// MinPadH264 and MinPadH265 are the smallest filler sizes each codec can emit: just the start
// code, NAL header byte(s), and the RBSP trailing-bits terminator.
const (
	MinPadH264 = 5
	MinPadH265 = 6
)

// AlignTo is the buffer-pool alignment the downstream media framework
// expects (spec §4.6): every emitted video frame's length must be a
// multiple of this.
const AlignTo = 4096

// PadSize computes the filler size needed to align payloadLen to AlignTo,
// reserving at least minPad bytes for the filler's own framing.
func PadSize(payloadLen, minPad int) int {
	aligned := ((payloadLen + minPad + AlignTo - 1) / AlignTo) * AlignTo
	return aligned - payloadLen
}

// Filler returns a syntactically valid filler NAL unit of exactly size
// bytes for the given video format. Panics if size is smaller than the
// format's minimum filler size — callers only ever request sizes computed
// by PadSize, which always satisfies this.
func Filler(format types.VideoFormat, size int) []byte {
	switch format {
	case types.VideoFormatH264:
		return h264Filler(size)
	case types.VideoFormatH265:
		return h265Filler(size)
	default:
		panic(fmt.Sprintf("nal: filler requested for unsupported format %v", format))
	}
}

// h264Filler builds: start code (00 00 01), filler-data NAL type (0C),
// (size-5) bytes of FF, and a final RBSP trailing-bits byte (80).
func h264Filler(size int) []byte {
	if size < MinPadH264 {
		panic(fmt.Sprintf("nal: h264 filler size %d below minimum %d", size, MinPadH264))
	}
	buf := make([]byte, size)
	buf[0], buf[1], buf[2], buf[3] = 0x00, 0x00, 0x01, 0x0C
	for i := 4; i < size-1; i++ {
		buf[i] = 0xFF
	}
	buf[size-1] = 0x80
	return buf
}

// h265Filler builds: start code (00 00 01), filler-data NAL header (4C 00),
// (size-6) bytes of FF, and a final RBSP trailing-bits byte (80).
func h265Filler(size int) []byte {
	if size < MinPadH265 {
		panic(fmt.Sprintf("nal: h265 filler size %d below minimum %d", size, MinPadH265))
	}
	buf := make([]byte, size)
	buf[0], buf[1], buf[2], buf[3], buf[4] = 0x00, 0x00, 0x01, 0x4C, 0x00
	for i := 5; i < size-1; i++ {
		buf[i] = 0xFF
	}
	buf[size-1] = 0x80
	return buf
}

// MinPadFor returns the minimum filler size for a video format.
func MinPadFor(format types.VideoFormat) int {
	switch format {
	case types.VideoFormatH264:
		return MinPadH264
	case types.VideoFormatH265:
		return MinPadH265
	default:
		return 0
	}
}
