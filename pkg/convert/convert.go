// Package convert turns planar YUV frames into packed BGRA pixels.
//
// The entry points validate the buffer geometry, then run the fastest tier
// available for it: the 128-bit vector tier when the host supports it and the
// frame is wide enough, the scalar tier otherwise. All tiers produce the same
// bytes.
//
// Geometry violations are programming errors and panic. Callers holding an
// image.YCbCr can use YCbCrToBGRA, which reports unsupported frames as errors.
package convert

import (
	"fmt"

	"github.com/pion/yuv2bgra/pkg/convert/base"
	"github.com/pion/yuv2bgra/pkg/convert/vec128"
)

// Tier identifies an implementation of the conversions.
type Tier int

const (
	TierBase Tier = iota
	TierVec128
)

func (t Tier) String() string {
	switch t {
	case TierBase:
		return "base"
	case TierVec128:
		return "vec128"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Tier444 returns the tier YUV444pToBGRA uses for frames of the given width.
func Tier444(width int) Tier {
	if vec128.Enabled() && width >= vec128.A {
		return TierVec128
	}
	return TierBase
}

// Tier420 returns the tier YUV420pToBGRA uses for frames of the given width.
func Tier420(width int) Tier {
	if vec128.Enabled() && width >= vec128.DA {
		return TierVec128
	}
	return TierBase
}

// YUV420pToBGRA converts a 4:2:0 planar frame. The U and V planes are
// width/2 x height/2; width and height must be even. Every output pixel
// is written as B, G, R, alpha.
func YUV420pToBGRA(y []byte, yStride int, u []byte, uStride int, v []byte, vStride int,
	width, height int, bgra []byte, bgraStride int, alpha uint8) {
	if width%2 != 0 || height%2 != 0 {
		panic(fmt.Sprintf("convert: YUV420p frame %dx%d must have even width and height", width, height))
	}
	checkGeometry(width, height)
	checkPlane("y", y, yStride, width, height)
	checkPlane("u", u, uStride, width/2, height/2)
	checkPlane("v", v, vStride, width/2, height/2)
	checkPlane("bgra", bgra, bgraStride, 4*width, height)

	switch Tier420(width) {
	case TierVec128:
		vec128.YUV420pToBGRA(y, yStride, u, uStride, v, vStride, width, height, bgra, bgraStride, alpha)
	default:
		base.YUV420pToBGRA(y, yStride, u, uStride, v, vStride, width, height, bgra, bgraStride, alpha)
	}
}

// YUV444pToBGRA converts a 4:4:4 planar frame. All three planes are
// width x height.
func YUV444pToBGRA(y []byte, yStride int, u []byte, uStride int, v []byte, vStride int,
	width, height int, bgra []byte, bgraStride int, alpha uint8) {
	checkGeometry(width, height)
	checkPlane("y", y, yStride, width, height)
	checkPlane("u", u, uStride, width, height)
	checkPlane("v", v, vStride, width, height)
	checkPlane("bgra", bgra, bgraStride, 4*width, height)

	switch Tier444(width) {
	case TierVec128:
		vec128.YUV444pToBGRA(y, yStride, u, uStride, v, vStride, width, height, bgra, bgraStride, alpha)
	default:
		base.YUV444pToBGRA(y, yStride, u, uStride, v, vStride, width, height, bgra, bgraStride, alpha)
	}
}

func checkGeometry(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("convert: invalid frame size %dx%d", width, height))
	}
}

// checkPlane panics unless p holds rows rows of rowBytes bytes spaced stride
// bytes apart.
func checkPlane(name string, p []byte, stride, rowBytes, rows int) {
	if stride < rowBytes {
		panic(fmt.Sprintf("convert: %s stride %d is less than row size %d", name, stride, rowBytes))
	}
	if need := stride*(rows-1) + rowBytes; len(p) < need {
		panic(fmt.Sprintf("convert: %s buffer has %d bytes, need %d", name, len(p), need))
	}
}
