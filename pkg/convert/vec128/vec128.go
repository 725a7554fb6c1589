// Package vec128 converts planar YUV frames to BGRA sixteen samples at a
// time using 128-bit vector batches.
//
// Output is bit-identical to package base. Rows whose width is not a
// multiple of the batch width finish with one extra batch anchored at the
// right edge, which rewrites a few pixels already produced by the body loop
// instead of falling back to per-pixel code. Buffers whose addresses and
// strides are all 16-byte aligned take the aligned load/store path.
package vec128

import (
	"fmt"

	"github.com/pion/yuv2bgra/internal/simd"
)

const (
	// A is the number of samples in one batch.
	A = simd.Width
	// DA is the luma width of one 4:2:0 batch.
	DA = 2 * A
	// QA is the number of output bytes produced by one batch.
	QA = 4 * A
)

// YUV444pToBGRA converts a 4:4:4 frame. width must be at least A.
func YUV444pToBGRA(y []byte, yStride int, u []byte, uStride int, v []byte, vStride int,
	width, height int, bgra []byte, bgraStride int, alpha uint8) {
	if width < A || height <= 0 {
		panic(fmt.Sprintf("vec128: YUV444p frame %dx%d is below the minimum width %d", width, height, A))
	}

	if allAligned(y, yStride, u, uStride, v, vStride, bgra, bgraStride) {
		yuv444pToBGRA[aligned](y, yStride, u, uStride, v, vStride, width, height, bgra, bgraStride, alpha)
	} else {
		yuv444pToBGRA[unaligned](y, yStride, u, uStride, v, vStride, width, height, bgra, bgraStride, alpha)
	}
}

// YUV420pToBGRA converts a 4:2:0 frame. width and height must be even,
// width at least DA and height at least 2.
func YUV420pToBGRA(y []byte, yStride int, u []byte, uStride int, v []byte, vStride int,
	width, height int, bgra []byte, bgraStride int, alpha uint8) {
	if width%2 != 0 || height%2 != 0 || width < DA || height < 2 {
		panic(fmt.Sprintf("vec128: invalid YUV420p frame %dx%d (even sizes, width >= %d, height >= 2)", width, height, DA))
	}

	if allAligned(y, yStride, u, uStride, v, vStride, bgra, bgraStride) {
		yuv420pToBGRA[aligned](y, yStride, u, uStride, v, vStride, width, height, bgra, bgraStride, alpha)
	} else {
		yuv420pToBGRA[unaligned](y, yStride, u, uStride, v, vStride, width, height, bgra, bgraStride, alpha)
	}
}
