package convert

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrUnsupportedSubsampleRatio is returned for frames that are neither
	// 4:2:0 nor 4:4:4.
	ErrUnsupportedSubsampleRatio = errors.New("convert: unsupported subsample ratio")
	// ErrOddDimensions is returned for 4:2:0 frames whose size or origin is
	// not even, so chroma samples would not line up with 2x2 luma blocks.
	ErrOddDimensions = errors.New("convert: 4:2:0 frame must have even size and origin")
)

// YCbCrToBGRA converts src into dst, which is resized to src's bounds when
// needed. dst.Pix is reused when it has enough capacity.
func YCbCrToBGRA(dst *BGRA, src *image.YCbCr, alpha uint8) error {
	if dst == nil {
		panic("dst can't be nil")
	}

	r := src.Rect
	w, h := r.Dx(), r.Dy()
	switch src.SubsampleRatio {
	case image.YCbCrSubsampleRatio420:
		if w%2 != 0 || h%2 != 0 || r.Min.X%2 != 0 || r.Min.Y%2 != 0 {
			return fmt.Errorf("%w: %v", ErrOddDimensions, r)
		}
	case image.YCbCrSubsampleRatio444:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedSubsampleRatio, src.SubsampleRatio)
	}

	dst.Resize(r)
	if w == 0 || h == 0 {
		return nil
	}

	y := src.Y[src.YOffset(r.Min.X, r.Min.Y):]
	cb := src.Cb[src.COffset(r.Min.X, r.Min.Y):]
	cr := src.Cr[src.COffset(r.Min.X, r.Min.Y):]
	if src.SubsampleRatio == image.YCbCrSubsampleRatio420 {
		YUV420pToBGRA(y, src.YStride, cb, src.CStride, cr, src.CStride, w, h, dst.Pix, dst.Stride, alpha)
	} else {
		YUV444pToBGRA(y, src.YStride, cb, src.CStride, cr, src.CStride, w, h, dst.Pix, dst.Stride, alpha)
	}
	return nil
}
