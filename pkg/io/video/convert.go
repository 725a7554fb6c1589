package video

import (
	"image"

	"github.com/pion/yuv2bgra/internal/logging"
	"github.com/pion/yuv2bgra/pkg/convert"
	"github.com/pion/yuv2bgra/pkg/convert/base"
)

var logger = logging.NewLogger("yuv2bgra/video")

// imageToBGRA converts src to *convert.BGRA and store it to dst. YCbCr sources
// get the given alpha; other sources keep their own.
func imageToBGRA(dst *convert.BGRA, src image.Image, alpha uint8) {
	if dst == nil {
		panic("dst can't be nil")
	}

	switch s := src.(type) {
	case *convert.BGRA:
		dst.Resize(s.Rect)
		n := 4 * s.Rect.Dx()
		for y := s.Rect.Min.Y; y < s.Rect.Max.Y; y++ {
			i := s.PixOffset(s.Rect.Min.X, y)
			copy(dst.Pix[dst.PixOffset(s.Rect.Min.X, y):], s.Pix[i:i+n])
		}
		return
	case *image.YCbCr:
		if err := convert.YCbCrToBGRA(dst, s, alpha); err != nil {
			// Odd 4:2:0 frames and other ratios go pixel by pixel.
			ycbcrToBGRA(dst, s, alpha)
		}
		return
	}

	bounds := src.Bounds()
	dst.Resize(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}
}

func ycbcrToBGRA(dst *convert.BGRA, src *image.YCbCr, alpha uint8) {
	bounds := src.Rect
	dst.Resize(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ci := src.COffset(x, y)
			i := dst.PixOffset(x, y)
			base.YUVToBGRA(src.Y[src.YOffset(x, y)], src.Cb[ci], src.Cr[ci], alpha, dst.Pix[i:i+4])
		}
	}
}

func tierOf(img image.Image) convert.Tier {
	if src, ok := img.(*image.YCbCr); ok {
		switch src.SubsampleRatio {
		case image.YCbCrSubsampleRatio420:
			return convert.Tier420(src.Rect.Dx())
		case image.YCbCrSubsampleRatio444:
			return convert.Tier444(src.Rect.Dx())
		}
	}
	return convert.TierBase
}

// ToBGRA converts r to a new reader that will output images in BGRA format,
// with alpha as the alpha channel of every converted YCbCr frame. The returned
// image is reused across reads.
func ToBGRA(alpha uint8) TransformFunc {
	return func(r Reader) Reader {
		var dst convert.BGRA
		var lastBounds image.Rectangle
		return ReaderFunc(func() (image.Image, func(), error) {
			img, release, err := r.Read()
			if err != nil {
				return nil, func() {}, err
			}

			if b := img.Bounds(); b != lastBounds {
				logger.Debugf("BGRA conversion %v using %s tier", b, tierOf(img))
				lastBounds = b
			}

			imageToBGRA(&dst, img, alpha)
			if release != nil {
				release()
			}
			return &dst, func() {}, nil
		})
	}
}
