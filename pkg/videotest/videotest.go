// Package videotest provides synthetic YCbCr video sources for testing the
// converters.
package videotest

import (
	"fmt"
	"image"
	"io"
	"math/rand"

	"github.com/pion/yuv2bgra/pkg/io/video"
)

// colors holds the 75% bars in studio range Y, Cb, Cr.
var colors = [][3]byte{
	{235, 128, 128},
	{210, 16, 146},
	{170, 166, 16},
	{145, 54, 34},
	{107, 202, 222},
	{82, 90, 240},
	{41, 240, 110},
}

// ColorBars returns a reader producing count frames of color bars over a gray
// gradation and a noise area, then io.EOF. A negative count never ends. Only
// the noise changes between frames.
func ColorBars(width, height int, ratio image.YCbCrSubsampleRatio, count int) (video.Reader, error) {
	switch ratio {
	case image.YCbCrSubsampleRatio420:
		if width%2 != 0 || height%2 != 0 {
			return nil, fmt.Errorf("4:2:0 frame size %dx%d must be even", width, height)
		}
	case image.YCbCrSubsampleRatio444:
	default:
		return nil, fmt.Errorf("unsupported subsample ratio %s", ratio)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	base := image.NewYCbCr(image.Rect(0, 0, width, height), ratio)
	hColorBarEnd := height * 3 / 4
	wGradationEnd := width * 5 / 7
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			yi, ci := base.YOffset(x, y), base.COffset(x, y)
			switch {
			case y < hColorBarEnd:
				c := colors[x*7/width]
				base.Y[yi] = uint8(uint16(c[0]) * 75 / 100)
				base.Cb[ci] = c[1]
				base.Cr[ci] = c[2]
			case x < wGradationEnd:
				base.Y[yi] = uint8(x * 255 / wGradationEnd)
				base.Cb[ci] = 128
				base.Cr[ci] = 128
			default:
				base.Cb[ci] = 128
				base.Cr[ci] = 128
			}
		}
	}

	random := rand.New(rand.NewSource(0))
	img := *base
	img.Y = make([]byte, len(base.Y))

	var produced int
	return video.ReaderFunc(func() (image.Image, func(), error) {
		if count >= 0 && produced == count {
			return nil, func() {}, io.EOF
		}
		produced++

		copy(img.Y, base.Y)
		for y := hColorBarEnd; y < height; y++ {
			for x := wGradationEnd; x < width; x++ {
				img.Y[img.YOffset(x, y)] = uint8(random.Int31n(2) * 255)
			}
		}
		return &img, func() {}, nil
	}), nil
}
