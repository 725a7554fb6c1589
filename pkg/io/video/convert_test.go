package video

import (
	"errors"
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/yuv2bgra/pkg/convert"
	"github.com/pion/yuv2bgra/pkg/convert/base"
)

var imageSizes = map[string][2]int{
	"480p":  {720, 480},
	"1080p": {1920, 1080},
}

func TestToBGRA(t *testing.T) {
	cases := map[string]struct {
		src      image.Image
		expected image.Image
	}{
		"I444": {
			src: &image.YCbCr{
				SubsampleRatio: image.YCbCrSubsampleRatio444,
				Y: []uint8{
					0x10, 0xEB,
				},
				Cb: []uint8{
					0x80, 0x80,
				},
				Cr: []uint8{
					0x80, 0x80,
				},
				YStride: 2,
				CStride: 2,
				Rect:    image.Rect(0, 0, 2, 1),
			},
			expected: &convert.BGRA{
				Pix: []uint8{
					0x00, 0x00, 0x00, 0x80, 0xFF, 0xFF, 0xFF, 0x80,
				},
				Stride: 8,
				Rect:   image.Rect(0, 0, 2, 1),
			},
		},
		"I422": {
			src: &image.YCbCr{
				SubsampleRatio: image.YCbCrSubsampleRatio422,
				Y: []uint8{
					0x10, 0xEB,
				},
				Cb: []uint8{
					0x80,
				},
				Cr: []uint8{
					0x80,
				},
				YStride: 2,
				CStride: 1,
				Rect:    image.Rect(0, 0, 2, 1),
			},
			expected: &convert.BGRA{
				Pix: []uint8{
					0x00, 0x00, 0x00, 0x80, 0xFF, 0xFF, 0xFF, 0x80,
				},
				Stride: 8,
				Rect:   image.Rect(0, 0, 2, 1),
			},
		},
		"RGBA": {
			src: &image.RGBA{
				Pix: []uint8{
					0x01, 0x02, 0x03, 0xFF, 0x04, 0x05, 0x06, 0xFF,
				},
				Stride: 8,
				Rect:   image.Rect(0, 0, 2, 1),
			},
			expected: &convert.BGRA{
				Pix: []uint8{
					0x03, 0x02, 0x01, 0xFF, 0x06, 0x05, 0x04, 0xFF,
				},
				Stride: 8,
				Rect:   image.Rect(0, 0, 2, 1),
			},
		},
		"BGRA": {
			src: &convert.BGRA{
				Pix: []uint8{
					0x01, 0x02, 0x03, 0x04,
				},
				Stride: 4,
				Rect:   image.Rect(0, 0, 1, 1),
			},
			expected: &convert.BGRA{
				Pix: []uint8{
					0x01, 0x02, 0x03, 0x04,
				},
				Stride: 4,
				Rect:   image.Rect(0, 0, 1, 1),
			},
		},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			var released bool
			r := ToBGRA(0x80)(ReaderFunc(func() (image.Image, func(), error) {
				return c.src, func() { released = true }, nil
			}))
			for i := 0; i < 4; i++ {
				out, _, err := r.Read()
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if !reflect.DeepEqual(c.expected, out) {
					t.Errorf("Expected output image:\n%v\ngot:\n%v\n", c.expected, out)
				}
			}
			if !released {
				t.Error("Expected the source frame to be released")
			}
		})
	}
}

func TestToBGRAOddFrame(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 35, 3), image.YCbCrSubsampleRatio420)
	randomize(src.Y)
	randomize(src.Cb)
	randomize(src.Cr)

	r := ToBGRA(0xFF)(ReaderFunc(func() (image.Image, func(), error) {
		return src, nil, nil
	}))
	out, _, err := r.Read()
	require.NoError(t, err)

	img := out.(*convert.BGRA)
	require.Equal(t, src.Rect, img.Rect)
	for y := 0; y < 3; y++ {
		for x := 0; x < 35; x++ {
			ci := src.COffset(x, y)
			b, g, r := base.YUVToBGR(src.Y[src.YOffset(x, y)], src.Cb[ci], src.Cr[ci])
			assert.Equal(t, color.NRGBA{R: r, G: g, B: b, A: 0xFF}, img.NRGBAAt(x, y), "(%d, %d)", x, y)
		}
	}
}

func TestToBGRAError(t *testing.T) {
	errSource := errors.New("source failed")
	r := ToBGRA(0)(ReaderFunc(func() (image.Image, func(), error) {
		return nil, func() {}, errSource
	}))
	_, _, err := r.Read()
	assert.ErrorIs(t, err, errSource)
}

func TestToBGRAMatchesFrameConverter(t *testing.T) {
	for name, size := range imageSizes {
		size := size
		t.Run(name, func(t *testing.T) {
			src := image.NewYCbCr(image.Rect(0, 0, size[0], size[1]), image.YCbCrSubsampleRatio420)
			randomize(src.Y)
			randomize(src.Cb)
			randomize(src.Cr)

			var expected convert.BGRA
			require.NoError(t, convert.YCbCrToBGRA(&expected, src, 0xFF))

			r := ToBGRA(0xFF)(ReaderFunc(func() (image.Image, func(), error) {
				return src, func() {}, nil
			}))
			out, _, err := r.Read()
			require.NoError(t, err)
			assert.Equal(t, &expected, out)
		})
	}
}

func BenchmarkToBGRA(b *testing.B) {
	for name, size := range imageSizes {
		src := image.NewYCbCr(image.Rect(0, 0, size[0], size[1]), image.YCbCrSubsampleRatio420)
		randomize(src.Y)
		randomize(src.Cb)
		randomize(src.Cr)
		r := ToBGRA(0xFF)(ReaderFunc(func() (image.Image, func(), error) {
			return src, func() {}, nil
		}))

		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := r.Read(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
