package video

import (
	"image"
	"image/color"
	"math/rand"
	"reflect"
	"testing"

	"github.com/pion/yuv2bgra/pkg/convert"
)

func randomize(arr []uint8) {
	for i := range arr {
		arr[i] = uint8(rand.Uint32())
	}
}

func BenchmarkFrameBufferCopyOptimized(b *testing.B) {
	frameBuffer := NewFrameBuffer(0)
	resolution := image.Rect(0, 0, 1920, 1080)
	src := convert.NewBGRA(resolution)

	for i := 0; i < b.N; i++ {
		frameBuffer.StoreCopy(src)
	}
}

func BenchmarkFrameBufferCopyNaive(b *testing.B) {
	resolution := image.Rect(0, 0, 1920, 1080)
	src := convert.NewBGRA(resolution)
	var dst image.Image

	for i := 0; i < b.N; i++ {
		clone := *src
		clone.Pix = make([]uint8, len(src.Pix))
		copy(clone.Pix, src.Pix)
		dst = &clone
		_ = dst
	}
}

func TestFrameBufferStoreCopyAndLoad(t *testing.T) {
	resolution := image.Rect(0, 0, 16, 8)
	rgbaLike := image.NewRGBA(resolution)
	randomize(rgbaLike.Pix)
	testCases := map[string]struct {
		New    func() image.Image
		Update func(image.Image)
	}{
		"BGRA": {
			New: func() image.Image {
				return (*convert.BGRA)(rgbaLike)
			},
			Update: func(src image.Image) {
				img := src.(*convert.BGRA)
				randomize(img.Pix)
			},
		},
		"Gray": {
			New: func() image.Image {
				img := image.NewGray(resolution)
				randomize(img.Pix)
				return img
			},
			Update: func(src image.Image) {
				img := src.(*image.Gray)
				randomize(img.Pix)
			},
		},
		"NRGBA": {
			New: func() image.Image {
				return (*image.NRGBA)(rgbaLike)
			},
			Update: func(src image.Image) {
				img := src.(*image.NRGBA)
				randomize(img.Pix)
			},
		},
		"RGBA": {
			New: func() image.Image {
				return rgbaLike
			},
			Update: func(src image.Image) {
				img := src.(*image.RGBA)
				randomize(img.Pix)
			},
		},
		"YCbCr": {
			New: func() image.Image {
				img := image.NewYCbCr(resolution, image.YCbCrSubsampleRatio420)
				randomize(img.Y)
				randomize(img.Cb)
				randomize(img.Cr)
				img.CStride = 10
				img.YStride = 5
				return img
			},
			Update: func(src image.Image) {
				img := src.(*image.YCbCr)
				randomize(img.Y)
				randomize(img.Cb)
				randomize(img.Cr)
				img.CStride = 3
				img.YStride = 2
			},
		},
	}

	frameBuffer := NewFrameBuffer(0)

	for name, testCase := range testCases {
		// Since the test also wants to make sure that Copier can convert from 1 type to another,
		// t.Run is not ideal since it'll run the tests separately
		t.Log("Testing", name)

		src := testCase.New()
		frameBuffer.StoreCopy(src)
		if !reflect.DeepEqual(frameBuffer.Load(), src) {
			t.Fatal("Expected the copied image to be identical with the source")
		}

		testCase.Update(src)
		frameBuffer.StoreCopy(src)
		if !reflect.DeepEqual(frameBuffer.Load(), src) {
			t.Fatal("Expected the copied image to be identical with the source after an update in source")
		}
	}
}

func TestFrameBufferStoreCopyFallback(t *testing.T) {
	src := image.NewNRGBA64(image.Rect(0, 0, 2, 1))
	src.SetNRGBA64(0, 0, color.NRGBA64{R: 0xFFFF, A: 0xFFFF})
	src.SetNRGBA64(1, 0, color.NRGBA64{B: 0xFFFF, A: 0xFFFF})

	frameBuffer := NewFrameBuffer(0)
	frameBuffer.StoreCopy(src)

	img, ok := frameBuffer.Load().(*convert.BGRA)
	if !ok {
		t.Fatalf("Expected *convert.BGRA, got %T", frameBuffer.Load())
	}
	expected := []uint8{0x00, 0x00, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0xFF}
	if !reflect.DeepEqual(expected, img.Pix) {
		t.Errorf("Expected pixels %v, got %v", expected, img.Pix)
	}
}
