package video

import (
	"image"
	"testing"

	"github.com/pion/yuv2bgra/pkg/convert"
)

func TestMerge(t *testing.T) {
	var order []string
	mark := func(name string) TransformFunc {
		return func(r Reader) Reader {
			return ReaderFunc(func() (image.Image, func(), error) {
				order = append(order, name)
				return r.Read()
			})
		}
	}

	src := ReaderFunc(func() (image.Image, func(), error) {
		return image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420), func() {}, nil
	})
	r := Merge(mark("inner"), nil, ToBGRA(0xFF), mark("outer"))(src)

	img, _, err := r.Read()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := img.(*convert.BGRA); !ok {
		t.Fatalf("Expected *convert.BGRA, got %T", img)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("Unexpected transform call order: %v", order)
	}
}
