// Package video chains image transforms over a pull-based frame source. Its
// central transform, ToBGRA, turns decoded YCbCr frames into packed BGRA.
package video

import (
	"image"

	"github.com/pion/yuv2bgra/pkg/io"
)

// Reader pulls one frame at a time. The frame is only valid until release is
// called or the next Read.
type Reader = io.Reader[image.Image]

// ReaderFunc is a proxy type to make easier for users to implement Reader
type ReaderFunc = io.ReaderFunc[image.Image]

// TransformFunc produces a new Reader that will produces a transformed video
type TransformFunc func(r Reader) Reader

// Merge merges transforms and produces a new TransformFunc that will execute
// transforms in order. nil transforms are skipped.
func Merge(transforms ...TransformFunc) TransformFunc {
	return func(r Reader) Reader {
		for _, transform := range transforms {
			if transform == nil {
				continue
			}

			r = transform(r)
		}

		return r
	}
}
