package video

import (
	"image"
	"time"
)

// DetectChanges will detect frame and video property changes. For video property detection,
// since it's time related, interval will be used to determine the sample rate.
func DetectChanges(interval time.Duration, onChange func(Property)) TransformFunc {
	return func(r Reader) Reader {
		var currentProp Property
		var lastTaken time.Time
		var frames uint
		return ReaderFunc(func() (image.Image, func(), error) {
			var dirty bool

			img, release, err := r.Read()
			if err != nil {
				return nil, func() {}, err
			}

			bounds := img.Bounds()
			if currentProp.Width != bounds.Dx() {
				currentProp.Width = bounds.Dx()
				dirty = true
			}

			if currentProp.Height != bounds.Dy() {
				currentProp.Height = bounds.Dy()
				dirty = true
			}

			// The chroma layout decides which converter handles the frame.
			yuv, isYCbCr := img.(*image.YCbCr)
			if currentProp.YCbCr != isYCbCr {
				currentProp.YCbCr = isYCbCr
				dirty = true
			}
			if isYCbCr && currentProp.SubsampleRatio != yuv.SubsampleRatio {
				currentProp.SubsampleRatio = yuv.SubsampleRatio
				dirty = true
			}

			now := time.Now()
			elapsed := now.Sub(lastTaken)
			if elapsed >= interval {
				fps := float32(float64(frames) / elapsed.Seconds())
				currentProp.FrameRate = fps
				frames = 0
				lastTaken = now
				dirty = true
			}

			if dirty {
				onChange(currentProp)
			}

			frames++
			return img, release, nil
		})
	}
}
