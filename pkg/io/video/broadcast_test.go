package video

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/yuv2bgra/pkg/convert"
)

func TestBroadcastConvertedFrames(t *testing.T) {
	var frames int
	src := ReaderFunc(func() (image.Image, func(), error) {
		frames++
		img := image.NewYCbCr(image.Rect(0, 0, 32, 2), image.YCbCrSubsampleRatio420)
		for i := range img.Y {
			img.Y[i] = uint8(16 + frames)
		}
		for i := range img.Cb {
			img.Cb[i] = 128
			img.Cr[i] = 128
		}
		return img, func() {}, nil
	})

	broadcaster, err := NewBroadcaster(ToBGRA(0xFF)(src), nil)
	require.NoError(t, err)

	shared := broadcaster.NewReader(false)
	owned := broadcaster.NewReader(true)

	for i := 1; i <= 3; i++ {
		a, _, err := shared.Read()
		require.NoError(t, err)
		b, _, err := owned.Read()
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.NotSame(t, a, b)
		assert.Equal(t, i, frames)

		img := b.(*convert.BGRA)
		// Writes to a private copy never reach the other readers.
		img.Pix[0] = 0
		assert.Equal(t, uint8(0xFF), img.Pix[3])
	}
}

func TestBroadcastReplaceSource(t *testing.T) {
	first := ReaderFunc(func() (image.Image, func(), error) {
		return image.NewGray(image.Rect(0, 0, 1, 1)), func() {}, nil
	})
	broadcaster, err := NewBroadcaster(first, nil)
	require.NoError(t, err)

	assert.Error(t, broadcaster.ReplaceSource(nil))

	second := ReaderFunc(func() (image.Image, func(), error) {
		return image.NewGray(image.Rect(0, 0, 2, 2)), func() {}, nil
	})
	require.NoError(t, broadcaster.ReplaceSource(second))

	img, _, err := broadcaster.NewReader(false).Read()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
}
