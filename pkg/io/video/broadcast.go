package video

import (
	"image"

	"github.com/pion/yuv2bgra/pkg/io"
)

// Broadcaster is a specialized video broadcaster.
type Broadcaster struct {
	ioBroadcaster *io.Broadcaster[image.Image]
}

// NewBroadcaster creates a new broadcaster.
func NewBroadcaster(source Reader, config *io.BroadcasterConfig) (*Broadcaster, error) {
	broadcaster, err := io.NewBroadcaster[image.Image](source, config)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{broadcaster}, nil
}

// NewReader creates a new reader. Each reader will retrieve the same data from the source.
// When copyFrame is true every reader owns a private copy of each frame, which it
// may modify; otherwise readers share the source's frame. Broadcaster uses a small ring
// buffer, this means that slow readers might miss some data if they're really late and the data is no longer
// in the ring buffer.
func (broadcaster *Broadcaster) NewReader(copyFrame bool) Reader {
	copyFn := func(src image.Image) image.Image { return src }

	if copyFrame {
		buffer := NewFrameBuffer(0)
		copyFn = func(src image.Image) image.Image {
			buffer.StoreCopy(src)
			return buffer.Load()
		}
	}

	return broadcaster.ioBroadcaster.NewReader(copyFn)
}

// ReplaceSource replaces the underlying source. This operation is thread safe.
func (broadcaster *Broadcaster) ReplaceSource(source Reader) error {
	return broadcaster.ioBroadcaster.ReplaceSource(source)
}

// Source retrieves the underlying source. This operation is thread safe.
func (broadcaster *Broadcaster) Source() Reader {
	return broadcaster.ioBroadcaster.Source()
}
