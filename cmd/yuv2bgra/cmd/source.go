package cmd

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/pion/yuv2bgra/pkg/frame"
	"github.com/pion/yuv2bgra/pkg/io/video"
)

// openInput opens path for reading; "-" is stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// rawFrameReader decodes back to back frames of format f from in. It returns
// io.EOF once in is exhausted on a frame boundary.
func rawFrameReader(in io.Reader, f frame.Format, width, height int) (video.Reader, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	f = frame.Format(strings.ToUpper(string(f)))
	decoder, err := frame.NewDecoder(f)
	if err != nil {
		return nil, err
	}
	size, err := frame.FrameSize(f, width, height)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	return video.ReaderFunc(func() (image.Image, func(), error) {
		if _, err := io.ReadFull(in, buf); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, func() {}, fmt.Errorf("truncated frame (want %d bytes): %w", size, err)
			}
			return nil, func() {}, err
		}
		return decoder.Decode(buf, width, height)
	}), nil
}

// randomFrameReader produces count frames of random content.
func randomFrameReader(r *rand.Rand, ratio image.YCbCrSubsampleRatio, width, height, count int) video.Reader {
	var produced int
	return video.ReaderFunc(func() (image.Image, func(), error) {
		if produced == count {
			return nil, func() {}, io.EOF
		}
		produced++

		img := image.NewYCbCr(image.Rect(0, 0, width, height), ratio)
		r.Read(img.Y)
		r.Read(img.Cb)
		r.Read(img.Cr)
		return img, func() {}, nil
	})
}
