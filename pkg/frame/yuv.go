package frame

import (
	"fmt"
	"image"
)

func checkEven(width, height int) error {
	if width%2 != 0 || height%2 != 0 {
		return fmt.Errorf("4:2:0 frame size %dx%d must be even", width, height)
	}
	return nil
}

func decodeI420(frame []byte, width, height int) (image.Image, func(), error) {
	if err := checkEven(width, height); err != nil {
		return nil, func() {}, err
	}

	yi := width * height
	cbi := yi + width*height/4
	cri := cbi + width*height/4

	if cri > len(frame) {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), cri)
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             frame[yi:cbi:cbi],
		Cr:             frame[cbi:cri:cri],
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}

func decodeI444(frame []byte, width, height int) (image.Image, func(), error) {
	yi := width * height
	cbi := 2 * yi
	cri := 3 * yi

	if cri > len(frame) {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), cri)
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             frame[yi:cbi:cbi],
		Cr:             frame[cbi:cri:cri],
		CStride:        width,
		SubsampleRatio: image.YCbCrSubsampleRatio444,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}

// decodeSemiPlanar splits the interleaved chroma plane of NV12/NV21 frames.
// cbFirst is true for NV12.
func decodeSemiPlanar(frame []byte, width, height int, cbFirst bool) (image.Image, func(), error) {
	if err := checkEven(width, height); err != nil {
		return nil, func() {}, err
	}

	yi := width * height
	ci := yi + width*height/2

	if ci > len(frame) {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), ci)
	}

	n := (ci - yi) / 2
	cb := make([]byte, n)
	cr := make([]byte, n)
	first, second := cr, cb
	if cbFirst {
		first, second = cb, cr
	}
	for i, j := yi, 0; j < n; i, j = i+2, j+1 {
		first[j] = frame[i]
		second[j] = frame[i+1]
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             cb,
		Cr:             cr,
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}

func decodeNV21(frame []byte, width, height int) (image.Image, func(), error) {
	return decodeSemiPlanar(frame, width, height, false)
}

func decodeNV12(frame []byte, width, height int) (image.Image, func(), error) {
	return decodeSemiPlanar(frame, width, height, true)
}
