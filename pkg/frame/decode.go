package frame

import (
	"fmt"
)

// NewDecoder returns a Decoder that turns raw frames of format f into
// *image.YCbCr images with 4:2:0 or 4:4:4 chroma.
func NewDecoder(f Format) (Decoder, error) {
	var decoder decoderFunc

	switch f {
	case FormatI420:
		decoder = decodeI420
	case FormatI444:
		decoder = decodeI444
	case FormatNV21:
		decoder = decodeNV21
	case FormatNV12:
		decoder = decodeNV12
	default:
		return nil, fmt.Errorf("%s is not supported", f)
	}

	return decoder, nil
}
