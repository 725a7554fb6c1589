package frame

import "fmt"

// FrameSizeMap returns a function to get the number of bytes a frame will
// occupy in the given format
var FrameSizeMap = map[Format]frameSizeFunc{
	FormatI420: frameSizeI420,
	FormatI444: frameSizeI444,
	FormatNV21: frameSizeNV21,
	FormatNV12: frameSizeNV21, // NV12 and NV21 have the same frame size
}

type frameSizeFunc func(width, height int) uint

func frameSizeI420(width, height int) uint {
	yi := width * height
	cbi := yi + width*height/4
	cri := cbi + width*height/4
	return uint(cri)
}

func frameSizeI444(width, height int) uint {
	return uint(3 * width * height)
}

func frameSizeNV21(width, height int) uint {
	yi := width * height
	ci := yi + width*height/2
	return uint(ci)
}

// FrameSize returns the number of bytes one raw frame of format f occupies.
func FrameSize(f Format, width, height int) (int, error) {
	size, ok := FrameSizeMap[f]
	if !ok {
		return 0, fmt.Errorf("%s is not supported", f)
	}
	return int(size(width, height)), nil
}
