package vec128

import "github.com/pion/yuv2bgra/internal/simd"

func yuv444pToBGRA[M memory](y []byte, yStride int, u []byte, uStride int, v []byte, vStride int,
	width, height int, bgra []byte, bgraStride int, alpha uint8) {
	var m M
	a0 := alphaVec(alpha)
	bodyWidth := simd.AlignLo(width, A)
	tail := width - bodyWidth

	var yOff, uOff, vOff, bgraOff int
	for row := 0; row < height; row++ {
		for col := 0; col < bodyWidth; col += A {
			yuv8ToBGRA(m, m.load(y[yOff+col:]), m.load(u[uOff+col:]), m.load(v[vOff+col:]),
				a0, bgra[bgraOff+4*col:])
		}
		if tail != 0 {
			// Last A columns again, so the remainder is covered by one full batch.
			col := width - A
			yuv8ToBGRA(unaligned{}, simd.Load(y[yOff+col:]), simd.Load(u[uOff+col:]), simd.Load(v[vOff+col:]),
				a0, bgra[bgraOff+4*col:])
		}
		yOff += yStride
		uOff += uStride
		vOff += vStride
		bgraOff += bgraStride
	}
}
