package vec128

import "github.com/pion/yuv2bgra/internal/simd"

// yuv420pRowToBGRA converts DA luma samples of one row. u and v hold A chroma
// samples; each one is doubled horizontally to cover two luma columns.
func yuv420pRowToBGRA[M memory](m M, y []byte, u, v, a0 simd.Vec, bgra []byte) {
	yuv8ToBGRA(m, m.load(y), simd.UnpackLo8(u, u), simd.UnpackLo8(v, v), a0, bgra)
	yuv8ToBGRA(m, m.load(y[A:]), simd.UnpackHi8(u, u), simd.UnpackHi8(v, v), a0, bgra[QA:])
}

func yuv420pToBGRA[M memory](y []byte, yStride int, u []byte, uStride int, v []byte, vStride int,
	width, height int, bgra []byte, bgraStride int, alpha uint8) {
	var m M
	a0 := alphaVec(alpha)
	bodyWidth := simd.AlignLo(width, DA)
	tail := width - bodyWidth

	var yOff, uOff, vOff, bgraOff int
	for row := 0; row < height; row += 2 {
		for colUV, colY := 0, 0; colY < bodyWidth; colY, colUV = colY+DA, colUV+A {
			u8 := m.load(u[uOff+colUV:])
			v8 := m.load(v[vOff+colUV:])
			yuv420pRowToBGRA(m, y[yOff+colY:], u8, v8, a0, bgra[bgraOff+4*colY:])
			yuv420pRowToBGRA(m, y[yOff+yStride+colY:], u8, v8, a0, bgra[bgraOff+bgraStride+4*colY:])
		}
		if tail != 0 {
			offset := width - DA
			u8 := simd.Load(u[uOff+offset/2:])
			v8 := simd.Load(v[vOff+offset/2:])
			yuv420pRowToBGRA(unaligned{}, y[yOff+offset:], u8, v8, a0, bgra[bgraOff+4*offset:])
			yuv420pRowToBGRA(unaligned{}, y[yOff+yStride+offset:], u8, v8, a0, bgra[bgraOff+bgraStride+4*offset:])
		}
		yOff += 2 * yStride
		uOff += uStride
		vOff += vStride
		bgraOff += 2 * bgraStride
	}
}
