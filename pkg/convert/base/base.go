// Package base is the scalar reference implementation of the planar YUV to
// BGRA conversions. It accepts any geometry and is used as the fallback when
// no vector tier applies and as the reference the vector tiers are checked
// against.
package base

// YUV444pToBGRA converts a frame whose chroma planes match the luma plane.
func YUV444pToBGRA(y []byte, yStride int, u []byte, uStride int, v []byte, vStride int,
	width, height int, bgra []byte, bgraStride int, alpha uint8) {
	for row := 0; row < height; row++ {
		yRow := y[row*yStride : row*yStride+width]
		uRow := u[row*uStride : row*uStride+width]
		vRow := v[row*vStride : row*vStride+width]
		out := bgra[row*bgraStride : row*bgraStride+4*width]
		for col := range yRow {
			YUVToBGRA(yRow[col], uRow[col], vRow[col], alpha, out[4*col:])
		}
	}
}

// YUV420pToBGRA converts a frame whose chroma planes have half the luma
// width and height. Each chroma sample covers a 2x2 block of output pixels.
// width and height must be even.
func YUV420pToBGRA(y []byte, yStride int, u []byte, uStride int, v []byte, vStride int,
	width, height int, bgra []byte, bgraStride int, alpha uint8) {
	if width%2 != 0 || height%2 != 0 {
		panic("base: YUV420p width and height must be even")
	}

	for row := 0; row < height; row += 2 {
		uRow := u[(row/2)*uStride : (row/2)*uStride+width/2]
		vRow := v[(row/2)*vStride : (row/2)*vStride+width/2]
		y0 := y[row*yStride : row*yStride+width]
		y1 := y[(row+1)*yStride : (row+1)*yStride+width]
		out0 := bgra[row*bgraStride : row*bgraStride+4*width]
		out1 := bgra[(row+1)*bgraStride : (row+1)*bgraStride+4*width]
		for c := range uRow {
			yuv420pToBGRA2x2(y0[2*c:], y1[2*c:], uRow[c], vRow[c], alpha, out0[8*c:], out1[8*c:])
		}
	}
}

func yuv420pToBGRA2x2(y0, y1 []byte, u, v, alpha uint8, out0, out1 []byte) {
	uu, vv := int(u)-UVAdjust, int(v)-UVAdjust
	for i := 0; i < 2; i++ {
		adjustedToBGRA(int(y0[i])-YAdjust, uu, vv, alpha, out0[4*i:])
		adjustedToBGRA(int(y1[i])-YAdjust, uu, vv, alpha, out1[4*i:])
	}
}

func adjustedToBGRA(y, u, v int, alpha uint8, out []byte) {
	_ = out[3]
	out[0] = AdjustedYUVToBlue(y, u)
	out[1] = AdjustedYUVToGreen(y, u, v)
	out[2] = AdjustedYUVToRed(y, v)
	out[3] = alpha
}
