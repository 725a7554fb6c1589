package base

// BT.601 studio-range YUV -> RGB in 13-bit fixed point.
//
//	B = 1.164*(Y-16) + 2.018*(U-128)
//	G = 1.164*(Y-16) - 0.391*(U-128) - 0.813*(V-128)
//	R = 1.164*(Y-16)                 + 1.596*(V-128)
const (
	YAdjust  = 16
	UVAdjust = 128

	Shift     = 13
	RoundTerm = 1 << (Shift - 1)

	YToRGBWeight   = 9535   // 1.164
	UToBlueWeight  = 16531  // 2.018
	UToGreenWeight = -3203  // -0.391
	VToGreenWeight = -6660  // -0.813
	VToRedWeight   = 13074  // 1.596
)

func restrictRange(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// AdjustedYUVToBlue expects y already reduced by YAdjust and u by UVAdjust.
func AdjustedYUVToBlue(y, u int) uint8 {
	return restrictRange((YToRGBWeight*y + UToBlueWeight*u + RoundTerm) >> Shift)
}

func AdjustedYUVToGreen(y, u, v int) uint8 {
	return restrictRange((YToRGBWeight*y + UToGreenWeight*u + VToGreenWeight*v + RoundTerm) >> Shift)
}

func AdjustedYUVToRed(y, v int) uint8 {
	return restrictRange((YToRGBWeight*y + VToRedWeight*v + RoundTerm) >> Shift)
}

// YUVToBlue converts a luma and blue-difference sample to the blue channel.
func YUVToBlue(y, u uint8) uint8 {
	return AdjustedYUVToBlue(int(y)-YAdjust, int(u)-UVAdjust)
}

// YUVToGreen converts a full sample triple to the green channel.
func YUVToGreen(y, u, v uint8) uint8 {
	return AdjustedYUVToGreen(int(y)-YAdjust, int(u)-UVAdjust, int(v)-UVAdjust)
}

// YUVToRed converts a luma and red-difference sample to the red channel.
func YUVToRed(y, v uint8) uint8 {
	return AdjustedYUVToRed(int(y)-YAdjust, int(v)-UVAdjust)
}

// YUVToBGR converts one sample triple. Results are saturated to [0, 255].
func YUVToBGR(y, u, v uint8) (b, g, r uint8) {
	yy, uu, vv := int(y)-YAdjust, int(u)-UVAdjust, int(v)-UVAdjust
	return AdjustedYUVToBlue(yy, uu), AdjustedYUVToGreen(yy, uu, vv), AdjustedYUVToRed(yy, vv)
}

// YUVToBGRA writes one pixel into the first four bytes of bgra.
func YUVToBGRA(y, u, v, alpha uint8, bgra []byte) {
	_ = bgra[3]
	bgra[0], bgra[1], bgra[2] = YUVToBGR(y, u, v)
	bgra[3] = alpha
}
