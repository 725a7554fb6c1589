package vec128

import (
	"github.com/pion/yuv2bgra/internal/simd"
	"github.com/pion/yuv2bgra/pkg/convert/base"
)

// Fixed-point weights laid out as repeating 16-bit pairs so a single
// multiply-add evaluates weight*sample + weight*sample per 32-bit lane.
// Luma is paired with 1 so its pair also adds the rounding term.
var (
	k16YRGBRound = simd.Splat16x2(base.YToRGBWeight, base.RoundTerm)
	k16VRed      = simd.Splat16x2(base.VToRedWeight, 0)
	k16UVGreen   = simd.Splat16x2(base.UToGreenWeight, base.VToGreenWeight)
	k16UBlue     = simd.Splat16x2(base.UToBlueWeight, 0)

	k16YAdjust  = simd.Splat16(base.YAdjust)
	k16UVAdjust = simd.Splat16(base.UVAdjust)
	k16One      = simd.Splat16(1)
	k16Max      = simd.Splat16(0xff)
)

func saturateI16ToU8(v simd.Vec) simd.Vec {
	return simd.Min16(k16Max, simd.Max16(v, simd.Zero))
}

func adjustedYUVToBlue32(y1, u0 simd.Vec) simd.Vec {
	return simd.ShiftRightArith32(simd.Add32(
		simd.MulAdd16(y1, k16YRGBRound), simd.MulAdd16(u0, k16UBlue)), base.Shift)
}

func adjustedYUVToGreen32(y1, uv simd.Vec) simd.Vec {
	return simd.ShiftRightArith32(simd.Add32(
		simd.MulAdd16(y1, k16YRGBRound), simd.MulAdd16(uv, k16UVGreen)), base.Shift)
}

func adjustedYUVToRed32(y1, v0 simd.Vec) simd.Vec {
	return simd.ShiftRightArith32(simd.Add32(
		simd.MulAdd16(y1, k16YRGBRound), simd.MulAdd16(v0, k16VRed)), base.Shift)
}

// adjustedYUVToBlue16 returns eight blue values in [0, 255], one per 16-bit lane.
func adjustedYUVToBlue16(y16, u16 simd.Vec) simd.Vec {
	return saturateI16ToU8(simd.PackSat32(
		adjustedYUVToBlue32(simd.UnpackLo16(y16, k16One), simd.UnpackLo16(u16, simd.Zero)),
		adjustedYUVToBlue32(simd.UnpackHi16(y16, k16One), simd.UnpackHi16(u16, simd.Zero))))
}

func adjustedYUVToGreen16(y16, u16, v16 simd.Vec) simd.Vec {
	return saturateI16ToU8(simd.PackSat32(
		adjustedYUVToGreen32(simd.UnpackLo16(y16, k16One), simd.UnpackLo16(u16, v16)),
		adjustedYUVToGreen32(simd.UnpackHi16(y16, k16One), simd.UnpackHi16(u16, v16))))
}

func adjustedYUVToRed16(y16, v16 simd.Vec) simd.Vec {
	return saturateI16ToU8(simd.PackSat32(
		adjustedYUVToRed32(simd.UnpackLo16(y16, k16One), simd.UnpackLo16(v16, simd.Zero)),
		adjustedYUVToRed32(simd.UnpackHi16(y16, k16One), simd.UnpackHi16(v16, simd.Zero))))
}

// alphaVec places alpha in the high byte of every 16-bit lane, ready to be
// merged with the red channel.
func alphaVec(alpha uint8) simd.Vec {
	return simd.ShiftLeftBytes(simd.Splat16(int16(alpha)), 1)
}

// adjustedYUV16ToBGRA converts eight pixels and writes 32 bytes of BGRA.
// Blue and green are merged into one 16-bit lane, red and alpha into
// another, and a 16-bit interleave of the two yields B G R A byte order.
func adjustedYUV16ToBGRA[M memory](m M, y16, u16, v16, a0 simd.Vec, bgra []byte) {
	b16 := adjustedYUVToBlue16(y16, u16)
	g16 := adjustedYUVToGreen16(y16, u16, v16)
	r16 := adjustedYUVToRed16(y16, v16)
	bg8 := simd.Or(b16, simd.ShiftLeftBytes(g16, 1))
	ra8 := simd.Or(r16, a0)
	m.store(bgra, simd.UnpackLo16(bg8, ra8))
	m.store(bgra[simd.Width:], simd.UnpackHi16(bg8, ra8))
}

func yuv16ToBGRA[M memory](m M, y16, u16, v16, a0 simd.Vec, bgra []byte) {
	adjustedYUV16ToBGRA(m,
		simd.SubSat16(y16, k16YAdjust),
		simd.SubSat16(u16, k16UVAdjust),
		simd.SubSat16(v16, k16UVAdjust),
		a0, bgra)
}

// yuv8ToBGRA converts one batch of A pixels whose chroma is already at luma
// resolution, writing 4*A bytes.
func yuv8ToBGRA[M memory](m M, y8, u8, v8, a0 simd.Vec, bgra []byte) {
	yuv16ToBGRA(m, simd.UnpackLo8(y8, simd.Zero), simd.UnpackLo8(u8, simd.Zero),
		simd.UnpackLo8(v8, simd.Zero), a0, bgra)
	yuv16ToBGRA(m, simd.UnpackHi8(y8, simd.Zero), simd.UnpackHi8(u8, simd.Zero),
		simd.UnpackHi8(v8, simd.Zero), a0, bgra[2*simd.Width:])
}
