// Package simd emulates a 128-bit integer vector register in portable Go.
//
// Vec holds 16 bytes. Wider lanes (16 and 32 bit) are viewed in little-endian
// order regardless of the host, so a sequence of operations produces the same
// bytes on every platform. The operation set is the one needed by the pixel
// kernels in this module: loads and stores, lane interleaving, saturating
// 16-bit arithmetic, pairwise multiply-add into 32-bit lanes and packing back
// down with saturation.
package simd

import "unsafe"

// Width is the size of a Vec in bytes.
const Width = 16

// Vec is a 128-bit register.
type Vec [Width]uint8

// Zero is the all-zero register.
var Zero Vec

// Aligned reports whether the first element of p sits on a Width boundary.
// An empty slice is never aligned.
func Aligned(p []byte) bool {
	if len(p) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&p[0]))%Width == 0
}

// AlignedSize reports whether n is a multiple of Width.
func AlignedSize(n int) bool {
	return n%Width == 0
}

// AlignLo rounds n down to a multiple of align, which must be a power of two.
func AlignLo(n, align int) int {
	return n &^ (align - 1)
}

// Load reads Width bytes from the start of p.
func Load(p []byte) Vec {
	var v Vec
	copy(v[:], p[:Width])
	return v
}

// LoadAligned reads Width bytes from the start of p through a direct array
// view. Callers use it only when p is known to be aligned.
func LoadAligned(p []byte) Vec {
	return *(*[Width]uint8)(p[:Width])
}

// Store writes v to the first Width bytes of p.
func Store(p []byte, v Vec) {
	copy(p[:Width], v[:])
}

// StoreAligned writes v through a direct array view of p.
func StoreAligned(p []byte, v Vec) {
	*(*[Width]uint8)(p[:Width]) = v
}

// Splat16 broadcasts x into all eight 16-bit lanes.
func Splat16(x int16) Vec {
	var v Vec
	for i := 0; i < 8; i++ {
		v.setI16(i, x)
	}
	return v
}

// Splat16x2 fills the 16-bit lanes with the repeating pair (lo, hi).
func Splat16x2(lo, hi int16) Vec {
	var v Vec
	for i := 0; i < 8; i += 2 {
		v.setI16(i, lo)
		v.setI16(i+1, hi)
	}
	return v
}

func (v *Vec) i16(i int) int16 {
	return int16(uint16(v[2*i]) | uint16(v[2*i+1])<<8)
}

func (v *Vec) setI16(i int, x int16) {
	v[2*i] = uint8(x)
	v[2*i+1] = uint8(uint16(x) >> 8)
}

func (v *Vec) i32(i int) int32 {
	return int32(uint32(v[4*i]) | uint32(v[4*i+1])<<8 | uint32(v[4*i+2])<<16 | uint32(v[4*i+3])<<24)
}

func (v *Vec) setI32(i int, x int32) {
	u := uint32(x)
	v[4*i] = uint8(u)
	v[4*i+1] = uint8(u >> 8)
	v[4*i+2] = uint8(u >> 16)
	v[4*i+3] = uint8(u >> 24)
}

// I16 returns the i-th signed 16-bit lane.
func (v Vec) I16(i int) int16 {
	return v.i16(i)
}

// I32 returns the i-th signed 32-bit lane.
func (v Vec) I32(i int) int32 {
	return v.i32(i)
}
