package simd

// UnpackLo8 interleaves the low 8 bytes of a and b: a0 b0 a1 b1 ... a7 b7.
func UnpackLo8(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 8; i++ {
		r[2*i] = a[i]
		r[2*i+1] = b[i]
	}
	return r
}

// UnpackHi8 interleaves the high 8 bytes of a and b: a8 b8 a9 b9 ... a15 b15.
func UnpackHi8(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 8; i++ {
		r[2*i] = a[8+i]
		r[2*i+1] = b[8+i]
	}
	return r
}

// UnpackLo16 interleaves the low four 16-bit lanes of a and b.
func UnpackLo16(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 4; i++ {
		r.setI16(2*i, a.i16(i))
		r.setI16(2*i+1, b.i16(i))
	}
	return r
}

// UnpackHi16 interleaves the high four 16-bit lanes of a and b.
func UnpackHi16(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 4; i++ {
		r.setI16(2*i, a.i16(4+i))
		r.setI16(2*i+1, b.i16(4+i))
	}
	return r
}

// SubSat16 subtracts the signed 16-bit lanes of b from a, saturating to
// [-32768, 32767].
func SubSat16(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 8; i++ {
		r.setI16(i, saturate16(int32(a.i16(i))-int32(b.i16(i))))
	}
	return r
}

// Min16 is the lane-wise signed minimum of 16-bit lanes.
func Min16(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 8; i++ {
		x, y := a.i16(i), b.i16(i)
		if y < x {
			x = y
		}
		r.setI16(i, x)
	}
	return r
}

// Max16 is the lane-wise signed maximum of 16-bit lanes.
func Max16(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 8; i++ {
		x, y := a.i16(i), b.i16(i)
		if y > x {
			x = y
		}
		r.setI16(i, x)
	}
	return r
}

// MulAdd16 multiplies the signed 16-bit lanes of a and b and adds adjacent
// products into four 32-bit lanes: r[i] = a[2i]*b[2i] + a[2i+1]*b[2i+1].
func MulAdd16(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 4; i++ {
		lo := int32(a.i16(2*i)) * int32(b.i16(2*i))
		hi := int32(a.i16(2*i+1)) * int32(b.i16(2*i+1))
		r.setI32(i, lo+hi)
	}
	return r
}

// Add32 adds the 32-bit lanes of a and b with wraparound.
func Add32(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 4; i++ {
		r.setI32(i, a.i32(i)+b.i32(i))
	}
	return r
}

// ShiftRightArith32 shifts each signed 32-bit lane right by n, replicating the
// sign bit.
func ShiftRightArith32(a Vec, n uint) Vec {
	var r Vec
	for i := 0; i < 4; i++ {
		r.setI32(i, a.i32(i)>>n)
	}
	return r
}

// PackSat32 narrows the 32-bit lanes of a (low half) and b (high half) to
// signed 16-bit lanes with saturation.
func PackSat32(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 4; i++ {
		r.setI16(i, saturate16(a.i32(i)))
		r.setI16(4+i, saturate16(b.i32(i)))
	}
	return r
}

// ShiftLeftBytes shifts the whole register towards higher byte addresses by
// n bytes, filling with zeros.
func ShiftLeftBytes(a Vec, n int) Vec {
	var r Vec
	if n >= Width {
		return r
	}
	copy(r[n:], a[:Width-n])
	return r
}

// Or is the bitwise or of a and b.
func Or(a, b Vec) Vec {
	var r Vec
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

func saturate16(x int32) int16 {
	if x > 32767 {
		return 32767
	}
	if x < -32768 {
		return -32768
	}
	return int16(x)
}
