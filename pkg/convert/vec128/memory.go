package vec128

import "github.com/pion/yuv2bgra/internal/simd"

// memory selects the load/store flavour a driver is instantiated with.
// The choice is made once per call by the dispatcher so the inner loops
// carry no alignment branches.
type memory interface {
	load(p []byte) simd.Vec
	store(p []byte, v simd.Vec)
}

type aligned struct{}

func (aligned) load(p []byte) simd.Vec     { return simd.LoadAligned(p) }
func (aligned) store(p []byte, v simd.Vec) { simd.StoreAligned(p, v) }

type unaligned struct{}

func (unaligned) load(p []byte) simd.Vec     { return simd.Load(p) }
func (unaligned) store(p []byte, v simd.Vec) { simd.Store(p, v) }

func allAligned(y []byte, yStride int, u []byte, uStride int, v []byte, vStride int, bgra []byte, bgraStride int) bool {
	return simd.Aligned(y) && simd.AlignedSize(yStride) &&
		simd.Aligned(u) && simd.AlignedSize(uStride) &&
		simd.Aligned(v) && simd.AlignedSize(vStride) &&
		simd.Aligned(bgra) && simd.AlignedSize(bgraStride)
}
