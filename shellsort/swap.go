package shellsort

import "encoding/binary"

// Swap kernels for exchanging two equal-length, non-overlapping byte
// regions. Gap-spaced chains guarantee the regions never overlap (the gap
// in bytes is at least one element width), so the kernels may move whole
// words without read/write hazards.

// swapFunc exchanges the contents of a and b. len(a) == len(b).
type swapFunc func(a, b []byte)

// swapImpl is the kernel selected at init by the dispatch_*.go files.
var swapImpl swapFunc = swapGeneric

// swapGeneric exchanges one byte per step. This is the portable baseline
// and the shape the original C swap loop has before vectorization.
func swapGeneric(a, b []byte) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// swapWide exchanges eight bytes per step, with a byte tail. NativeEndian
// round-trips are byte-order neutral for a pure exchange, so the kernel is
// correct on any platform; dispatch only enables it where unaligned 64-bit
// loads are cheap.
func swapWide(a, b []byte) {
	for len(a) >= 8 {
		x := binary.NativeEndian.Uint64(a)
		y := binary.NativeEndian.Uint64(b)
		binary.NativeEndian.PutUint64(a, y)
		binary.NativeEndian.PutUint64(b, x)
		a = a[8:]
		b = b[8:]
	}
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}
