//go:build !amd64 && !arm64

package shellsort

func init() {
	// Other platforms keep the byte-at-a-time kernel: unaligned word
	// access is either trapped or emulated there, and correctness never
	// depends on the kernel choice.
	currentKernel = KernelGeneric
}
