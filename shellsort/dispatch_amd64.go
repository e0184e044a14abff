//go:build amd64

package shellsort

import "golang.org/x/sys/cpu"

func init() {
	// Check for SHELLSORT_NO_WIDE environment variable first
	if NoWideEnv() {
		currentKernel = KernelGeneric
		return
	}

	// Unaligned 64-bit loads are cheap on amd64, so the wide kernel is
	// always profitable there.
	//
	// Note: SSE2 is part of the x86-64 baseline, so HasSSE2 is always
	// true. We check it for consistency with the other dispatch files.
	if cpu.X86.HasSSE2 {
		currentKernel = KernelWide
		swapImpl = swapWide
	}
}
