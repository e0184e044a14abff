//go:build arm64

package shellsort

import "golang.org/x/sys/cpu"

func init() {
	// Check for SHELLSORT_NO_WIDE environment variable first
	if NoWideEnv() {
		currentKernel = KernelGeneric
		return
	}

	// ARM64 (AArch64) handles unaligned 64-bit accesses in hardware.
	//
	// Note: ASIMD is part of the ARMv8-A base architecture, so HasASIMD
	// is always true on ARMv8+. We check it for consistency with the
	// other dispatch files.
	if cpu.ARM64.HasASIMD {
		currentKernel = KernelWide
		swapImpl = swapWide
	}
}
