package shellsort

import (
	"os"
	"strconv"
)

// Kernel identifies the swap kernel selected for this runtime.
type Kernel int

const (
	// KernelGeneric exchanges elements one byte at a time.
	KernelGeneric Kernel = iota

	// KernelWide exchanges elements eight bytes at a time.
	KernelWide
)

// String returns a human-readable name for the kernel.
func (k Kernel) String() string {
	switch k {
	case KernelGeneric:
		return "generic"
	case KernelWide:
		return "wide"
	default:
		return "unknown"
	}
}

// currentKernel is the kernel selected for this runtime.
// Set by init() in dispatch_*.go files.
var currentKernel Kernel

// CurrentKernel returns the swap kernel in use. The choice affects
// throughput only, never the sorted result.
func CurrentKernel() Kernel {
	return currentKernel
}

// NoWideEnv checks if the SHELLSORT_NO_WIDE environment variable is set.
// When set, the byte-at-a-time kernel is used regardless of platform.
// This is useful for testing and debugging.
func NoWideEnv() bool {
	val := os.Getenv("SHELLSORT_NO_WIDE")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
