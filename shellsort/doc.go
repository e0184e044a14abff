// Package shellsort provides an in-place, non-recursive comparison sort
// built on Shellsort with the Gonnet & Baeza-Yates gap sequence.
//
// It exists for environments where a general-purpose library sort is
// unavailable or too heavy: sandboxed and embedded binary modules with
// constrained stack depth, no recursion budget, and no allocator. The sort
// uses O(1) auxiliary space (one element-width temporary during a swap),
// never recurses, and never allocates.
//
// # Algorithm
//
// Shellsort performs diminishing-gap insertion passes: early passes move
// far-apart misordered elements in large jumps, so the final gap-1 pass
// (plain insertion sort) does little work. The gap shrinks by the
// Gonnet & Baeza-Yates recurrence
//
//	gap = floor((5*gap - 1) / 11)
//
// clamped to a final gap of 1. The recurrence is evaluated in 64-bit
// unsigned arithmetic so the shrinking step cannot wrap even on 32-bit
// platforms. The inner byte-exchange loop is regular enough for wide loads;
// see CurrentKernel.
//
// The sort is NOT stable: elements that compare equal may be reordered.
//
// # Entry Points
//
//   - Sort, SortFunc: type-safe slice sorts; use these unless you hold an
//     untyped buffer.
//   - SortBytes: the compatibility entry point mirroring the C qsort
//     contract (opaque buffer, element count, element width, three-way
//     comparator). The default implementation can be superseded at
//     composition time via SetBytesSorter.
//
// # Example Usage
//
//	import "github.com/edofic/go-shellsort/shellsort"
//
//	func ProcessData(data []float32) {
//	    shellsort.Sort(data) // in-place ascending sort
//	}
//
//	func SortRecords(recs []Record) {
//	    shellsort.SortFunc(recs, func(a, b Record) int {
//	        return cmp.Compare(a.Key, b.Key)
//	    })
//	}
//
// # Performance
//
// Practical performance is near-linearithmic for random inputs. For large
// slices of a comparable type, the standard library sort is usually faster;
// this package trades peak throughput for a bounded, recursion-free,
// allocation-free execution profile.
package shellsort
