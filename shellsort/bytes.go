// Copyright 2025 go-shellsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shellsort

// Comparator is a three-way ordering over two elements viewed as raw bytes.
// It returns a negative number when a precedes b, zero when the two are
// equal under the ordering, and a positive number when a follows b. The
// slices passed to it are width-byte views into the buffer being sorted and
// must not be retained after the call returns.
type Comparator func(a, b []byte) int

// SortBytes sorts nel elements of width bytes each, stored contiguously in
// buf, according to cmp. It mirrors the C qsort contract: the buffer is
// opaque, elements are addressed by byte offset, and the sort is in place
// with O(1) auxiliary space.
//
// SortBytes delegates to the installed BytesSorter (see SetBytesSorter);
// the default is this package's Shellsort.
//
// Unlike qsort, ill-formed preconditions are checked: SortBytes panics if
// width is not positive, nel is negative, or buf holds fewer than nel*width
// bytes. For nel <= 1 it returns without invoking cmp. It is not stable.
//
// Concurrent calls on disjoint buffers are safe; sorting one buffer from
// two goroutines without external synchronization is a data race.
func SortBytes(buf []byte, nel, width int, cmp Comparator) {
	bytesSorter(buf, nel, width, cmp)
}

// shellSortBytes is the default BytesSorter: Shellsort with the
// Gonnet & Baeza-Yates gap sequence over gap-spaced element chains.
func shellSortBytes(buf []byte, nel, width int, cmp Comparator) {
	if width <= 0 {
		panic("shellsort: non-positive element width")
	}
	if nel < 0 {
		panic("shellsort: negative element count")
	}
	// Division instead of nel*width keeps the extent check exact even
	// where the product would overflow int.
	if nel > 0 && len(buf)/width < nel {
		panic("shellsort: buffer shorter than nel*width bytes")
	}
	if nel <= 1 {
		return
	}

	wnel := width * nel
	gap := uint64(nel)
	for gap > 1 {
		gap = NextGap(gap)

		// gap < nel at this point, so wgap < wnel: every outer
		// iteration has at least one chain to walk.
		wgap := width * int(gap)
		for i := wgap; i < wnel; i += width {
			// Walk the gap-spaced chain backward from offset i,
			// swapping until the predecessor no longer follows.
			for j := i - wgap; j >= 0; j -= wgap {
				a := buf[j : j+width]
				b := buf[j+wgap : j+wgap+width]
				if cmp(a, b) <= 0 {
					break
				}
				swapImpl(a, b)
			}
		}
	}
}
