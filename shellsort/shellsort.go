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

import "cmp"

// Sort sorts data in-place in ascending order.
// It is not stable. It performs no allocation and no recursion.
func Sort[T cmp.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	gap := uint64(n)
	for gap > 1 {
		gap = NextGap(gap)
		g := int(gap)
		for i := g; i < n; i++ {
			for j := i - g; j >= 0; j -= g {
				if data[j] <= data[j+g] {
					break
				}
				data[j], data[j+g] = data[j+g], data[j]
			}
		}
	}
}

// SortFunc sorts data in-place according to cmp, which must return a
// negative number when a precedes b, zero when they are equal under the
// ordering, and a positive number when a follows b. cmp must describe a
// consistent strict weak ordering for the duration of the call; if it does
// not, the result is an unspecified permutation of data.
//
// SortFunc is not stable: elements comparing equal may be reordered.
// For slices with nel <= 1 the comparator is never invoked.
func SortFunc[T any](data []T, cmp func(a, b T) int) {
	n := len(data)
	if n <= 1 {
		return
	}

	gap := uint64(n)
	for gap > 1 {
		gap = NextGap(gap)
		g := int(gap)
		for i := g; i < n; i++ {
			for j := i - g; j >= 0; j -= g {
				if cmp(data[j], data[j+g]) <= 0 {
					break
				}
				data[j], data[j+g] = data[j+g], data[j]
			}
		}
	}
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether data is in non-decreasing order under cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i-1], data[i]) > 0 {
			return false
		}
	}
	return true
}
