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

// BytesSorter is the signature of the untyped sort entry point. It plays
// the role of an overridable default definition: SortBytes delegates to the
// installed BytesSorter, and a consumer with a stronger implementation (a
// host-provided sort, a profiling wrapper) may supersede the built-in one
// at composition time.
type BytesSorter func(buf []byte, nel, width int, cmp Comparator)

// bytesSorter is the installed implementation. Replaced via SetBytesSorter.
var bytesSorter BytesSorter = shellSortBytes

// SetBytesSorter installs fn as the implementation behind SortBytes and
// returns the previously installed one. Passing nil restores the built-in
// Shellsort.
//
// SetBytesSorter is meant for wiring during init or program startup; it is
// not synchronized against concurrent SortBytes calls.
func SetBytesSorter(fn BytesSorter) BytesSorter {
	prev := bytesSorter
	if fn == nil {
		fn = shellSortBytes
	}
	bytesSorter = fn
	return prev
}
