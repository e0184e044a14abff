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

// NextGap returns the step size following gap in the Gonnet & Baeza-Yates
// sequence: floor((5*gap - 1) / 11), clamped so the final step is 1.
// gap must be at least 1.
//
// The recurrence is evaluated in uint64 so it cannot wrap on platforms with
// a 32-bit uintptr. Absent overflow the result is strictly less than gap
// for every gap > 1, which bounds the number of passes without recursion or
// an auxiliary stack.
func NextGap(gap uint64) uint64 {
	gap = (5*gap - 1) / 11
	if gap == 0 {
		gap = 1
	}
	return gap
}
