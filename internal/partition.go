/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import "cmp"

// MedianOfThree returns the median of a, b and c.
func MedianOfThree[T cmp.Ordered](a, b, c T) T {
	return max(min(a, c), min(max(a, c), b))
}

// PivotIndex returns the position in [start, end) that holds pivot, checking
// start, then end-1, then falling back to mid.
func PivotIndex[T cmp.Ordered](arr []T, start, end int, pivot T) int {
	if arr[start] == pivot {
		return start
	}
	if arr[end-1] == pivot {
		return end - 1
	}
	return start + (end-start)/2
}

// Partition reorders arr[start:end] around the median of its first, middle
// and last values and returns the pivot's final position p.
// On return arr[start:p] <= arr[p] <= arr[p+1:end].
// The range must hold at least one element.
func Partition[T cmp.Ordered](arr []T, start, end int) int {
	mid := start + (end-start)/2
	pivot := MedianOfThree(arr[start], arr[mid], arr[end-1])
	p := PivotIndex(arr, start, end, pivot)

	// Move larger values from the left of the pivot to its right. The pivot
	// shifts one slot left per move, so i stays put to examine what arrived.
	for i := start; i < p; {
		if arr[i] > pivot {
			arr[i], arr[p-1] = arr[p-1], arr[i]
			arr[p], arr[p-1] = arr[p-1], arr[p]
			p--
			continue
		}
		i++
	}

	// Mirror of the left pass.
	for j := p + 1; j < end; j++ {
		if arr[j] < pivot {
			arr[j], arr[p+1] = arr[p+1], arr[j]
			arr[p], arr[p+1] = arr[p+1], arr[p]
			p++
		}
	}
	return p
}
