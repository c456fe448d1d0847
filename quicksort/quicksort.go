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

// Package quicksort sorts slices of ordered values with a median-of-three
// quicksort.
//
// The pivot of each range is the median of its first, middle and last
// values, which keeps already sorted and reverse sorted input from
// degenerating. Adversarial input can still drive the sort to O(n^2)
// comparisons and a recursion depth proportional to n.
//
// Equal values are not kept in their original relative order. NaN floating
// point values have no place in a total order and are not supported.
//
// None of the functions are safe for concurrent use on the same slice.
package quicksort

import (
	"cmp"
	"fmt"

	"github.com/partsort/partsort-go/internal"
)

// SortCopy returns a sorted copy of input, leaving input unchanged.
func SortCopy[T cmp.Ordered](input []T) []T {
	result := make([]T, len(input))
	copy(result, input)
	sortRange(result, 0, len(result))
	return result
}

// Sort sorts data in ascending order in place.
func Sort[T cmp.Ordered](data []T) {
	sortRange(data, 0, len(data))
}

func sortRange[T cmp.Ordered](data []T, start, end int) {
	if end-start < 2 {
		return
	}
	p := internal.Partition(data, start, end)
	sortRange(data, start, p)
	sortRange(data, p+1, end)
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

// Select reorders data so that data[k] is the k-th smallest value (counting
// from zero), every value before it is less than or equal to it and every
// value after it is greater than or equal to it. It returns data[k].
//
// data is left untouched when k is out of range.
func Select[T cmp.Ordered](data []T, k int) (T, error) {
	if k < 0 || k >= len(data) {
		var zero T
		return zero, fmt.Errorf("k must be in [0, %d), got %d", len(data), k)
	}
	return internal.QuickSelect(data, 0, len(data), k), nil
}
