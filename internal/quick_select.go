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

// QuickSelect rearranges arr[lo:hi] so that arr[k] holds the value it would
// have if the range were sorted, with smaller or equal values before it and
// greater or equal values after it. It returns arr[k].
// k must lie in [lo, hi).
func QuickSelect[T cmp.Ordered](arr []T, lo int, hi int, k int) T {
	for hi-lo > 1 {
		p := Partition(arr, lo, hi)
		if p == k {
			return arr[k]
		}
		if p > k {
			hi = p
		} else {
			lo = p + 1
		}
	}
	return arr[k]
}
