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

package common

// Fingerprint summarizes a multiset of items independently of their order.
// Permutations of the same items always produce equal fingerprints; distinct
// multisets collide only when their hashes do.
type Fingerprint struct {
	Count     int
	Sum       uint64
	Xor       uint64
	SquareSum uint64
}

// MultisetFingerprint computes the Fingerprint of items using hasher.
func MultisetFingerprint[C comparable](items []C, hasher ItemHasher[C]) Fingerprint {
	fp := Fingerprint{Count: len(items)}
	for _, item := range items {
		h := hasher.Hash(item)
		fp.Sum += h
		fp.Xor ^= h
		fp.SquareSum += h * h
	}
	return fp
}
