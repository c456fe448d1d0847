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

package testutils

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Pattern is the shape of a generated input sequence.
type Pattern int

const (
	Random Pattern = iota
	Ascending
	Descending
	AllEqual
	OrganPipe
	Sawtooth
	FewUnique
)

const (
	sawtoothPeriod = 32
	fewUniqueCount = 4
)

// Patterns lists every Pattern, in declaration order.
var Patterns = []Pattern{Random, Ascending, Descending, AllEqual, OrganPipe, Sawtooth, FewUnique}

func (p Pattern) String() string {
	switch p {
	case Random:
		return "random"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case AllEqual:
		return "all_equal"
	case OrganPipe:
		return "organ_pipe"
	case Sawtooth:
		return "sawtooth"
	case FewUnique:
		return "few_unique"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// Generate returns n values following pattern p. Values lie in [0, n), so
// T must be able to hold n-1. The same seed always yields the same sequence;
// only Random and FewUnique depend on it.
func Generate[T constraints.Integer](p Pattern, n int, seed uint64) []T {
	out := make([]T, n)
	for i := range out {
		switch p {
		case Random:
			out[i] = T(hashIndex(seed, i) % uint64(n))
		case Ascending:
			out[i] = T(i)
		case Descending:
			out[i] = T(n - 1 - i)
		case AllEqual:
			out[i] = 0
		case OrganPipe:
			if i < n/2 {
				out[i] = T(i)
			} else {
				out[i] = T(n - 1 - i)
			}
		case Sawtooth:
			out[i] = T(i % sawtoothPeriod)
		case FewUnique:
			out[i] = T(hashIndex(seed, i) % fewUniqueCount)
		default:
			panic(fmt.Sprintf("unknown pattern %d", int(p)))
		}
	}
	return out
}

func hashIndex(seed uint64, i int) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(i))
	h := xxhash.NewWithSeed(seed)
	h.Write(scratch[:])
	return h.Sum64()
}
