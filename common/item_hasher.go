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

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/twmb/murmur3"
)

const defaultItemHashSeed = uint64(9001)

type Int64Hasher struct{}

type Uint32Hasher struct{}

// Float64Hasher hashes the IEEE 754 bit pattern, so 0.0 and -0.0 hash
// differently.
type Float64Hasher struct{}

type StringHasher struct{}

func (h Int64Hasher) Hash(item int64) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(item))
	return murmur3.SeedSum64(defaultItemHashSeed, scratch[:])
}

func (h Uint32Hasher) Hash(item uint32) uint64 {
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], item)
	return murmur3.SeedSum64(defaultItemHashSeed, scratch[:])
}

func (h Float64Hasher) Hash(item float64) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(item))
	return murmur3.SeedSum64(defaultItemHashSeed, scratch[:])
}

func (h StringHasher) Hash(item string) uint64 {
	datum := unsafe.Slice(unsafe.StringData(item), len(item))
	return murmur3.SeedSum64(defaultItemHashSeed, datum)
}
