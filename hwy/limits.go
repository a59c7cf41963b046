// Copyright 2025 go-highway Authors
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

package hwy

import (
	"math"
	"unsafe"
)

// MaxValue returns the largest value representable by T.
// It is the identity element of a running minimum.
func MaxValue[T Samples]() T {
	return ^T(0)
}

// MinValue returns the smallest value representable by T (always zero).
// It is the identity element of a running maximum.
func MinValue[T Samples]() T {
	return 0
}

// One returns the additive unit of T.
func One[T Samples]() T {
	return 1
}

// Widen converts a sample into the accumulator type without loss.
func Widen[T Samples](v T) Accumulator {
	return Accumulator(v)
}

// Narrow converts an accumulator value back into T.
// The caller guarantees a fits in T, e.g. because it is a mean of T values.
func Narrow[T Samples](a Accumulator) T {
	return T(a)
}

// SizeOf returns the size in bytes of one sample of type T.
func SizeOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// MaxWindowSamples returns the largest number of T samples whose sum is
// guaranteed to fit in Accumulator, even when every sample is MaxValue[T].
//
//   - uint8:  2^64-1 / 255
//   - uint16: 2^64-1 / 65535
//   - uint32: 2^64-1 / (2^32-1) = 2^32+1
func MaxWindowSamples[T Samples]() uint64 {
	return math.MaxUint64 / Widen(MaxValue[T]())
}
