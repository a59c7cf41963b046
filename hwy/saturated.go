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

// This file provides saturated arithmetic.
// Saturated operations clamp results to the type's valid range instead of wrapping.

// SaturatedAdd adds a and b, clamping to the range of T instead of wrapping.
// For example, uint8: 250 + 10 = 255 (not 4); int8: -120 + -10 = -128.
//
// Works for named types (~uint8 etc.) as well, since overflow is detected
// from the wrapped result rather than from the concrete type.
func SaturatedAdd[T Integers](a, b T) T {
	sum := a + b
	if isSigned[T]() {
		// Signed overflow only happens when both operands share a sign
		// and the result's sign differs from it.
		if a >= 0 && b >= 0 && sum < 0 {
			return maxSigned[T]()
		}
		if a < 0 && b < 0 && sum >= 0 {
			return minSigned[T]()
		}
		return sum
	}
	if sum < a {
		return ^T(0)
	}
	return sum
}

// SaturatedSub subtracts b from a, clamping to the range of T.
// For example, uint8: 10 - 20 = 0 (not 246).
func SaturatedSub[T Integers](a, b T) T {
	diff := a - b
	if isSigned[T]() {
		if a >= 0 && b < 0 && diff < 0 {
			return maxSigned[T]()
		}
		if a < 0 && b >= 0 && diff >= 0 {
			return minSigned[T]()
		}
		return diff
	}
	if b > a {
		return 0
	}
	return diff
}

func isSigned[T Integers]() bool {
	var zero T
	return zero-1 < zero
}

// maxSigned returns the largest value of a signed integer type: all bits set
// except the sign bit.
func maxSigned[T Integers]() T {
	bits := SizeOf[T]() * 8
	var one T = 1
	return (one << (bits - 1)) - 1
}

func minSigned[T Integers]() T {
	return -maxSigned[T]() - 1
}
