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

package spatial

import "github.com/ajroetker/go-spatial/hwy"

// Reducer summarizes one window of samples into a single sample.
//
// A Reducer must not retain or modify window, and its result must not
// depend on the order of the samples. window is never empty.
type Reducer[T hwy.Samples] func(window []T) T

// ReduceMin returns the smallest sample in window.
func ReduceMin[T hwy.Samples](window []T) T {
	lo := hwy.MaxValue[T]()
	for _, v := range window {
		lo = min(lo, v)
	}
	return lo
}

// ReduceMax returns the largest sample in window.
func ReduceMax[T hwy.Samples](window []T) T {
	hi := hwy.MinValue[T]()
	for _, v := range window {
		hi = max(hi, v)
	}
	return hi
}

// ReduceGradient returns the spread between the largest and smallest sample.
func ReduceGradient[T hwy.Samples](window []T) T {
	lo, hi := extrema(window)
	return hi - lo
}

// ReduceContrast returns (max-min) / (max+min+1) in T's integer arithmetic.
//
// Both additions saturate, so a window near the top of T's range divides by
// MaxValue instead of a wrapped (possibly zero) denominator.
func ReduceContrast[T hwy.Samples](window []T) T {
	lo, hi := extrema(window)
	den := hwy.SaturatedAdd(hwy.SaturatedAdd(hi, lo), hwy.One[T]())
	return (hi - lo) / den
}

// ReduceMean returns the arithmetic mean of window, truncated toward zero.
// The sum is accumulated in hwy.Accumulator, which cannot overflow for any
// window accepted by CheckRadius.
func ReduceMean[T hwy.Samples](window []T) T {
	var sum hwy.Accumulator
	for _, v := range window {
		sum += hwy.Widen(v)
	}
	return hwy.Narrow[T](sum / hwy.Accumulator(len(window)))
}

// extrema returns the smallest and largest samples in one pass.
func extrema[T hwy.Samples](window []T) (lo, hi T) {
	lo, hi = hwy.MaxValue[T](), hwy.MinValue[T]()
	for _, v := range window {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
