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

// Package hwy provides the numeric layer shared by the spatial filters:
// type constraints for sample values, their bounds, saturated arithmetic,
// widening into an accumulator, and the runtime SIMD level used to align
// image rows.
//
// Reducers are written once against these constraints and instantiated per
// sample width:
//
//	import "github.com/ajroetker/go-spatial/hwy"
//
//	func Peak[T hwy.Samples](window []T) T {
//	    peak := hwy.MinValue[T]()
//	    for _, v := range window {
//	        peak = max(peak, v)
//	    }
//	    return peak
//	}
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Samples is the constraint for values held in a single-channel plane that
// windowed statistics reduce.
//
// Every Samples type is an unsigned integer no wider than 32 bits, so it has
// a zero minimum, an all-ones maximum, and widens losslessly into
// Accumulator.
type Samples interface {
	~uint8 | ~uint16 | ~uint32
}

// Accumulator is the wide unsigned type sums of Samples are computed in.
type Accumulator = uint64
