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

package image

import (
	"fmt"

	"github.com/ajroetker/go-spatial/hwy"
)

// PadMethod selects how Pad fills the border around an image.
type PadMethod int

const (
	// PadReplicate copies the nearest edge sample (see Clamp).
	PadReplicate PadMethod = iota

	// PadReflect mirrors about the edge, repeating the edge sample (see Mirror).
	PadReflect

	// PadWrap tiles the image periodically (see Wrap).
	PadWrap

	// PadZero fills the border with zero.
	PadZero
)

// String returns the name of the pad method.
func (m PadMethod) String() string {
	switch m {
	case PadReplicate:
		return "replicate"
	case PadReflect:
		return "reflect"
	case PadWrap:
		return "wrap"
	case PadZero:
		return "zero"
	default:
		return fmt.Sprintf("PadMethod(%d)", int(m))
	}
}

// index maps a possibly out-of-bounds coordinate into [0, size).
// It returns -1 for PadZero coordinates outside the image.
func (m PadMethod) index(i, size int) int {
	switch m {
	case PadReflect:
		return Mirror(i, size)
	case PadWrap:
		return Wrap(i, size)
	case PadZero:
		if i < 0 || i >= size {
			return -1
		}
		return i
	default:
		return Clamp(i, size)
	}
}

// Pad returns a new image of (Width()+2*padX) x (Height()+2*padY) pixels
// whose interior, offset by (padX, padY), equals src and whose border is
// filled according to method.
//
// Negative pads are treated as zero. An empty src yields an empty image,
// since there is no edge sample to extend.
func Pad[T hwy.Lanes](src *Image[T], padX, padY int, method PadMethod) *Image[T] {
	if src == nil || src.Empty() {
		return NewImage[T](0, 0)
	}
	return pad(src.RowSlice, src.width, src.height, padX, padY, method)
}

// PadSlice is like Pad for a row-major slice of height rows of width samples,
// without first copying it into an Image.
//
// Returns an empty image if a dimension is non-positive or data holds fewer
// than width*height samples.
func PadSlice[T hwy.Lanes](data []T, width, height, padX, padY int, method PadMethod) *Image[T] {
	if width <= 0 || height <= 0 || len(data) < width*height {
		return NewImage[T](0, 0)
	}
	row := func(y int) []T {
		return data[y*width : (y+1)*width]
	}
	return pad(row, width, height, padX, padY, method)
}

// pad builds the padded plane from a source of width x height samples whose
// row y is returned by srcRow.
func pad[T hwy.Lanes](srcRow func(y int) []T, width, height, padX, padY int, method PadMethod) *Image[T] {
	padX, padY = max(padX, 0), max(padY, 0)
	dst := NewImage[T](width+2*padX, height+2*padY)

	// Horizontal source index for every border column, resolved once.
	left := make([]int, padX)
	right := make([]int, padX)
	for i := range padX {
		left[i] = method.index(i-padX, width)
		right[i] = method.index(width+i, width)
	}

	for y := range dst.height {
		sy := method.index(y-padY, height)
		if sy < 0 {
			// PadZero rows outside the image are already zero.
			continue
		}
		src := srcRow(sy)
		dstRow := dst.RowSlice(y)

		copy(dstRow[padX:padX+width], src)
		for i := range padX {
			if sx := left[i]; sx >= 0 {
				dstRow[i] = src[sx]
			}
			if sx := right[i]; sx >= 0 {
				dstRow[padX+width+i] = src[sx]
			}
		}
	}
	return dst
}

// Mirror returns the mirrored index for out-of-bounds coordinates.
// Used for edge handling in convolution operations.
// Given bounds [0, size), mirrors index to stay within bounds.
func Mirror(index, size int) int {
	if size <= 0 {
		return 0
	}
	// Reflection repeats with period 2*size: 0..size-1 forward, then back.
	period := 2 * size
	index %= period
	if index < 0 {
		index += period
	}
	if index >= size {
		index = period - index - 1
	}
	return index
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Wrap returns index wrapped to [0, size) using modulo.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index = index % size
	if index < 0 {
		index += size
	}
	return index
}
