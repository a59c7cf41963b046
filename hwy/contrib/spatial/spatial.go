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

import (
	"math"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-spatial/hwy"
	"github.com/ajroetker/go-spatial/hwy/contrib/image"
	"github.com/ajroetker/go-spatial/hwy/contrib/workerpool"
)

// reducers maps every Statistic to its Reducer for T.
func reducers[T hwy.Samples]() [numStatistics]Reducer[T] {
	return [numStatistics]Reducer[T]{
		Contrast: ReduceContrast[T],
		Maximum:  ReduceMax[T],
		Gradient: ReduceGradient[T],
		Minimum:  ReduceMin[T],
		Mean:     ReduceMean[T],
	}
}

// ReducerFor returns the Reducer computing stat over T samples.
func ReducerFor[T hwy.Samples](stat Statistic) (Reducer[T], error) {
	if !stat.Valid() {
		return nil, errors.Wrapf(ErrUnknownStatistic, "%s", stat)
	}
	return reducers[T]()[stat], nil
}

// Apply writes to out the windowed statistic stat of the width x height
// row-major grid in, using square windows of side 2*radius+1 with replicated
// edges. out receives exactly width*height samples in the same layout.
//
// All arguments are validated before anything is allocated or written, so
// on error out is left untouched. in and out may be the same slice.
func Apply[T hwy.Samples](in, out []T, radius, width, height int, stat Statistic) error {
	return ApplyWithPool(nil, in, out, radius, width, height, stat)
}

// ApplyWithPool is like Apply, but reduces row bands concurrently on pool.
// A nil pool behaves exactly like Apply.
func ApplyWithPool[T hwy.Samples](pool *workerpool.Pool, in, out []T, radius, width, height int, stat Statistic) error {
	reduce, err := ReducerFor[T](stat)
	if err != nil {
		return err
	}
	if err := checkGrid(len(in), len(out), width, height); err != nil {
		return err
	}
	if err := CheckRadius[T](radius, width, height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	padded := image.PadSlice(in, width, height, radius, radius, image.PadReplicate)
	outRow := func(y int) []T {
		return out[y*width : (y+1)*width]
	}
	runWindows(pool, padded, outRow, radius, width, height, reduce)
	return nil
}

// ApplyImage is like Apply for aligned planes. src and dst must have the
// same dimensions and may be the same image.
func ApplyImage[T hwy.Samples](src, dst *image.Image[T], radius int, stat Statistic) error {
	return ApplyImageWithPool(nil, src, dst, radius, stat)
}

// ApplyImageWithPool is like ApplyImage, reducing row bands on pool.
func ApplyImageWithPool[T hwy.Samples](pool *workerpool.Pool, src, dst *image.Image[T], radius int, stat Statistic) error {
	reduce, err := ReducerFor[T](stat)
	if err != nil {
		return err
	}
	if src == nil || dst == nil {
		return errors.Wrap(ErrDimensionMismatch, "nil image")
	}
	if !image.SameSize(src, dst) {
		return errors.Wrapf(ErrDimensionMismatch, "source %dx%d, destination %dx%d",
			src.Width(), src.Height(), dst.Width(), dst.Height())
	}
	width, height := src.Width(), src.Height()
	if err := CheckRadius[T](radius, width, height); err != nil {
		return err
	}
	if src.Empty() {
		return nil
	}

	padded := image.Pad(src, radius, radius, image.PadReplicate)
	runWindows(pool, padded, dst.RowSlice, radius, width, height, reduce)
	return nil
}

// checkGrid validates the grid dimensions against the buffer lengths.
func checkGrid(inLen, outLen, width, height int) error {
	if width < 0 || height < 0 {
		return errors.Wrapf(ErrDimensionMismatch, "negative dimensions %dx%d", width, height)
	}
	if width > 0 && height > math.MaxInt/width {
		return errors.Wrapf(ErrDimensionMismatch, "%dx%d overflows", width, height)
	}
	n := width * height
	if inLen != n || outLen != n {
		return errors.Wrapf(ErrDimensionMismatch, "%dx%d grid needs %d samples, got input %d and output %d",
			width, height, n, inLen, outLen)
	}
	return nil
}
