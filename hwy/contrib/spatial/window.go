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
	"github.com/pkg/errors"

	"github.com/ajroetker/go-spatial/hwy"
	"github.com/ajroetker/go-spatial/hwy/contrib/image"
	"github.com/ajroetker/go-spatial/hwy/contrib/workerpool"
)

// MinBandRows is the fewest output rows WindowsWithPool hands to one worker.
// Thinner bands cost more in scheduling than they save.
const MinBandRows = 16

// Windows computes out[y*width+x] = reduce(window(x, y)) for every output
// coordinate, where window(x, y) is the (2*radius+1)^2 block of padded whose
// top-left corner is (x, y). padded is therefore the source plane extended by
// radius samples on every side, as returned by image.Pad.
//
// It returns ErrDimensionMismatch when padded or out is too small.
func Windows[T hwy.Samples](padded *image.Image[T], out []T, radius, width, height int, reduce Reducer[T]) error {
	return WindowsWithPool(nil, padded, out, radius, width, height, reduce)
}

// WindowsWithPool is like Windows, but splits the output rows into bands of
// at least MinBandRows rows and reduces them concurrently on pool. A nil pool
// runs sequentially. The output is identical either way.
func WindowsWithPool[T hwy.Samples](pool *workerpool.Pool, padded *image.Image[T], out []T, radius, width, height int, reduce Reducer[T]) error {
	if err := checkWindows(padded, out, radius, width, height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	outRow := func(y int) []T {
		return out[y*width : (y+1)*width]
	}
	runWindows(pool, padded, outRow, radius, width, height, reduce)
	return nil
}

// runWindows reduces every output row, in bands on pool when it is non-nil.
// Arguments are assumed valid.
func runWindows[T hwy.Samples](pool *workerpool.Pool, padded *image.Image[T], outRow func(y int) []T, radius, width, height int, reduce Reducer[T]) {
	if pool == nil {
		windowRows(padded, outRow, radius, width, 0, height, reduce)
		return
	}
	pool.ParallelBands(height, MinBandRows, func(y0, y1 int) {
		windowRows(padded, outRow, radius, width, y0, y1, reduce)
	})
}

func checkWindows[T hwy.Samples](padded *image.Image[T], out []T, radius, width, height int) error {
	if radius < 0 || width < 0 || height < 0 {
		return errors.Wrapf(ErrDimensionMismatch, "radius %d, grid %dx%d", radius, width, height)
	}
	if width == 0 || height == 0 {
		return nil
	}
	if padded == nil || padded.Width() < width+2*radius || padded.Height() < height+2*radius {
		pw, ph := 0, 0
		if padded != nil {
			pw, ph = padded.Width(), padded.Height()
		}
		return errors.Wrapf(ErrDimensionMismatch, "padded plane %dx%d, want at least %dx%d",
			pw, ph, width+2*radius, height+2*radius)
	}
	if len(out) < width*height {
		return errors.Wrapf(ErrDimensionMismatch, "output holds %d samples, want %d", len(out), width*height)
	}
	return nil
}

// windowRows reduces output rows [y0, y1). Each call owns its scratch
// window, so concurrent calls on disjoint rows share nothing mutable.
func windowRows[T hwy.Samples](padded *image.Image[T], outRow func(y int) []T, radius, width, y0, y1 int, reduce Reducer[T]) {
	side := 2*radius + 1
	window := make([]T, side*side)
	rows := make([][]T, side)

	for y := y0; y < y1; y++ {
		for dy := range side {
			rows[dy] = padded.RowSlice(y + dy)
		}
		dst := outRow(y)
		for x := range width {
			n := 0
			for _, row := range rows {
				n += copy(window[n:], row[x:x+side])
			}
			dst[x] = reduce(window)
		}
	}
}
