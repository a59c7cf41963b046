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

	"github.com/pbnjay/memory"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-spatial/hwy"
)

const (
	// MaxRadius is the largest radius CheckRadius accepts on any plane.
	MaxRadius = 4096

	// PadFactor bounds the padded plane to PadFactor times the input's
	// sample count, so a huge radius cannot turn a small plane into a huge
	// allocation.
	PadFactor = 16

	// MinPadBudget is the padded sample count always allowed, whatever the
	// plane size, so small planes may still use moderate radii.
	MinPadBudget = 1 << 16
)

// totalMemory reports the host's physical memory in bytes, or 0 if unknown.
var totalMemory = memory.TotalMemory

// CheckRadius reports whether radius can be applied to a width x height
// plane of T samples. It returns an error wrapping ErrRadiusOutOfRange if
//
//   - radius is negative or greater than MaxRadius;
//   - a full window holds more than hwy.MaxWindowSamples[T]() samples;
//   - the padded plane exceeds max(PadFactor*width*height, MinPadBudget)
//     samples;
//   - the padded plane needs more than half the host's physical memory.
//
// Dimensions are assumed non-negative.
func CheckRadius[T hwy.Samples](radius, width, height int) error {
	if radius < 0 {
		return errors.Wrapf(ErrRadiusOutOfRange, "radius %d is negative", radius)
	}
	if radius > MaxRadius {
		return errors.Wrapf(ErrRadiusOutOfRange, "radius %d exceeds %d", radius, MaxRadius)
	}

	side := uint64(2*radius + 1)
	if limit := hwy.MaxWindowSamples[T](); side*side > limit {
		return errors.Wrapf(ErrRadiusOutOfRange, "radius %d gives %d samples per window, limit %d",
			radius, side*side, limit)
	}

	pixels := uint64(width) * uint64(height)
	padded := uint64(width+2*radius) * uint64(height+2*radius)
	budget := uint64(math.MaxUint64)
	if pixels <= math.MaxUint64/PadFactor {
		budget = max(PadFactor*pixels, MinPadBudget)
	}
	if padded > budget {
		return errors.Wrapf(ErrRadiusOutOfRange, "radius %d pads %dx%d to %d samples, limit %d",
			radius, width, height, padded, budget)
	}

	if total := totalMemory(); total > 0 {
		if bytes := padded * uint64(hwy.SizeOf[T]()); bytes > total/2 {
			return errors.Wrapf(ErrRadiusOutOfRange, "radius %d needs %d bytes of padding, host has %d",
				radius, bytes, total)
		}
	}
	return nil
}
