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

// Package image provides SIMD-friendly single-channel 2D planes and border
// padding for neighborhood filters.
//
// Image[T] stores one plane (for example one color channel) with rows
// aligned to the SIMD vector width reported by hwy.MaxLanes.
//
// # Converting from flat slices
//
//	img := image.FromSlice(samples, width, height) // copies into aligned rows
//	n := img.CopyTo(samples)                      // writes them back
//
// # Padding
//
// Pad enlarges a plane by a fixed margin on every side so that a window of
// radius r centered on any original pixel stays inside the padded plane:
//
//	padded := image.Pad(img, r, r, image.PadReplicate)
//
// The border is filled by one of four methods:
//
//	PadReplicate - repeat edge pixels     (Clamp)
//	PadReflect   - reflect at boundaries  (Mirror)
//	PadWrap      - tile/wrap around       (Wrap)
//	PadZero      - constant zero
//
// The coordinate helpers Clamp, Mirror and Wrap are exported for kernels
// that resolve out-of-bounds indices themselves.
package image
