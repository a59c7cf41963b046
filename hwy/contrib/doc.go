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

// Package contrib groups the higher-level packages built on hwy.
//
// # Subpackages
//
//   - image: single-channel planes with SIMD-aligned rows, and border padding
//   - spatial: windowed statistics (min, max, mean, gradient, contrast)
//   - workerpool: persistent worker pool that splits rows into bands
//
// # Spatial statistics (hwy/contrib/spatial)
//
//	import "github.com/ajroetker/go-spatial/hwy/contrib/spatial"
//
//	out := make([]uint8, width*height)
//	err := spatial.Apply(in, out, 2, width, height, spatial.Minimum)
//
// # Padding (hwy/contrib/image)
//
//	import "github.com/ajroetker/go-spatial/hwy/contrib/image"
//
//	padded := image.Pad(img, 3, 3, image.PadReflect)
package contrib
