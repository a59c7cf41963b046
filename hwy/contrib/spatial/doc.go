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

// Package spatial computes windowed statistics over single-channel 2D sample
// grids.
//
// Every output sample is a summary statistic of the square neighborhood of
// side 2*radius+1 centered on the same coordinate in the input. Neighborhoods
// that cross the border read the nearest edge sample (replicate padding), so
// the output has exactly the input's dimensions.
//
// # Statistics
//
//	Statistic   Aliases          Per window
//	---------   -------          ----------
//	Contrast    contrast         (max-min) / (max+min+1), both adds saturating
//	Maximum     maximum, max     max
//	Gradient    gradient         max - min
//	Minimum     minimum, min     min
//	Mean        mean, avg        floor(sum / count)
//
// # Usage
//
//	stat, err := spatial.ParseStatistic("max")
//	if err != nil {
//	    return err
//	}
//	out := make([]uint16, width*height)
//	if err := spatial.Apply(in, out, 3, width, height, stat); err != nil {
//	    return err
//	}
//
// Large planes can be split into row bands across a shared worker pool:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	err := spatial.ApplyWithPool(pool, in, out, 3, width, height, spatial.Mean)
//
// Results are identical with and without a pool.
package spatial
