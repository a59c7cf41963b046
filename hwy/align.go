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

// AlignedSize rounds size up to the next multiple of MaxLanes[T](), the
// number of T samples in one vector register. Image rows use it as their
// stride so every row starts on a vector boundary.
func AlignedSize[T Lanes](size int) int {
	lanes := MaxLanes[T]()
	if lanes == 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned reports whether size is a multiple of MaxLanes[T]().
func IsAligned[T Lanes](size int) bool {
	lanes := MaxLanes[T]()
	if lanes == 0 {
		return true
	}
	return size%lanes == 0
}
