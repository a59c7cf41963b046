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
	"testing"

	"github.com/ajroetker/go-spatial/hwy/contrib/workerpool"
)

const benchWidth, benchHeight, benchRadius = 800, 800, 3

func BenchmarkApply(b *testing.B) {
	in := randomPlane[uint16](benchWidth, benchHeight, 1)
	out := make([]uint16, len(in))

	for _, stat := range Statistics() {
		b.Run(stat.String(), func(b *testing.B) {
			b.SetBytes(int64(len(in) * 2))
			b.ReportAllocs()
			for b.Loop() {
				if err := Apply(in, out, benchRadius, benchWidth, benchHeight, stat); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkApplyWithPool(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	in := randomPlane[uint16](benchWidth, benchHeight, 1)
	out := make([]uint16, len(in))

	for _, stat := range Statistics() {
		b.Run(stat.String(), func(b *testing.B) {
			b.SetBytes(int64(len(in) * 2))
			b.ReportAllocs()
			for b.Loop() {
				if err := ApplyWithPool(pool, in, out, benchRadius, benchWidth, benchHeight, stat); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkReduceMean(b *testing.B) {
	window := randomPlane[uint8](7, 7, 2)
	b.ReportAllocs()
	for b.Loop() {
		_ = ReduceMean(window)
	}
}
