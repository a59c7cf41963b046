// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelBands_CoverEachRowOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, rows := range []int{1, 3, 4, 7, 64, 101} {
		for _, minRows := range []int{0, 1, 5, 16, 200} {
			visits := make([]int32, rows)
			var bands atomic.Int32

			pool.ParallelBands(rows, minRows, func(y0, y1 int) {
				bands.Add(1)
				for y := y0; y < y1; y++ {
					atomic.AddInt32(&visits[y], 1)
				}
			})

			for y, v := range visits {
				if v != 1 {
					t.Errorf("rows=%d minRows=%d: row %d visited %d times, want 1", rows, minRows, y, v)
				}
			}
			if got := int(bands.Load()); got > pool.NumWorkers() {
				t.Errorf("rows=%d minRows=%d: %d bands, want <= %d", rows, minRows, got, pool.NumWorkers())
			}
		}
	}
}

func TestParallelBands_MinRows(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var mu sync.Mutex
	var sizes []int
	pool.ParallelBands(40, 16, func(y0, y1 int) {
		mu.Lock()
		sizes = append(sizes, y1-y0)
		mu.Unlock()
	})

	// 40 rows with at least 16 per band allows two bands of 20.
	if len(sizes) != 2 {
		t.Fatalf("got %d bands (%v), want 2", len(sizes), sizes)
	}
	total := 0
	for _, s := range sizes {
		if s < 16 {
			t.Errorf("band of %d rows, want >= 16", s)
		}
		total += s
	}
	if total != 40 {
		t.Errorf("bands cover %d rows, want 40", total)
	}
}

func TestParallelBands_Empty(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelBands(0, 1, func(y0, y1 int) { called = true })
	if called {
		t.Error("ParallelBands(0) should not call fn")
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // safe to call twice

	var calls int
	pool.ParallelBands(100, 1, func(y0, y1 int) {
		calls++
		if y0 != 0 || y1 != 100 {
			t.Errorf("closed pool band = [%d, %d), want [0, 100)", y0, y1)
		}
	})
	if calls != 1 {
		t.Errorf("closed pool made %d calls, want 1", calls)
	}
}

func TestConcurrentCallers(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for c := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]int, 50)
			pool.ParallelBands(len(out), 4, func(y0, y1 int) {
				for y := y0; y < y1; y++ {
					out[y] = y + c
				}
			})
			for y, v := range out {
				if v != y+c {
					t.Errorf("caller %d: out[%d] = %d, want %d", c, y, v, y+c)
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkParallelBands(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	b.ReportAllocs()

	for b.Loop() {
		pool.ParallelBands(1080, 16, func(y0, y1 int) {})
	}
}
