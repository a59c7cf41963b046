// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for parallel
// computation. Unlike per-call goroutine spawning, a Pool is created once and
// reused across many operations, eliminating allocation and spawn overhead.
//
// Neighborhood filters run one call per plane, often for every frame of a
// stream, so spawning goroutines per call would dominate small planes.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Reuse pool across many operations
//	for _, plane := range planes {
//	    pool.ParallelBands(height, 16, func(y0, y1 int) {
//	        filterRows(plane, y0, y1)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
//
// A Pool may be shared by concurrent callers; each call waits only for its
// own work items.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	// Spawn persistent workers
	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelBands(n, 1, fn)
}

// ParallelBands splits the rows [0, rows) into contiguous bands of at least
// minRows rows (the last band may be shorter) and runs fn on each band in
// the pool. At most NumWorkers bands are created. Blocks until all bands
// complete.
//
// Bands never overlap, so fn may write the rows it is given without
// synchronization.
func (p *Pool) ParallelBands(rows, minRows int, fn func(y0, y1 int)) {
	if rows <= 0 {
		return
	}
	minRows = max(minRows, 1)

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, rows)
		return
	}

	// Don't use more bands than workers, nor bands thinner than minRows.
	bands := min(p.numWorkers, rows/minRows)

	// For a single band, just run inline
	if bands <= 1 {
		fn(0, rows)
		return
	}

	// Calculate band height (ensure all rows are covered)
	bandRows := (rows + bands - 1) / bands

	var wg sync.WaitGroup
	for start := 0; start < rows; start += bandRows {
		end := min(start+bandRows, rows)
		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
