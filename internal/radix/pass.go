// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "github.com/ftfish/psort/internal/workerpool"

// passArg is one worker's context for a single digit pass: which row of
// the per-worker histogram/offset/buffer tables it owns, and which slice
// of the current source array it is responsible for.
type passArg struct {
	idx    int
	lo, hi int
}

// Sort runs the parallel LSD radix pass over byte digits [from, to) of
// arr, using pool's workers. Callers are responsible for validating
// 0 <= from <= to <= Width[T]() and len(arr) >= 0 before calling; Sort
// itself only handles the edge cases spec'd as no-ops.
func Sort[T Key](pool *workerpool.Pool, arr []T, from, to int) {
	n := len(arr)
	if n == 0 || from == to {
		return
	}

	numPasses := to - from
	workers := pool.NumWorkers()
	if workers > n {
		workers = n
	}
	if n < minParallel() {
		workers = 1
	}

	scratch := allocScratch[T](n)
	src, dst := arr, scratch

	spans := partition(n, workers)
	args := make([]passArg, workers)
	for i, sp := range spans {
		args[i] = passArg{idx: i, lo: sp.Lo, hi: sp.Hi}
	}

	hists := make([]histogram, workers)
	rows := make([]offsetRow, workers)
	blockSize := bufferBlockSize()
	buffers := make([]*writeBuffer[T], workers)
	for i := range buffers {
		buffers[i] = newWriteBuffer[T](blockSize)
	}

	for d := from; d < to; d++ {
		workerpool.Dispatch(pool, args, func(a passArg) {
			computeHistogram(src[a.lo:a.hi], d, &hists[a.idx])
		})

		prefixSum(hists, rows)

		workerpool.Dispatch(pool, args, func(a passArg) {
			scatter(src[a.lo:a.hi], dst, d, &rows[a.idx], buffers[a.idx], blockSize)
		})

		src, dst = dst, src
	}

	if numPasses%2 == 1 {
		copy(arr, scratch)
	}
}
