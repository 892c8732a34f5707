// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package psort is a parallel least-significant-digit (LSD) radix sort for
// in-place sorting of fixed-width unsigned integer keys (16, 32, 64, and
// 128 bits).
//
// SortFull sorts over every byte of each key. SortHalf sorts over only the
// lower half of each key's bytes. SortPartial sorts over an explicit byte
// range, which is stable only with respect to the bytes in that range —
// bytes outside [from, to) are carried along with each key but do not
// affect ordering.
//
// Each call spins up its own pool of numThreads workers for the duration
// of the sort and tears it down on return; num_threads is chosen per call,
// not shared across calls.
package psort

import (
	"github.com/ftfish/psort/internal/radix"
	"github.com/ftfish/psort/internal/workerpool"
)

// Key is the set of supported key widths. Uint128 represents a 128-bit key
// as an opaque little-endian byte array; digit 0 is the byte at the lowest
// address.
type Key = radix.Key

// Uint128 is an opaque 128-bit unsigned key, little-endian byte-wise.
type Uint128 = radix.Uint128

// SortFull sorts arr in place over every byte of each key, using
// numThreads workers.
func SortFull[T Key](arr []T, numThreads int) {
	SortPartial(arr, numThreads, 0, radix.Width[T]())
}

// SortHalf sorts arr in place over the lower half of each key's bytes,
// using numThreads workers.
func SortHalf[T Key](arr []T, numThreads int) {
	SortPartial(arr, numThreads, 0, radix.Width[T]()/2)
}

// SortPartial sorts arr in place using only the bytes in [from, to) of
// each key as the sort key; bytes outside that range are carried with
// each key but do not affect ordering. The result is stable with respect
// to those bytes only.
//
// Panics if numThreads < 1, from < 0, to > the key's width in bytes, or
// from > to — these are caller contract violations, not recoverable
// conditions.
func SortPartial[T Key](arr []T, numThreads, from, to int) {
	assertf(numThreads >= 1, "psort: numThreads must be >= 1, got %d", numThreads)
	width := radix.Width[T]()
	assertf(from >= 0 && from <= to && to <= width, "psort: invalid digit range [%d, %d) for a %d-byte key", from, to, width)

	if len(arr) == 0 || from == to {
		return
	}

	pool := workerpool.New(numThreads)
	defer pool.Close()
	radix.Sort(pool, arr, from, to)
}
