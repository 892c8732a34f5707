// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Command psortbench generates a random array of fixed-width unsigned keys,
// sorts it with psort, and reports whether the result is sorted along with
// the wall-clock time taken.
//
// Usage:
//
//	psortbench -n 1000000 -width 64 -threads 8 -range full
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ftfish/psort"
)

var (
	n       = flag.Int("n", 1_000_000, "number of keys to sort")
	width   = flag.Int("width", 64, "key width in bits: 16, 32, 64, or 128")
	threads = flag.Int("threads", 4, "number of worker threads")
	rng     = flag.String("range", "full", "digit range: full, half, or from:to (bytes)")
	seed    = flag.Int64("seed", 1, "random seed")
)

func main() {
	flag.Parse()

	r := rand.New(rand.NewSource(*seed))

	var (
		elapsed time.Duration
		sorted  bool
		err     error
	)

	switch *width {
	case 16:
		arr := make([]uint16, *n)
		for i := range arr {
			arr[i] = uint16(r.Intn(1 << 16))
		}
		elapsed = timeSort(func() { runSort(arr, *threads, *rng) })
		sorted = isSortedUint16(arr)
	case 32:
		arr := make([]uint32, *n)
		for i := range arr {
			arr[i] = r.Uint32()
		}
		elapsed = timeSort(func() { runSort(arr, *threads, *rng) })
		sorted = isSortedUint32(arr)
	case 64:
		arr := make([]uint64, *n)
		for i := range arr {
			arr[i] = r.Uint64()
		}
		elapsed = timeSort(func() { runSort(arr, *threads, *rng) })
		sorted = isSortedUint64(arr)
	case 128:
		arr := make([]psort.Uint128, *n)
		for i := range arr {
			for b := range arr[i] {
				arr[i][b] = byte(r.Intn(256))
			}
		}
		elapsed = timeSort(func() { runSort(arr, *threads, *rng) })
		sorted = isSortedUint128(arr)
	default:
		err = fmt.Errorf("unsupported -width %d: must be 16, 32, 64, or 128", *width)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("psortbench: n=%d width=%d threads=%d range=%s\n", *n, *width, *threads, *rng)
	fmt.Printf("  elapsed: %s\n", elapsed)
	fmt.Printf("  sorted:  %v\n", sorted)

	if !sorted {
		os.Exit(1)
	}
}

func timeSort(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

func runSort[T psort.Key](arr []T, threads int, rangeSpec string) {
	switch rangeSpec {
	case "full":
		psort.SortFull(arr, threads)
	case "half":
		psort.SortHalf(arr, threads)
	default:
		var from, to int
		if _, err := fmt.Sscanf(rangeSpec, "%d:%d", &from, &to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -range %q, want full, half, or from:to\n", rangeSpec)
			os.Exit(1)
		}
		psort.SortPartial(arr, threads, from, to)
	}
}

func isSortedUint16(arr []uint16) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			return false
		}
	}
	return true
}

func isSortedUint32(arr []uint32) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			return false
		}
	}
	return true
}

func isSortedUint64(arr []uint64) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			return false
		}
	}
	return true
}

func isSortedUint128(arr []psort.Uint128) bool {
	for i := 1; i < len(arr); i++ {
		for b := 15; b >= 0; b-- {
			if arr[i-1][b] != arr[i][b] {
				if arr[i-1][b] > arr[i][b] {
					return false
				}
				break
			}
		}
	}
	return true
}
